package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/gustavovieirarodrigues/taxi-management/internal/domain/ride"
	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
)

type RideGormRepository struct {
	db *gorm.DB
}

func NewRideGormRepository(db *gorm.DB) *RideGormRepository {
	return &RideGormRepository{db: db}
}

// --------------------------------------------------
// Ride
// --------------------------------------------------

func (r *RideGormRepository) GetRide(
	ctx context.Context,
	id string,
) (*models.Ride, error) {

	var ride models.Ride
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Driver").
		Preload("Car").
		Where("id = ?", id).
		First(&ride).Error; err != nil {
		return nil, err
	}
	return &ride, nil
}

func (r *RideGormRepository) GetRideForDriver(
	ctx context.Context,
	rideID string,
	driverID string,
) (*models.Ride, error) {

	var ride models.Ride
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Where("id = ? AND driver_id = ?", rideID, driverID).
		First(&ride).Error; err != nil {
		return nil, err
	}
	return &ride, nil
}

func (r *RideGormRepository) CreateRide(
	ctx context.Context,
	ride *models.Ride,
) error {
	return r.db.WithContext(ctx).Create(ride).Error
}

// UpdateRide só grava se a versão lida ainda for a versão em banco;
// transições concorrentes sobre a mesma corrida viram "conflict" em
// vez de lost update
func (r *RideGormRepository) UpdateRide(
	ctx context.Context,
	ride *models.Ride,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Ride{}).
		Where("id = ? AND version = ?", ride.ID, ride.Version).
		Updates(map[string]any{
			"status":    ride.Status,
			"driver_id": ride.DriverID,
			"car_id":    ride.CarID,
			"notes":     ride.Notes,
			"end_time":  ride.EndTime,
			"version":   ride.Version + 1,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("conflict")
	}

	ride.Version++
	return nil
}

func (r *RideGormRepository) DeleteRide(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Ride{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("ride_not_found")
	}
	return nil
}

func (r *RideGormRepository) ListRidesForPeriod(
	ctx context.Context,
	driverID *string,
	start time.Time,
	end time.Time,
	ascending bool,
) ([]models.Ride, error) {

	order := "scheduled_time ASC"
	if !ascending {
		order = "scheduled_time DESC"
	}

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Driver").
		Where("scheduled_time >= ? AND scheduled_time < ?", start, end)

	if driverID != nil {
		q = q.Where("driver_id = ?", *driverID)
	}

	var rides []models.Ride
	if err := q.Order(order).Find(&rides).Error; err != nil {
		return nil, err
	}

	return rides, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *RideGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Driver / Car
// --------------------------------------------------

func (r *RideGormRepository) GetActiveDriver(
	ctx context.Context,
	id string,
) (*models.User, error) {

	var driver models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ? AND is_active = ?", id, models.RoleDriver, true).
		First(&driver).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *RideGormRepository) GetActiveCar(
	ctx context.Context,
	id string,
) (*models.Car, error) {

	var car models.Car
	if err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.CarStatusActive).
		First(&car).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

// Compile-time check
var _ domain.Repository = (*RideGormRepository)(nil)
