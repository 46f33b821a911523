package ride

import (
	"context"
	"time"

	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
)

type Repository interface {
	// -------- Ride --------
	GetRide(
		ctx context.Context,
		id string,
	) (*models.Ride, error)

	GetRideForDriver(
		ctx context.Context,
		rideID string,
		driverID string,
	) (*models.Ride, error)

	CreateRide(
		ctx context.Context,
		r *models.Ride,
	) error

	// UpdateRide é compare-and-swap: falha com "conflict" quando a
	// versão em banco já não é a versão lida
	UpdateRide(
		ctx context.Context,
		r *models.Ride,
	) error

	DeleteRide(
		ctx context.Context,
		id string,
	) error

	ListRidesForPeriod(
		ctx context.Context,
		driverID *string,
		start time.Time,
		end time.Time,
		ascending bool,
	) ([]models.Ride, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Driver / Car --------
	GetActiveDriver(
		ctx context.Context,
		id string,
	) (*models.User, error)

	GetActiveCar(
		ctx context.Context,
		id string,
	) (*models.Car, error)
}
