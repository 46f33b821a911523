package ride

import (
	"context"
	"time"

	domain "github.com/gustavovieirarodrigues/taxi-management/internal/domain/ride"
	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
	"github.com/gustavovieirarodrigues/taxi-management/internal/notify"
	"github.com/gustavovieirarodrigues/taxi-management/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateRideInput struct {
	ClientName  string
	ClientPhone string
	ClientEmail string

	Origin      string
	Destination string

	Date string
	Time string

	DriverID string
	CarID    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateRide struct {
	repo     domain.Repository
	notifier notify.Notifier
	tz       string
}

func NewCreateRide(
	repo domain.Repository,
	notifier notify.Notifier,
	tz string,
) *CreateRide {
	return &CreateRide{
		repo:     repo,
		notifier: notifier,
		tz:       tz,
	}
}

func (uc *CreateRide) Execute(
	ctx context.Context,
	in CreateRideInput,
) (*models.Ride, error) {

	loc := timezone.Location(uc.tz)

	scheduled, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	r := &models.Ride{
		ClientID:      client.ID,
		Origin:        in.Origin,
		Destination:   in.Destination,
		ScheduledTime: scheduled,
		Status:        string(domain.InitialStatus(in.DriverID != "")),
	}

	if in.CarID != "" {
		car, err := uc.repo.GetActiveCar(ctx, in.CarID)
		if err != nil {
			return nil, httperr.ErrBusiness("car_not_found")
		}
		r.CarID = &car.ID
	}

	var driver *models.User
	if in.DriverID != "" {
		driver, err = uc.repo.GetActiveDriver(ctx, in.DriverID)
		if err != nil {
			return nil, httperr.ErrBusiness("driver_not_found")
		}
		r.DriverID = &driver.ID
	}

	if err := uc.repo.CreateRide(ctx, r); err != nil {
		return nil, err
	}

	// Corrida criada já atribuída avisa o motorista na hora
	if driver != nil {
		uc.notifier.Dispatch(notify.Event{
			UserID:  driver.ID,
			RideID:  &r.ID,
			Type:    "Corrida Atribuída",
			Message: assignedMessage(client.Name, r.Origin, r.Destination, r.ScheduledTime),
		})
	}

	return r, nil
}

func assignedMessage(clientName, origin, destination string, t time.Time) string {
	return "Nova corrida atribuída! Cliente: " + clientName +
		", De: " + origin +
		", Para: " + destination +
		", Horário: " + t.Format("02/01/2006 15:04")
}
