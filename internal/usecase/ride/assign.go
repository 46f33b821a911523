package ride

import (
	"context"

	domain "github.com/gustavovieirarodrigues/taxi-management/internal/domain/ride"
	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
	"github.com/gustavovieirarodrigues/taxi-management/internal/notify"
)

type AssignDriver struct {
	repo     domain.Repository
	notifier notify.Notifier
}

func NewAssignDriver(
	repo domain.Repository,
	notifier notify.Notifier,
) *AssignDriver {
	return &AssignDriver{
		repo:     repo,
		notifier: notifier,
	}
}

func (uc *AssignDriver) Execute(
	ctx context.Context,
	rideID string,
	driverID string,
) (*models.Ride, error) {

	r, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return nil, httperr.ErrBusiness("ride_not_found")
	}

	driver, err := uc.repo.GetActiveDriver(ctx, driverID)
	if err != nil {
		return nil, httperr.ErrBusiness("driver_not_found")
	}

	if err := domain.Assign(r, driver.ID); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateRide(ctx, r); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		UserID:  driver.ID,
		RideID:  &r.ID,
		Type:    "Corrida Atribuída",
		Message: assignedMessage(r.Client.Name, r.Origin, r.Destination, r.ScheduledTime),
	})

	return r, nil
}
