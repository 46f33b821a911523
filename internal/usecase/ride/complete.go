package ride

import (
	"context"

	domain "github.com/gustavovieirarodrigues/taxi-management/internal/domain/ride"
	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
	"github.com/gustavovieirarodrigues/taxi-management/internal/timezone"
)

type CompleteRide struct {
	repo domain.Repository
	tz   string
}

func NewCompleteRide(repo domain.Repository, tz string) *CompleteRide {
	return &CompleteRide{repo: repo, tz: tz}
}

// Execute conclui uma corrida do próprio motorista, com observação
// opcional
func (uc *CompleteRide) Execute(
	ctx context.Context,
	rideID string,
	driverID string,
	observation string,
) (*models.Ride, error) {

	r, err := uc.repo.GetRideForDriver(ctx, rideID, driverID)
	if err != nil {
		return nil, httperr.ErrBusiness("ride_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Complete(r, observation, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateRide(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}
