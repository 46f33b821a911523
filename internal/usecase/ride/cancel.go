package ride

import (
	"context"

	domain "github.com/gustavovieirarodrigues/taxi-management/internal/domain/ride"
	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
)

type CancelRide struct {
	repo domain.Repository
}

func NewCancelRide(repo domain.Repository) *CancelRide {
	return &CancelRide{repo: repo}
}

// Execute cancela uma corrida com motivo obrigatório. Motorista só
// cancela corrida própria; gerente cancela qualquer uma.
func (uc *CancelRide) Execute(
	ctx context.Context,
	rideID string,
	actorID string,
	actorRole string,
	reason string,
) (*models.Ride, error) {

	var r *models.Ride
	var err error

	if actorRole == models.RoleDriver {
		r, err = uc.repo.GetRideForDriver(ctx, rideID, actorID)
	} else {
		r, err = uc.repo.GetRide(ctx, rideID)
	}
	if err != nil {
		return nil, httperr.ErrBusiness("ride_not_found")
	}

	if err := domain.Cancel(r, reason); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateRide(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}
