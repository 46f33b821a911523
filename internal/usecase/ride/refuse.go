package ride

import (
	"context"

	domain "github.com/gustavovieirarodrigues/taxi-management/internal/domain/ride"
	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
)

type RefuseRide struct {
	repo domain.Repository
}

func NewRefuseRide(repo domain.Repository) *RefuseRide {
	return &RefuseRide{repo: repo}
}

// Execute registra a recusa do motorista: corrida volta para a fila
// como cancelada, sem motivo obrigatório
func (uc *RefuseRide) Execute(
	ctx context.Context,
	rideID string,
	driverID string,
) (*models.Ride, error) {

	r, err := uc.repo.GetRideForDriver(ctx, rideID, driverID)
	if err != nil {
		return nil, httperr.ErrBusiness("ride_not_found")
	}

	if err := domain.Refuse(r); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateRide(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}
