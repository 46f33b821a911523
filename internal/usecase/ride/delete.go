package ride

import (
	"context"

	domain "github.com/gustavovieirarodrigues/taxi-management/internal/domain/ride"
	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
)

type DeleteRide struct {
	repo domain.Repository
}

func NewDeleteRide(repo domain.Repository) *DeleteRide {
	return &DeleteRide{repo: repo}
}

// Execute remove a corrida em definitivo. Concluídas nunca são
// removidas; o segundo delete do mesmo id falha com not found.
func (uc *DeleteRide) Execute(
	ctx context.Context,
	rideID string,
) error {

	r, err := uc.repo.GetRide(ctx, rideID)
	if err != nil {
		return httperr.ErrBusiness("ride_not_found")
	}

	if err := domain.CanDelete(domain.Status(r.Status)); err != nil {
		return err
	}

	return uc.repo.DeleteRide(ctx, r.ID)
}
