package ride

import (
	"context"
	"time"

	domain "github.com/gustavovieirarodrigues/taxi-management/internal/domain/ride"
	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
	"github.com/gustavovieirarodrigues/taxi-management/internal/timezone"
)

type ListRidesByMonth struct {
	repo domain.Repository
	tz   string
}

func NewListRidesByMonth(repo domain.Repository, tz string) *ListRidesByMonth {
	return &ListRidesByMonth{repo: repo, tz: tz}
}

func (uc *ListRidesByMonth) Execute(
	ctx context.Context,
	driverID *string,
	year int,
	month int,
	ascending bool,
) ([]models.Ride, error) {

	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	loc := timezone.Location(uc.tz)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	return uc.repo.ListRidesForPeriod(ctx, driverID, start, end, ascending)
}
