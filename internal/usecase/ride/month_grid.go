package ride

import (
	"context"
	"time"

	"github.com/gustavovieirarodrigues/taxi-management/internal/domain/calendar"
	domain "github.com/gustavovieirarodrigues/taxi-management/internal/domain/ride"
	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
	"github.com/gustavovieirarodrigues/taxi-management/internal/timezone"
)

// MonthGrid é a única fonte da grade mensal: todas as telas de
// calendário renderizam a saída daqui
type MonthGrid struct {
	repo domain.Repository
	tz   string
}

func NewMonthGrid(repo domain.Repository, tz string) *MonthGrid {
	return &MonthGrid{repo: repo, tz: tz}
}

func (uc *MonthGrid) Execute(
	ctx context.Context,
	driverID *string,
	year int,
	month int,
) (*calendar.Month, error) {

	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	loc := timezone.Location(uc.tz)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	rides, err := uc.repo.ListRidesForPeriod(ctx, driverID, start, end, true)
	if err != nil {
		return nil, err
	}

	return calendar.Build(year, month, rides, timezone.NowIn(uc.tz), loc)
}
