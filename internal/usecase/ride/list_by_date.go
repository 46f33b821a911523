package ride

import (
	"context"
	"time"

	domain "github.com/gustavovieirarodrigues/taxi-management/internal/domain/ride"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
	"github.com/gustavovieirarodrigues/taxi-management/internal/timezone"
)

type ListRidesByDate struct {
	repo domain.Repository
	tz   string
}

func NewListRidesByDate(repo domain.Repository, tz string) *ListRidesByDate {
	return &ListRidesByDate{repo: repo, tz: tz}
}

// Execute lista as corridas de um dia civil no fuso da empresa;
// driverID nulo lista de todos os motoristas (visão do gerente)
func (uc *ListRidesByDate) Execute(
	ctx context.Context,
	driverID *string,
	date time.Time,
	ascending bool,
) ([]models.Ride, error) {

	loc := timezone.Location(uc.tz)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	return uc.repo.ListRidesForPeriod(ctx, driverID, start, end, ascending)
}
