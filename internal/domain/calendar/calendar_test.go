package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
)

func rideAt(id string, t time.Time) models.Ride {
	return models.Ride{ID: id, ScheduledTime: t}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, 2)) // bissexto
	assert.Equal(t, 28, DaysInMonth(2023, 2))
	assert.Equal(t, 28, DaysInMonth(1900, 2)) // divisível por 100, não bissexto
	assert.Equal(t, 29, DaysInMonth(2000, 2)) // divisível por 400
	assert.Equal(t, 30, DaysInMonth(2024, 4))
	assert.Equal(t, 31, DaysInMonth(2024, 12))
}

func TestFirstWeekday(t *testing.T) {
	// 1º de julho de 2024 foi segunda-feira
	assert.Equal(t, 1, FirstWeekday(2024, 7))
	// 1º de setembro de 2024 foi domingo
	assert.Equal(t, 0, FirstWeekday(2024, 9))
}

func TestBuildInvalidMonth(t *testing.T) {
	for _, m := range []int{0, 13, -1} {
		_, err := Build(2024, m, nil, time.Now(), time.UTC)
		assert.True(t, httperr.IsBusiness(err, "invalid_month"), "month %d", m)
	}
}

func TestBuildGridShape(t *testing.T) {
	now := time.Date(2024, 7, 10, 12, 0, 0, 0, time.UTC)

	grid, err := Build(2024, 7, nil, now, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 2024, grid.Year)
	assert.Equal(t, 7, grid.Month)

	// julho/2024: 1 célula vazia (segunda dia 1) + 31 dias = 32 → 5 semanas
	require.Len(t, grid.Weeks, 5)
	for i, week := range grid.Weeks {
		assert.Len(t, week, 7, "week %d", i)
	}

	// preenchimento antes do dia 1 e depois do dia 31
	assert.Equal(t, 0, grid.Weeks[0][0].Day)
	assert.Equal(t, 1, grid.Weeks[0][1].Day)
	last := grid.Weeks[4]
	assert.Equal(t, 31, last[3].Day)
	assert.Equal(t, 0, last[4].Day)
	assert.Equal(t, 0, last[6].Day)
}

func TestBuildMarksToday(t *testing.T) {
	now := time.Date(2024, 7, 10, 23, 45, 0, 0, time.UTC)

	grid, err := Build(2024, 7, nil, now, time.UTC)
	require.NoError(t, err)

	count := 0
	for _, week := range grid.Weeks {
		for _, cell := range week {
			if cell.IsToday {
				count++
				assert.Equal(t, 10, cell.Day)
			}
		}
	}
	assert.Equal(t, 1, count)

	// referência em outro mês não marca nada
	grid, err = Build(2024, 8, nil, now, time.UTC)
	require.NoError(t, err)
	for _, week := range grid.Weeks {
		for _, cell := range week {
			assert.False(t, cell.IsToday)
		}
	}
}

func TestBuildBucketsRidesByCivilDay(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	rides := []models.Ride{
		rideAt("b", time.Date(2024, 7, 15, 18, 0, 0, 0, loc)),
		rideAt("a", time.Date(2024, 7, 15, 9, 0, 0, 0, loc)),
		// 01:00 UTC do dia 16 ainda é dia 15 em São Paulo (UTC-3)
		rideAt("c", time.Date(2024, 7, 16, 1, 0, 0, 0, time.UTC)),
		rideAt("d", time.Date(2024, 7, 20, 8, 0, 0, 0, loc)),
	}

	grid, err := Build(2024, 7, rides, time.Now(), loc)
	require.NoError(t, err)

	var day15, day20 Cell
	for _, week := range grid.Weeks {
		for _, cell := range week {
			switch cell.Day {
			case 15:
				day15 = cell
			case 20:
				day20 = cell
			}
		}
	}

	// dentro do dia a ordem é sempre por horário
	require.Len(t, day15.Rides, 3)
	assert.Equal(t, "a", day15.Rides[0].ID)
	assert.Equal(t, "b", day15.Rides[1].ID)
	assert.Equal(t, "c", day15.Rides[2].ID)

	require.Len(t, day20.Rides, 1)
	assert.Equal(t, "d", day20.Rides[0].ID)
}

func TestBuildDoesNotMutateInput(t *testing.T) {
	rides := []models.Ride{
		rideAt("b", time.Date(2024, 7, 15, 18, 0, 0, 0, time.UTC)),
		rideAt("a", time.Date(2024, 7, 15, 9, 0, 0, 0, time.UTC)),
	}

	_, err := Build(2024, 7, rides, time.Now(), time.UTC)
	require.NoError(t, err)

	assert.Equal(t, "b", rides[0].ID)
	assert.Equal(t, "a", rides[1].ID)
}

func TestRidesForDay(t *testing.T) {
	date := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)

	rides := []models.Ride{
		rideAt("late", time.Date(2024, 7, 15, 23, 59, 0, 0, time.UTC)),
		rideAt("midnight", time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)),
		rideAt("nextday", time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC)),
		rideAt("prevday", time.Date(2024, 7, 14, 23, 59, 59, 0, time.UTC)),
	}

	got := RidesForDay(rides, date, Ascending)
	require.Len(t, got, 2)
	assert.Equal(t, "midnight", got[0].ID)
	assert.Equal(t, "late", got[1].ID)

	got = RidesForDay(rides, date, Descending)
	require.Len(t, got, 2)
	assert.Equal(t, "late", got[0].ID)
	assert.Equal(t, "midnight", got[1].ID)
}

func TestRidesForDayEmpty(t *testing.T) {
	got := RidesForDay(nil, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), Ascending)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMonthNavigation(t *testing.T) {
	jan := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

	prev := PreviousMonth(jan)
	assert.Equal(t, 2024, prev.Year())
	assert.Equal(t, time.December, prev.Month())
	assert.Equal(t, 1, prev.Day())

	dec := time.Date(2024, 12, 5, 0, 0, 0, 0, time.UTC)
	next := NextMonth(dec)
	assert.Equal(t, 2025, next.Year())
	assert.Equal(t, time.January, next.Month())
	assert.Equal(t, 1, next.Day())

	// ida e volta devolve o dia 1 do mês original
	back := PreviousMonth(NextMonth(jan))
	assert.Equal(t, 2025, back.Year())
	assert.Equal(t, time.January, back.Month())
	assert.Equal(t, 1, back.Day())
}
