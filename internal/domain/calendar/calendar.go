package calendar

import (
	"sort"
	"time"

	"github.com/gustavovieirarodrigues/taxi-management/internal/httperr"
	"github.com/gustavovieirarodrigues/taxi-management/internal/models"
)

// ===============================
// Month Grid
// ===============================
//
// Grade mensal única usada por todas as telas de calendário: semanas
// de 7 células, domingo primeiro. Função pura — a lista de corridas
// de entrada nunca é mutada.

type SortOrder int

const (
	Ascending  SortOrder = iota // próximas corridas
	Descending                  // histórico
)

// Cell é um dia da grade. Day == 0 marca célula de preenchimento fora
// do mês.
type Cell struct {
	Day     int           `json:"day"`
	Date    time.Time     `json:"date"`
	Rides   []models.Ride `json:"rides"`
	IsToday bool          `json:"is_today"`
}

type Month struct {
	Year  int      `json:"year"`
	Month int      `json:"month"`
	Weeks [][]Cell `json:"weeks"`
}

// DaysInMonth usa o dia zero do mês seguinte, cobrindo anos bissextos
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday devolve o dia da semana do dia 1 (0=domingo..6=sábado)
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time, loc *time.Location) dayKey {
	local := t.In(loc)
	return dayKey{local.Year(), local.Month(), local.Day()}
}

// Build monta a grade de um mês, agrupando as corridas por dia civil
// no fuso informado. A última semana é completada até 7 células.
func Build(
	year int,
	month int,
	rides []models.Ride,
	now time.Time,
	loc *time.Location,
) (*Month, error) {

	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	// agrupa uma única vez: O(dias + corridas)
	byDay := make(map[dayKey][]models.Ride, len(rides))
	for _, r := range rides {
		k := keyOf(r.ScheduledTime, loc)
		byDay[k] = append(byDay[k], r)
	}

	for _, bucket := range byDay {
		sortRides(bucket, Ascending)
	}

	today := now.In(loc)

	days := DaysInMonth(year, month)
	lead := FirstWeekday(year, month)

	total := lead + days
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	cells := make([]Cell, 0, total)
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
		cells = append(cells, Cell{
			Day:   day,
			Date:  date,
			Rides: byDay[dayKey{year, time.Month(month), day}],
			IsToday: today.Year() == year &&
				int(today.Month()) == month &&
				today.Day() == day,
		})
	}
	for len(cells) < total {
		cells = append(cells, Cell{})
	}

	weeks := make([][]Cell, 0, total/7)
	for i := 0; i < len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}

	return &Month{
		Year:  year,
		Month: month,
		Weeks: weeks,
	}, nil
}

// RidesForDay filtra por (ano, mês, dia) no fuso da data de referência,
// comparando componentes — nunca strings nem truncamento de timestamp.
func RidesForDay(
	rides []models.Ride,
	date time.Time,
	order SortOrder,
) []models.Ride {

	loc := date.Location()
	want := dayKey{date.Year(), date.Month(), date.Day()}

	out := make([]models.Ride, 0)
	for _, r := range rides {
		if keyOf(r.ScheduledTime, loc) == want {
			out = append(out, r)
		}
	}

	sortRides(out, order)
	return out
}

func sortRides(rides []models.Ride, order SortOrder) {
	sort.SliceStable(rides, func(i, j int) bool {
		if order == Descending {
			return rides[j].ScheduledTime.Before(rides[i].ScheduledTime)
		}
		return rides[i].ScheduledTime.Before(rides[j].ScheduledTime)
	})
}

// ===============================
// Navigation
// ===============================

// PreviousMonth devolve o dia 1 do mês anterior, com virada de ano
func PreviousMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()-1, 1, 0, 0, 0, 0, t.Location())
}

// NextMonth devolve o dia 1 do mês seguinte, com virada de ano
func NextMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
}
