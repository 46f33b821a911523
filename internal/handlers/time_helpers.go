package handlers

import (
	"time"

	"github.com/gustavovieirarodrigues/taxi-management/internal/timezone"
)

// Datas civis (dia do calendário) são sempre interpretadas no fuso da
// empresa, nunca no fuso do servidor

func parseDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(tz),
	)
}
