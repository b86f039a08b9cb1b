package report

import (
	"time"

	"weather-report/internal/models"
)

const windowDays = 7

// TrailingWeek returns the seven calendar days before now's date, today excluded.
func TrailingWeek(now time.Time) models.DateRange {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return models.DateRange{
		Start: today.AddDate(0, 0, -windowDays),
		End:   today.AddDate(0, 0, -1),
	}
}
