package models

import "time"

const DateLayout = "2006-01-02"

// DateRange is an inclusive span of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (d DateRange) StartDate() string {
	return d.Start.Format(DateLayout)
}

func (d DateRange) EndDate() string {
	return d.End.Format(DateLayout)
}

// Days counts the calendar days covered, both ends included.
func (d DateRange) Days() int {
	start := time.Date(d.Start.Year(), d.Start.Month(), d.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(d.End.Year(), d.End.Month(), d.End.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours()/24) + 1
}

// RequestParams describes the range as log fields.
func (d DateRange) RequestParams() map[string]any {
	return map[string]any{
		"start_date": d.StartDate(),
		"end_date":   d.EndDate(),
		"days":       d.Days(),
	}
}
