package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"weather-report/internal/models"
)

const (
	missingReading = "None"
	separatorWidth = 45
	headerFormat   = "%-12s %-15s %-15s\n"
	rowFormat      = "%-12s %-15s %s\n"
)

// Render produces the report text for series. It depends on nothing but its input.
func Render(series models.DailySeries) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, headerFormat, "Date", "Max Temp (°C)", "Min Temp (°C)")
	b.WriteString(strings.Repeat("-", separatorWidth) + "\n")

	for _, day := range series.Days() {
		fmt.Fprintf(&b, rowFormat, day.Date, formatReading(day.TempMax), formatReading(day.TempMin))
	}

	if highest, ok := series.HighestMax(); ok {
		fmt.Fprintf(&b, "\nHighest temperature recorded in last %d days: %s°C\n", windowDays, formatTemperature(highest))
	} else {
		fmt.Fprintf(&b, "\nNo valid maximum temperature data available for the last %d days.\n", windowDays)
	}

	if lowest, ok := series.LowestMin(); ok {
		fmt.Fprintf(&b, "\nLowest temperature recorded in last %d days: %s°C\n", windowDays, formatTemperature(lowest))
	} else {
		fmt.Fprintf(&b, "\nNo valid Minimum temperature data available for the last %d days.\n", windowDays)
	}

	return b.String()
}

func WriteReport(w io.Writer, series models.DailySeries) error {
	_, err := io.WriteString(w, Render(series))
	return err
}

func formatReading(v *float64) string {
	if v == nil {
		return missingReading
	}
	return formatTemperature(*v)
}

// formatTemperature prints the shortest exact form, keeping one decimal on whole numbers.
func formatTemperature(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
