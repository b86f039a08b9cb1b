package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-report/internal/models"
)

func f(v float64) *float64 { return &v }

func TestRender_Golden(t *testing.T) {
	series := models.DailySeries{
		Time:             []string{"2025-07-18", "2025-07-19", "2025-07-20"},
		Temperature2mMax: []*float64{f(31.2), nil, f(30)},
		Temperature2mMin: []*float64{f(23.1), f(22.8), nil},
	}

	expected := "\n" +
		"Date         Max Temp (°C)   Min Temp (°C)  \n" +
		"---------------------------------------------\n" +
		"2025-07-18   31.2            23.1\n" +
		"2025-07-19   None            22.8\n" +
		"2025-07-20   30.0            None\n" +
		"\n" +
		"Highest temperature recorded in last 7 days: 31.2°C\n" +
		"\n" +
		"Lowest temperature recorded in last 7 days: 22.8°C\n"

	assert.Equal(t, expected, Render(series))
}

func TestRender_RowCountMatchesInput(t *testing.T) {
	series := models.DailySeries{}
	for i := 0; i < 7; i++ {
		series.Time = append(series.Time, time.Date(2025, time.July, 18+i, 0, 0, 0, 0, time.UTC).Format(models.DateLayout))
		series.Temperature2mMax = append(series.Temperature2mMax, f(30+float64(i)))
		series.Temperature2mMin = append(series.Temperature2mMin, f(20-float64(i)))
	}

	lines := strings.Split(Render(series), "\n")
	rows := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "2025-07-") {
			rows++
			assert.NotContains(t, line, missingReading)
		}
	}

	assert.Equal(t, 7, rows)
	assert.Contains(t, Render(series), "Highest temperature recorded in last 7 days: 36.0°C")
	assert.Contains(t, Render(series), "Lowest temperature recorded in last 7 days: 14.0°C")
}

func TestRender_AllMaxMissing(t *testing.T) {
	series := models.DailySeries{
		Time:             []string{"2025-07-18", "2025-07-19"},
		Temperature2mMax: []*float64{nil, nil},
		Temperature2mMin: []*float64{f(21.5), f(20.25)},
	}

	out := Render(series)

	assert.Contains(t, out, "\nNo valid maximum temperature data available for the last 7 days.\n")
	assert.NotContains(t, out, "Highest temperature")
	assert.Contains(t, out, "Lowest temperature recorded in last 7 days: 20.25°C")
}

func TestRender_EmptySeries(t *testing.T) {
	out := Render(models.DailySeries{})

	assert.True(t, strings.HasPrefix(out, "\nDate "))
	assert.Contains(t, out, "No valid maximum temperature data available")
	assert.Contains(t, out, "No valid Minimum temperature data available for the last 7 days.")
	assert.Equal(t, 7, strings.Count(out, "\n"))
}

func TestRender_MismatchedLengths(t *testing.T) {
	series := models.DailySeries{
		Time:             []string{"2025-07-18", "2025-07-19", "2025-07-20"},
		Temperature2mMax: []*float64{f(30), f(35.5)},
		Temperature2mMin: []*float64{f(20)},
	}

	out := Render(series)

	assert.Contains(t, out, "2025-07-18")
	assert.NotContains(t, out, "2025-07-19")
	assert.Contains(t, out, "Highest temperature recorded in last 7 days: 35.5°C")
}

func TestRender_Deterministic(t *testing.T) {
	series := models.DailySeries{
		Time:             []string{"2025-07-18"},
		Temperature2mMax: []*float64{f(-0.5)},
		Temperature2mMin: []*float64{f(-12)},
	}

	assert.Equal(t, Render(series), Render(series))

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, series))
	assert.Equal(t, Render(series), buf.String())
}

func TestFormatTemperature(t *testing.T) {
	tests := map[float64]string{
		31.2:   "31.2",
		30:     "30.0",
		0:      "0.0",
		-4.5:   "-4.5",
		-12:    "-12.0",
		18.125: "18.125",
	}

	for in, want := range tests {
		assert.Equal(t, want, formatTemperature(in))
	}
}
