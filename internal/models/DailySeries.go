package models

// DailySeries is the "daily" block of an archive response. The three sequences are
// parallel by index. A nil entry is a day without a reading; a missing key decodes
// to an empty sequence.
type DailySeries struct {
	Time             []string   `json:"time"`
	Temperature2mMax []*float64 `json:"temperature_2m_max"`
	Temperature2mMin []*float64 `json:"temperature_2m_min"`
}

// DailyTemperature is one zipped row of a DailySeries.
type DailyTemperature struct {
	Date    string
	TempMax *float64
	TempMin *float64
}

// Len is the number of complete rows: the length of the shortest sequence.
func (s DailySeries) Len() int {
	return min(len(s.Time), len(s.Temperature2mMax), len(s.Temperature2mMin))
}

// Days zips the sequences up to Len.
func (s DailySeries) Days() []DailyTemperature {
	days := make([]DailyTemperature, s.Len())
	for i := range days {
		days[i] = DailyTemperature{
			Date:    s.Time[i],
			TempMax: s.Temperature2mMax[i],
			TempMin: s.Temperature2mMin[i],
		}
	}
	return days
}

// HighestMax scans every max reading, including any past Len.
func (s DailySeries) HighestMax() (float64, bool) {
	return extreme(s.Temperature2mMax, func(a, b float64) bool { return a > b })
}

// LowestMin scans every min reading, including any past Len.
func (s DailySeries) LowestMin() (float64, bool) {
	return extreme(s.Temperature2mMin, func(a, b float64) bool { return a < b })
}

func extreme(readings []*float64, better func(a, b float64) bool) (float64, bool) {
	var (
		best  float64
		found bool
	)
	for _, r := range readings {
		if r == nil {
			continue
		}
		if !found || better(*r, best) {
			best, found = *r, true
		}
	}
	return best, found
}
