package models

import (
	"fmt"
	"strconv"
)

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DefaultCoordinate is the only location the report is built for.
var DefaultCoordinate = Coordinate{Latitude: 17.38, Longitude: 78.48}

// QueryLatitude renders the latitude in its shortest form, e.g. "17.38".
func (c Coordinate) QueryLatitude() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64)
}

func (c Coordinate) QueryLongitude() string {
	return strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", c.Latitude, c.Longitude)
}
