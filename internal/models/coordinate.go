package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// CoordinatePrecision scales degrees into the fixed-point integer domain
// (five decimal digits, roughly one meter).
const CoordinatePrecision = 100000

// coordinateDecimals is the number of fractional digits rendered for a coordinate
const coordinateDecimals = 5

// ErrInvalidCoordinate is returned when a coordinate is not a [lat, lon] pair
// inside the WGS84 range
var ErrInvalidCoordinate = errors.New("coordinate out of range")

// Coordinate is a geographic point stored as fixed-point degrees.
// Lat and Lon hold degrees multiplied by CoordinatePrecision.
type Coordinate struct {
	Lat int32
	Lon int32
}

// NewCoordinate converts degrees into the fixed-point representation
func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: int32(math.Round(lat * CoordinatePrecision)),
		Lon: int32(math.Round(lon * CoordinatePrecision)),
	}
}

// LatDegrees returns the latitude in degrees
func (c Coordinate) LatDegrees() float64 {
	return float64(c.Lat) / CoordinatePrecision
}

// LonDegrees returns the longitude in degrees
func (c Coordinate) LonDegrees() float64 {
	return float64(c.Lon) / CoordinatePrecision
}

// Valid reports whether the coordinate lies inside the WGS84 range
func (c Coordinate) Valid() bool {
	return c.Lat >= -90*CoordinatePrecision && c.Lat <= 90*CoordinatePrecision &&
		c.Lon >= -180*CoordinatePrecision && c.Lon <= 180*CoordinatePrecision
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%s, %s)", FormatFixed(c.Lat), FormatFixed(c.Lon))
}

// MarshalJSON renders the coordinate as [lat, lon] in degrees
func (c Coordinate) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 24)
	buf = append(buf, '[')
	buf = append(buf, FormatFixed(c.Lat)...)
	buf = append(buf, ',')
	buf = append(buf, FormatFixed(c.Lon)...)
	buf = append(buf, ']')
	return buf, nil
}

// UnmarshalJSON reads a [lat, lon] pair in degrees
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinate must be a [lat, lon] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("%w: expected [lat, lon], got %d values", ErrInvalidCoordinate, len(pair))
	}

	if pair[0] < -90 || pair[0] > 90 || pair[1] < -180 || pair[1] > 180 {
		return fmt.Errorf("%w: [%v, %v]", ErrInvalidCoordinate, pair[0], pair[1])
	}

	*c = NewCoordinate(pair[0], pair[1])
	return nil
}

// FormatFixed renders a fixed-point value in degrees with exactly five
// decimals. The conversion is done on the integer so no float rounding
// can creep in.
func FormatFixed(v int32) string {
	n := int64(v)
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	whole := n / CoordinatePrecision
	frac := strconv.FormatInt(n%CoordinatePrecision, 10)
	for len(frac) < coordinateDecimals {
		frac = "0" + frac
	}

	return sign + strconv.FormatInt(whole, 10) + "." + frac
}
