// Package polyline implements the encoded polyline format used for route
// geometries: per-axis deltas in the fixed-point domain, each written with
// go-polyline's integer codec.
package polyline

import (
	"errors"
	"fmt"

	gopolyline "github.com/twpayne/go-polyline"

	"route-descriptor/internal/models"
)

var (
	// ErrTruncated is returned when the input ends inside a value or pair
	ErrTruncated = errors.New("polyline: truncated input")
	// ErrInvalidCharacter is returned for bytes outside the encoding alphabet
	ErrInvalidCharacter = errors.New("polyline: invalid character")
	// ErrOverflow is returned when a value does not fit the coordinate range
	ErrOverflow = errors.New("polyline: value overflow")
)

// Encode renders coordinates as an encoded polyline string. Latitude delta
// precedes longitude delta for each point and the first point is encoded
// relative to (0, 0).
func Encode(coords []models.Coordinate) string {
	if len(coords) == 0 {
		return ""
	}

	// Typical road geometry needs well under 8 bytes per point
	buf := make([]byte, 0, len(coords)*8)
	var prevLat, prevLon int32

	for _, c := range coords {
		buf = gopolyline.EncodeInt(buf, int(int64(c.Lat)-int64(prevLat)))
		buf = gopolyline.EncodeInt(buf, int(int64(c.Lon)-int64(prevLon)))
		prevLat, prevLon = c.Lat, c.Lon
	}

	return string(buf)
}

// Decode parses an encoded polyline back into fixed-point coordinates
func Decode(encoded string) ([]models.Coordinate, error) {
	if encoded == "" {
		return []models.Coordinate{}, nil
	}

	// Every point takes at least two bytes
	coords := make([]models.Coordinate, 0, len(encoded)/2)
	var lat, lon int64

	buf := []byte(encoded)
	for len(buf) > 0 {
		dLat, rest, err := gopolyline.DecodeInt(buf)
		if err != nil {
			return nil, decodeError(err, len(encoded)-len(buf))
		}
		buf = rest

		if len(buf) == 0 {
			return nil, fmt.Errorf("%w: missing longitude at offset %d", ErrTruncated, len(encoded))
		}

		dLon, rest, err := gopolyline.DecodeInt(buf)
		if err != nil {
			return nil, decodeError(err, len(encoded)-len(buf))
		}
		buf = rest

		lat += int64(dLat)
		lon += int64(dLon)
		if lat != int64(int32(lat)) || lon != int64(int32(lon)) {
			return nil, fmt.Errorf("%w at offset %d", ErrOverflow, len(encoded)-len(buf))
		}

		coords = append(coords, models.Coordinate{Lat: int32(lat), Lon: int32(lon)})
	}

	return coords, nil
}

// decodeError maps go-polyline errors onto this package's errors
func decodeError(err error, offset int) error {
	switch {
	case errors.Is(err, gopolyline.ErrUnterminatedSequence), errors.Is(err, gopolyline.ErrEmpty):
		return fmt.Errorf("%w at offset %d", ErrTruncated, offset)
	case errors.Is(err, gopolyline.ErrInvalidByte):
		return fmt.Errorf("%w at offset %d", ErrInvalidCharacter, offset)
	case errors.Is(err, gopolyline.ErrOverflow):
		return fmt.Errorf("%w at offset %d", ErrOverflow, offset)
	}
	return fmt.Errorf("polyline: %w", err)
}

// AppendUnencoded appends coordinates as a literal JSON array of
// [lat, lon] pairs in degrees
func AppendUnencoded(buf []byte, coords []models.Coordinate) []byte {
	buf = append(buf, '[')
	for i, c := range coords {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '[')
		buf = append(buf, models.FormatFixed(c.Lat)...)
		buf = append(buf, ',')
		buf = append(buf, models.FormatFixed(c.Lon)...)
		buf = append(buf, ']')
	}
	return append(buf, ']')
}
