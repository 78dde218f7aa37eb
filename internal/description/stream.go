package description

import "route-descriptor/internal/models"

// CoordinateStream collects the points visited by a route in traversal
// order. Consecutive duplicates are skipped so the geometry never contains
// zero-length segments, except between the explicit endpoints.
type CoordinateStream struct {
	points []models.Coordinate
}

// NewCoordinateStream returns a stream sized for capacity points
func NewCoordinateStream(capacity int) *CoordinateStream {
	return &CoordinateStream{points: make([]models.Coordinate, 0, capacity)}
}

// Begin seeds the stream with the origin
func (s *CoordinateStream) Begin(origin models.Coordinate) {
	s.points = append(s.points, origin)
}

// Append adds a point unless it equals the last one
func (s *CoordinateStream) Append(c models.Coordinate) {
	if n := len(s.points); n > 0 && s.points[n-1] == c {
		return
	}
	s.points = append(s.points, c)
}

// End appends the destination unconditionally
func (s *CoordinateStream) End(destination models.Coordinate) {
	s.points = append(s.points, destination)
}

// Len returns the number of collected points
func (s *CoordinateStream) Len() int {
	return len(s.points)
}

// Points returns the collected points
func (s *CoordinateStream) Points() []models.Coordinate {
	return s.points
}
