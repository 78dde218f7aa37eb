package description

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"route-descriptor/internal/models"
)

func TestCoordinateStreamSkipsConsecutiveDuplicates(t *testing.T) {
	a := models.NewCoordinate(1, 1)
	b := models.NewCoordinate(1, 2)

	s := NewCoordinateStream(4)
	s.Begin(a)
	s.Append(a)
	s.Append(b)
	s.Append(b)
	s.Append(a)
	s.End(a)

	assert.Equal(t, []models.Coordinate{a, b, a, a}, s.Points())
	assert.Equal(t, 4, s.Len())
}

func TestCoordinateStreamEndpointsOnly(t *testing.T) {
	p := models.NewCoordinate(10, 20)

	s := NewCoordinateStream(2)
	s.Begin(p)
	s.End(p)

	assert.Equal(t, []models.Coordinate{p, p}, s.Points())
}
