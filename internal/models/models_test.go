package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCoordinateRounds(t *testing.T) {
	c := NewCoordinate(52.517037, 13.388860)

	assert.Equal(t, int32(5251704), c.Lat)
	assert.Equal(t, int32(1338886), c.Lon)
	assert.InDelta(t, 52.51704, c.LatDegrees(), 1e-9)
	assert.InDelta(t, 13.38886, c.LonDegrees(), 1e-9)
}

func TestNewCoordinateNegative(t *testing.T) {
	c := NewCoordinate(-33.868820, -151.209296)

	assert.Equal(t, int32(-3386882), c.Lat)
	assert.Equal(t, int32(-15120930), c.Lon)
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		in   int32
		want string
	}{
		{0, "0.00000"},
		{1, "0.00001"},
		{-1, "-0.00001"},
		{-50000, "-0.50000"},
		{5251704, "52.51704"},
		{-18000000, "-180.00000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFixed(tt.in), "FormatFixed(%d)", tt.in)
	}
}

func TestCoordinateJSON(t *testing.T) {
	c := NewCoordinate(48.8566, -2.3522)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, "[48.85660,-2.35220]", string(data))

	var back Coordinate
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, c, back)
}

func TestCoordinateUnmarshalRejectsOutOfRange(t *testing.T) {
	var c Coordinate

	err := json.Unmarshal([]byte("[91.0, 10.0]"), &c)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	err = json.Unmarshal([]byte("[10.0, -180.5]"), &c)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)

	err = json.Unmarshal([]byte(`{"lat": 1}`), &c)
	assert.Error(t, err)

	for _, input := range []string{"[]", "[52.5]", "[52.5, 13.4, 99]"} {
		err = json.Unmarshal([]byte(input), &c)
		assert.ErrorIs(t, err, ErrInvalidCoordinate, input)
	}
}

func TestCoordinateValid(t *testing.T) {
	assert.True(t, NewCoordinate(90, 180).Valid())
	assert.False(t, Coordinate{Lat: 90*CoordinatePrecision + 1}.Valid())
}

func TestTurnCodeString(t *testing.T) {
	assert.Equal(t, "turn left", TurnLeft.String())
	assert.Equal(t, "reached destination", TurnReachedDestination.String())
	assert.Equal(t, "turn 42", TurnCode(42).String())
}

func TestParseTrailingPolicy(t *testing.T) {
	p, err := ParseTrailingPolicy("")
	require.NoError(t, err)
	assert.Equal(t, TrailingFold, p)

	p, err = ParseTrailingPolicy("arrive")
	require.NoError(t, err)
	assert.Equal(t, TrailingArrive, p)

	_, err = ParseTrailingPolicy("teleport")
	assert.Error(t, err)
}

func TestPhantomEndpointIsSet(t *testing.T) {
	loc := NewCoordinate(1, 2)

	assert.False(t, PhantomEndpoint{}.IsSet())
	assert.True(t, PhantomEndpoint{Location: &loc}.IsSet())
}

func TestRawRouteEdgeCount(t *testing.T) {
	r := RawRoute{Segments: [][]PathEdge{{{Node: 1}, {Node: 2}}, {}, {{Node: 3}}}}

	assert.Equal(t, 3, r.EdgeCount())
}
