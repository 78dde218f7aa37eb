package database

import "errors"

// ErrInvalidNode is returned when a node location is outside the WGS84 range
var ErrInvalidNode = errors.New("invalid node location")
