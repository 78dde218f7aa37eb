package models

import (
	"fmt"
	"strconv"
)

// TurnCode classifies the maneuver at an edge boundary
type TurnCode int

// Turn codes as produced by the search engine
const (
	TurnNone TurnCode = iota
	TurnGoStraight
	TurnSlightRight
	TurnRight
	TurnSharpRight
	TurnUTurn
	TurnSharpLeft
	TurnLeft
	TurnSlightLeft
	TurnReachViaPoint
	TurnHeadOn
	TurnEnterRoundAbout
	TurnLeaveRoundAbout
	TurnStayOnRoundAbout
	TurnStartAtEndOfStreet
	TurnReachedDestination
)

var turnNames = map[TurnCode]string{
	TurnNone:               "none",
	TurnGoStraight:         "go straight",
	TurnSlightRight:        "turn slight right",
	TurnRight:              "turn right",
	TurnSharpRight:         "turn sharp right",
	TurnUTurn:              "u-turn",
	TurnSharpLeft:          "turn sharp left",
	TurnLeft:               "turn left",
	TurnSlightLeft:         "turn slight left",
	TurnReachViaPoint:      "reach via point",
	TurnHeadOn:             "head on",
	TurnEnterRoundAbout:    "enter roundabout",
	TurnLeaveRoundAbout:    "leave roundabout",
	TurnStayOnRoundAbout:   "stay on roundabout",
	TurnStartAtEndOfStreet: "start at end of street",
	TurnReachedDestination: "reached destination",
}

func (t TurnCode) String() string {
	if name, ok := turnNames[t]; ok {
		return name
	}
	return "turn " + strconv.Itoa(int(t))
}

// PathEdge is one traversed graph edge as returned by the search engine
type PathEdge struct {
	Node   uint32   `json:"node"`
	Turn   TurnCode `json:"turn"`
	NameID uint32   `json:"name_id"`
	Length int      `json:"length"`
}

// PhantomEndpoint is a requested point snapped onto the road network.
// A nil Location means the endpoint was never resolved.
type PhantomEndpoint struct {
	Location *Coordinate `json:"location"`
	NameID   uint32      `json:"name_id"`
}

// IsSet reports whether the endpoint has a resolved location
func (p PhantomEndpoint) IsSet() bool {
	return p.Location != nil
}

// PhantomNodes holds the snapped source and target of a route or a route segment
type PhantomNodes struct {
	Source PhantomEndpoint `json:"source"`
	Target PhantomEndpoint `json:"target"`
}

// RawRoute is the path data produced by the search engine, one entry per
// leg between consecutive requested points
type RawRoute struct {
	Segments          [][]PathEdge   `json:"segments"`
	SegmentEndpoints  []PhantomNodes `json:"segment_endpoints"`
	RawViaCoordinates []Coordinate   `json:"raw_via_coordinates"`
}

// EdgeCount returns the number of edges over all segments
func (r *RawRoute) EdgeCount() int {
	n := 0
	for _, segment := range r.Segments {
		n += len(segment)
	}
	return n
}

// SearchResult is the outcome of a route search: either Found or NotFound
type SearchResult interface {
	searchResult()
}

// Found is a search result carrying a discovered route
type Found struct {
	Endpoints       PhantomNodes
	Route           RawRoute
	DurationSeconds int
}

// NotFound is a search result for which no route exists
type NotFound struct{}

func (Found) searchResult()    {}
func (NotFound) searchResult() {}

// Instruction is one turn-by-turn step
type Instruction struct {
	Turn          TurnCode
	NameID        uint32
	Name          string
	Distance      int
	Position      int
	GeometryIndex int
}

// RouteSummary contains the display values for a described route
type RouteSummary struct {
	StartName       string
	DestName        string
	DistanceMeters  int
	DurationSeconds int
	Distance        string
	Duration        string
	DistanceText    string
	DurationText    string
}

// TrailingPolicy decides where distance after the last instruction goes
type TrailingPolicy string

const (
	// TrailingFold adds the trailing distance to the last emitted instruction
	TrailingFold TrailingPolicy = "fold"
	// TrailingDrop discards the trailing distance
	TrailingDrop TrailingPolicy = "drop"
	// TrailingArrive emits a synthetic arrival instruction carrying it
	TrailingArrive TrailingPolicy = "arrive"
)

// ParseTrailingPolicy validates a policy name; empty selects TrailingFold
func ParseTrailingPolicy(s string) (TrailingPolicy, error) {
	switch TrailingPolicy(s) {
	case "", TrailingFold:
		return TrailingFold, nil
	case TrailingDrop, TrailingArrive:
		return TrailingPolicy(s), nil
	}
	return "", fmt.Errorf("unknown trailing distance policy %q", s)
}

// DescriptorConfig selects which optional parts of a description are rendered
type DescriptorConfig struct {
	Geometry       bool           `json:"geometry"`
	EncodeGeometry bool           `json:"encode_geometry"`
	Instructions   bool           `json:"instructions"`
	Trailing       TrailingPolicy `json:"trailing"`
}

// DefaultDescriptorConfig renders everything with an encoded geometry
func DefaultDescriptorConfig() DescriptorConfig {
	return DescriptorConfig{
		Geometry:       true,
		EncodeGeometry: true,
		Instructions:   true,
		Trailing:       TrailingFold,
	}
}

// StreetName is a row of the street name table
type StreetName struct {
	ID   uint32 `json:"id"`
	Name string `json:"name"`
}

// Node is a graph node with its location
type Node struct {
	ID       uint32     `json:"id"`
	Location Coordinate `json:"location"`
}
