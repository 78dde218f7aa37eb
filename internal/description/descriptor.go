// Package description turns the raw output of a route search into a
// client-facing route description: summary, geometry and turn-by-turn
// instructions.
package description

import (
	"fmt"

	"route-descriptor/internal/models"
)

// NameFunc resolves a street name id to its display name
type NameFunc func(id uint32) string

// CoordinateFunc resolves a graph node id to its location
type CoordinateFunc func(node uint32) (models.Coordinate, bool)

// ErrMalformedRoute is returned when the search result is internally
// inconsistent and cannot be described
type ErrMalformedRoute struct {
	Reason string
}

func (e *ErrMalformedRoute) Error() string {
	return fmt.Sprintf("malformed route: %s", e.Reason)
}

func malformed(format string, args ...any) error {
	return &ErrMalformedRoute{Reason: fmt.Sprintf(format, args...)}
}

// Descriptor builds route descriptions. It only holds the lookup functions,
// so one instance can serve concurrent requests.
type Descriptor struct {
	nameFor       NameFunc
	coordinateFor CoordinateFunc
	trailing      models.TrailingPolicy
}

// New creates a Descriptor backed by the given lookups
func New(names NameFunc, coords CoordinateFunc, trailing models.TrailingPolicy) *Descriptor {
	return &Descriptor{
		nameFor:       names,
		coordinateFor: coords,
		trailing:      trailing,
	}
}

// Description is the rendered-independent result of describing a route
type Description struct {
	Found        bool
	Summary      models.RouteSummary
	Geometry     []models.Coordinate
	Instructions []models.Instruction
	ViaPoints    []models.Coordinate
}

// Describe runs a single ingestion pass over the search result
func (d *Descriptor) Describe(result models.SearchResult) (*Description, error) {
	switch r := result.(type) {
	case models.Found:
		if len(r.Route.Segments) == 0 {
			return notFound(), nil
		}
		return d.describeFound(&r)
	case *models.Found:
		if r == nil || len(r.Route.Segments) == 0 {
			return notFound(), nil
		}
		return d.describeFound(r)
	case models.NotFound, *models.NotFound, nil:
		return notFound(), nil
	default:
		return nil, fmt.Errorf("unsupported search result %T", result)
	}
}

func notFound() *Description {
	return &Description{
		Summary:      BuildSummary("", "", 0, 0),
		Geometry:     []models.Coordinate{},
		Instructions: []models.Instruction{},
		ViaPoints:    []models.Coordinate{},
	}
}

func (d *Descriptor) describeFound(found *models.Found) (*Description, error) {
	source, target := found.Endpoints.Source, found.Endpoints.Target
	if !source.IsSet() {
		return nil, malformed("origin phantom has no location")
	}
	if !target.IsSet() {
		return nil, malformed("destination phantom has no location")
	}

	route := &found.Route
	if len(route.SegmentEndpoints) > 0 {
		first := route.SegmentEndpoints[0].Source
		if first.IsSet() && *first.Location != *source.Location {
			return nil, malformed("first segment starts at %s, route origin is %s", *first.Location, *source.Location)
		}
	}

	viaPoints, err := resolveViaPoints(route)
	if err != nil {
		return nil, err
	}

	edgeCount := route.EdgeCount()
	stream := NewCoordinateStream(edgeCount + 2)
	aggregator := NewInstructionAggregator(d.trailing, edgeCount/4+1)
	distance := 0

	stream.Begin(*source.Location)
	for segmentIdx, segment := range route.Segments {
		for edgeIdx, edge := range segment {
			location, ok := d.coordinateFor(edge.Node)
			if !ok {
				return nil, malformed("segment %d edge %d: unknown node %d", segmentIdx, edgeIdx, edge.Node)
			}
			if edge.Length < 0 {
				return nil, malformed("segment %d edge %d: negative length %d", segmentIdx, edgeIdx, edge.Length)
			}

			stream.Append(location)
			aggregator.Add(edge, stream.Len()-1)
			distance += edge.Length
		}
	}
	stream.End(*target.Location)

	instructions := aggregator.Finish(target, stream.Len()-1)
	for i := range instructions {
		instructions[i].Name = d.nameFor(instructions[i].NameID)
	}

	return &Description{
		Found: true,
		Summary: BuildSummary(
			d.nameFor(source.NameID),
			d.nameFor(target.NameID),
			distance,
			found.DurationSeconds,
		),
		Geometry:     stream.Points(),
		Instructions: instructions,
		ViaPoints:    viaPoints,
	}, nil
}

// resolveViaPoints returns one point per boundary between consecutive
// segments. The snapped location is preferred, the raw requested coordinate
// is the fallback.
func resolveViaPoints(route *models.RawRoute) ([]models.Coordinate, error) {
	segments := len(route.Segments)
	endpoints := len(route.SegmentEndpoints)

	if segments > 1 && endpoints != segments {
		return nil, malformed("%d segments but %d segment endpoints", segments, endpoints)
	}
	if segments == 1 && endpoints > 1 {
		return nil, malformed("1 segment but %d segment endpoints", endpoints)
	}

	viaPoints := make([]models.Coordinate, 0, max(segments-1, 0))
	for i := 1; i < segments; i++ {
		phantom := route.SegmentEndpoints[i].Source
		if phantom.IsSet() {
			viaPoints = append(viaPoints, *phantom.Location)
			continue
		}
		if i >= len(route.RawViaCoordinates) {
			return nil, malformed("via point %d has neither a snapped nor a requested location", i)
		}
		viaPoints = append(viaPoints, route.RawViaCoordinates[i])
	}

	return viaPoints, nil
}
