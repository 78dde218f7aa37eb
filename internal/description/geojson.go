package description

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"route-descriptor/internal/models"
)

func toPoint(c models.Coordinate) orb.Point {
	return orb.Point{c.LonDegrees(), c.LatDegrees()}
}

// FeatureCollection renders the description as GeoJSON: the route as a
// LineString feature carrying the summary and instructions, followed by one
// Point feature per via point. A missing route yields an empty collection.
func (d *Description) FeatureCollection(cfg models.DescriptorConfig) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if !d.Found {
		return fc
	}

	line := make(orb.LineString, len(d.Geometry))
	for i, c := range d.Geometry {
		line[i] = toPoint(c)
	}

	route := geojson.NewFeature(line)
	route.Properties["kind"] = "route"
	route.Properties["start_point"] = d.Summary.StartName
	route.Properties["end_point"] = d.Summary.DestName
	route.Properties["total_distance"] = d.Summary.DistanceMeters
	route.Properties["total_time"] = d.Summary.DurationSeconds
	route.Properties["distance_text"] = d.Summary.DistanceText
	route.Properties["duration_text"] = d.Summary.DurationText

	if cfg.Instructions {
		steps := make([]map[string]any, len(d.Instructions))
		for i, instr := range d.Instructions {
			steps[i] = map[string]any{
				"turn":           int(instr.Turn),
				"maneuver":       instr.Turn.String(),
				"name":           instr.Name,
				"distance":       instr.Distance,
				"position":       instr.Position,
				"geometry_index": instr.GeometryIndex,
			}
		}
		route.Properties["instructions"] = steps
	}
	fc.Append(route)

	for i, via := range d.ViaPoints {
		f := geojson.NewFeature(toPoint(via))
		f.Properties["kind"] = "via"
		f.Properties["index"] = i + 1
		fc.Append(f)
	}

	return fc
}
