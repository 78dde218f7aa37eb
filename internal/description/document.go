package description

import (
	"encoding/json"
	"strconv"

	"route-descriptor/internal/models"
	"route-descriptor/internal/polyline"
)

// Document status values and messages
const (
	DocumentVersion = 0.3

	StatusFound    = 0
	StatusNotFound = 207

	MessageFound    = "Found route between points"
	MessageNotFound = "Cannot find route between points"

	// DefaultTransactionID identifies the document format to existing clients
	DefaultTransactionID = "OSRM Routing Engine JSON Descriptor (v0.2)"
)

// Document is the client-facing route description. Field order is part of
// the wire format.
type Document struct {
	Version           float64             `json:"version"`
	Status            int                 `json:"status"`
	StatusMessage     string              `json:"status_message"`
	RouteSummary      DocumentSummary     `json:"route_summary"`
	RouteGeometry     json.RawMessage     `json:"route_geometry"`
	RouteInstructions []InstructionEntry  `json:"route_instructions"`
	ViaPoints         []models.Coordinate `json:"via_points"`
	TransactionID     string              `json:"transactionId"`
}

// DocumentSummary is the route_summary object. Totals are emitted as JSON
// numbers from their preformatted strings.
type DocumentSummary struct {
	TotalDistance json.Number `json:"total_distance"`
	TotalTime     json.Number `json:"total_time"`
	StartPoint    string      `json:"start_point"`
	EndPoint      string      `json:"end_point"`
}

// InstructionEntry renders as
// ["<turn code>", "<street name>", <distance>, <position>, <geometry index>]
type InstructionEntry models.Instruction

// MarshalJSON implements json.Marshaler
func (e InstructionEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		strconv.Itoa(int(e.Turn)),
		e.Name,
		e.Distance,
		e.Position,
		e.GeometryIndex,
	})
}

var emptyGeometry = json.RawMessage("[]")

// Document renders the description. Geometry and via points are only
// emitted when cfg.Geometry is set, instructions only when
// cfg.Instructions is set.
func (d *Description) Document(cfg models.DescriptorConfig, transactionID string) *Document {
	if transactionID == "" {
		transactionID = DefaultTransactionID
	}

	doc := &Document{
		Version:           DocumentVersion,
		Status:            StatusNotFound,
		StatusMessage:     MessageNotFound,
		RouteSummary:      summaryEntry(d.Summary),
		RouteGeometry:     emptyGeometry,
		RouteInstructions: []InstructionEntry{},
		ViaPoints:         []models.Coordinate{},
		TransactionID:     transactionID,
	}
	if d.Found {
		doc.Status = StatusFound
		doc.StatusMessage = MessageFound
	}

	if cfg.Geometry {
		doc.RouteGeometry = RenderGeometry(d.Geometry, cfg.EncodeGeometry)
		doc.ViaPoints = d.ViaPoints
	}

	if cfg.Instructions {
		doc.RouteInstructions = make([]InstructionEntry, len(d.Instructions))
		for i, instr := range d.Instructions {
			doc.RouteInstructions[i] = InstructionEntry(instr)
		}
	}

	return doc
}

func summaryEntry(s models.RouteSummary) DocumentSummary {
	return DocumentSummary{
		TotalDistance: json.Number(s.Distance),
		TotalTime:     json.Number(s.Duration),
		StartPoint:    s.StartName,
		EndPoint:      s.DestName,
	}
}

// RenderGeometry renders coordinates either as an encoded polyline JSON
// string or as a literal list of [lat, lon] pairs
func RenderGeometry(coords []models.Coordinate, encoded bool) json.RawMessage {
	if !encoded {
		return polyline.AppendUnencoded(make([]byte, 0, len(coords)*24+2), coords)
	}

	// The polyline alphabet is '?'..'~'; only the backslash needs escaping
	enc := polyline.Encode(coords)
	buf := make([]byte, 0, len(enc)+8)
	buf = append(buf, '"')
	for i := 0; i < len(enc); i++ {
		if enc[i] == '\\' {
			buf = append(buf, '\\')
		}
		buf = append(buf, enc[i])
	}
	return append(buf, '"')
}
