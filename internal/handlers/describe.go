package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"route-descriptor/internal/description"
	"route-descriptor/internal/models"
)

// DescribeRequest is the raw search result posted by the routing engine
type DescribeRequest struct {
	Found             bool                  `json:"found"`
	DurationSeconds   int                   `json:"duration_seconds"`
	Phantoms          models.PhantomNodes   `json:"phantoms"`
	Segments          [][]models.PathEdge   `json:"segments"`
	SegmentEndpoints  []models.PhantomNodes `json:"segment_endpoints"`
	RawViaCoordinates []models.Coordinate   `json:"raw_via_coordinates"`
}

// SearchResult converts the request into the engine's search result
func (r *DescribeRequest) SearchResult() models.SearchResult {
	if !r.Found {
		return models.NotFound{}
	}
	return models.Found{
		Endpoints: r.Phantoms,
		Route: models.RawRoute{
			Segments:          r.Segments,
			SegmentEndpoints:  r.SegmentEndpoints,
			RawViaCoordinates: r.RawViaCoordinates,
		},
		DurationSeconds: r.DurationSeconds,
	}
}

// referencedIDs returns the distinct node and name ids the request needs
func (r *DescribeRequest) referencedIDs() (nodes, names []uint32) {
	seenNodes := make(map[uint32]struct{})
	seenNames := make(map[uint32]struct{})

	addName := func(id uint32) {
		if _, ok := seenNames[id]; !ok {
			seenNames[id] = struct{}{}
			names = append(names, id)
		}
	}

	addName(r.Phantoms.Source.NameID)
	addName(r.Phantoms.Target.NameID)
	for _, segment := range r.Segments {
		for _, edge := range segment {
			if _, ok := seenNodes[edge.Node]; !ok {
				seenNodes[edge.Node] = struct{}{}
				nodes = append(nodes, edge.Node)
			}
			if edge.Turn != models.TurnNone {
				addName(edge.NameID)
			}
		}
	}
	return nodes, names
}

// descriptorConfig applies the query parameters on top of the configured defaults
func (h *Handler) descriptorConfig(c *gin.Context) (models.DescriptorConfig, error) {
	cfg := h.Defaults

	flags := []struct {
		key string
		dst *bool
	}{
		{"geometry", &cfg.Geometry},
		{"compression", &cfg.EncodeGeometry},
		{"instructions", &cfg.Instructions},
	}
	for _, flag := range flags {
		raw, ok := c.GetQuery(flag.key)
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s parameter %q", flag.key, raw)
		}
		*flag.dst = v
	}

	if raw, ok := c.GetQuery("trailing"); ok {
		policy, err := models.ParseTrailingPolicy(raw)
		if err != nil {
			return cfg, err
		}
		cfg.Trailing = policy
	}

	return cfg, nil
}

// describe loads the graph metadata the request references and runs the descriptor
func (h *Handler) describe(ctx context.Context, req *DescribeRequest, trailing models.TrailingPolicy) (*description.Description, error) {
	var names map[uint32]string
	var nodes map[uint32]models.Coordinate

	if req.Found {
		nodeIDs, nameIDs := req.referencedIDs()

		var err error
		nodes, err = h.Graph.Nodes().GetByIDs(ctx, nodeIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load nodes: %w", err)
		}
		names, err = h.Graph.Names().GetByIDs(ctx, nameIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load street names: %w", err)
		}
	}

	descriptor := description.New(
		func(id uint32) string { return names[id] },
		func(node uint32) (models.Coordinate, bool) {
			c, ok := nodes[node]
			return c, ok
		},
		trailing,
	)
	return descriptor.Describe(req.SearchResult())
}

func (h *Handler) bindDescribe(c *gin.Context) (*DescribeRequest, models.DescriptorConfig, bool) {
	cfg, err := h.descriptorConfig(c)
	if err != nil {
		h.handleValidationError(c, err.Error())
		return nil, cfg, false
	}

	var req DescribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleValidationError(c, err.Error())
		return nil, cfg, false
	}
	return &req, cfg, true
}

// Describe answers the route description document for a search result
func (h *Handler) Describe(c *gin.Context) {
	req, cfg, ok := h.bindDescribe(c)
	if !ok {
		return
	}

	desc, err := h.describe(c.Request.Context(), req, cfg.Trailing)
	if err != nil {
		h.handleDescribeError(c, err)
		return
	}

	doc := desc.Document(cfg, h.TransactionID)
	h.logger(c).Debug("route described",
		zap.Int("status", doc.Status),
		zap.Int("points", len(desc.Geometry)),
		zap.Int("instructions", len(desc.Instructions)),
	)
	c.JSON(http.StatusOK, doc)
}

// DescribeGeoJSON answers the description as a GeoJSON FeatureCollection
func (h *Handler) DescribeGeoJSON(c *gin.Context) {
	req, cfg, ok := h.bindDescribe(c)
	if !ok {
		return
	}

	desc, err := h.describe(c.Request.Context(), req, cfg.Trailing)
	if err != nil {
		h.handleDescribeError(c, err)
		return
	}

	c.JSON(http.StatusOK, desc.FeatureCollection(cfg))
}
