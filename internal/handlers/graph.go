package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"route-descriptor/internal/database"
	"route-descriptor/internal/models"
)

// UpsertResponse reports how many rows a graph load wrote
type UpsertResponse struct {
	Upserted int `json:"upserted"`
	Total    int `json:"total"`
}

// HealthResponse is the response of GET /api/v1/health
type HealthResponse struct {
	Status string `json:"status"`
	Names  int    `json:"names"`
	Nodes  int    `json:"nodes"`
}

// PutNames loads street names into the graph store
func (h *Handler) PutNames(c *gin.Context) {
	var names []models.StreetName
	if err := c.ShouldBindJSON(&names); err != nil {
		h.handleValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := h.Graph.Names().Upsert(ctx, names); err != nil {
		h.handleInternalError(c, err)
		return
	}

	total, err := h.Graph.Names().Count(ctx)
	if err != nil {
		h.handleInternalError(c, err)
		return
	}

	h.logger(c).Info("street names loaded", zap.Int("upserted", len(names)), zap.Int("total", total))
	c.JSON(http.StatusOK, UpsertResponse{Upserted: len(names), Total: total})
}

// PutNodes loads node locations into the graph store
func (h *Handler) PutNodes(c *gin.Context) {
	var nodes []models.Node
	if err := c.ShouldBindJSON(&nodes); err != nil {
		h.handleValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	if err := h.Graph.Nodes().Upsert(ctx, nodes); err != nil {
		if errors.Is(err, database.ErrInvalidNode) {
			h.handleValidationError(c, err.Error())
			return
		}
		h.handleInternalError(c, err)
		return
	}

	total, err := h.Graph.Nodes().Count(ctx)
	if err != nil {
		h.handleInternalError(c, err)
		return
	}

	h.logger(c).Info("nodes loaded", zap.Int("upserted", len(nodes)), zap.Int("total", total))
	c.JSON(http.StatusOK, UpsertResponse{Upserted: len(nodes), Total: total})
}

// Health reports store connectivity and how much graph metadata is loaded
func (h *Handler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.Graph.HealthCheck(ctx); err != nil {
		h.logger(c).Warn("health check failed", zap.Error(err))
		h.writeError(c, http.StatusServiceUnavailable, "UNAVAILABLE", "graph store unavailable", nil)
		return
	}

	names, err := h.Graph.Names().Count(ctx)
	if err != nil {
		h.handleInternalError(c, err)
		return
	}
	nodes, err := h.Graph.Nodes().Count(ctx)
	if err != nil {
		h.handleInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Names: names, Nodes: nodes})
}
