package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"route-descriptor/internal/database"
	"route-descriptor/internal/description"
	"route-descriptor/internal/models"
)

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "request_id"

// Handler provides common handler utilities and dependencies
type Handler struct {
	Graph         database.GraphStore
	Defaults      models.DescriptorConfig
	TransactionID string
	Logger        *zap.Logger
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// RegisterRoutes registers all API routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")
	{
		api.GET("/health", h.Health)

		api.POST("/describe", h.Describe)
		api.POST("/describe/geojson", h.DescribeGeoJSON)
		api.GET("/polyline/decode", h.DecodePolyline)

		graph := api.Group("/graph")
		graph.PUT("/names", h.PutNames)
		graph.PUT("/nodes", h.PutNodes)
	}
}

func (h *Handler) logger(c *gin.Context) *zap.Logger {
	log := h.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if id := c.GetString(RequestIDKey); id != "" {
		log = log.With(zap.String("request_id", id))
	}
	return log
}

// writeError writes a JSON error response
func (h *Handler) writeError(c *gin.Context, status int, code, message string, details any) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// handleValidationError handles 400 errors
func (h *Handler) handleValidationError(c *gin.Context, message string) {
	h.writeError(c, http.StatusBadRequest, "INVALID_REQUEST", message, nil)
}

// handleDescribeError maps description failures to 422, anything else to 500
func (h *Handler) handleDescribeError(c *gin.Context, err error) {
	var merr *description.ErrMalformedRoute
	if errors.As(err, &merr) {
		h.logger(c).Warn("malformed route", zap.String("reason", merr.Reason))
		h.writeError(c, http.StatusUnprocessableEntity, "MALFORMED_ROUTE", merr.Reason, nil)
		return
	}
	h.handleInternalError(c, err)
}

// handleInternalError handles 500 errors
func (h *Handler) handleInternalError(c *gin.Context, err error) {
	h.logger(c).Error("internal error", zap.Error(err))
	h.writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An error occurred. Please try again.", nil)
}
