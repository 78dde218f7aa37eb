package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"route-descriptor/internal/models"
	"route-descriptor/internal/polyline"
)

// DecodePolylineResponse is the response of GET /api/v1/polyline/decode
type DecodePolylineResponse struct {
	Count       int                 `json:"count"`
	Coordinates []models.Coordinate `json:"coordinates"`
}

// DecodePolyline decodes an encoded route geometry back into coordinates
func (h *Handler) DecodePolyline(c *gin.Context) {
	encoded, ok := c.GetQuery("encoded")
	if !ok {
		h.handleValidationError(c, "encoded parameter is required")
		return
	}

	coords, err := polyline.Decode(encoded)
	if err != nil {
		h.handleValidationError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, DecodePolylineResponse{
		Count:       len(coords),
		Coordinates: coords,
	})
}
