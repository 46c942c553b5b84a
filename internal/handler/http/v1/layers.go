package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Get a reference layer
// @Description Get a reference GeoJSON layer (boundary or roads) unmodified
// @Tags Layers
// @Produce json
// @Param name path string true "Layer name" Enums(boundary, roads)
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 404 {object} map[string]string "Layer not found"
// @Router /layers/{name} [get]
func (h *Handler) getLayer(c *gin.Context) {
	name := c.Param("name")
	layer, ok := h.layers.Get(name)
	if !ok {
		h.logger.WithField("method", "getLayer").WithField("layer", name).Warn("Layer not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "layer not found"})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", layer.Raw)
}

// @Summary Get the map legend
// @Description Category colors and buffer radius colors
// @Tags Layers
// @Produce json
// @Success 200 {object} LegendResponse
// @Router /legend [get]
func (h *Handler) legend(c *gin.Context) {
	c.JSON(http.StatusOK, LegendFor(h.cfg.BufferRadii))
}
