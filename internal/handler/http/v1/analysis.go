package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/shenikar/facility_gis/internal/mapstate"
	"github.com/shenikar/facility_gis/internal/spatial"
)

// resolveRadii проверяет, что радиусы входят в каталог; пустой список - радиусы по умолчанию
func (h *Handler) resolveRadii(radii []float64) ([]float64, error) {
	if len(radii) == 0 {
		return h.cfg.DefaultBufferRadii, nil
	}
	for _, r := range radii {
		known := false
		for _, c := range h.cfg.BufferRadii {
			if c == r {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("%w: %g", mapstate.ErrUnknownRadius, r)
		}
	}
	return radii, nil
}

// @Summary Find the nearest facility
// @Description Find the facility nearest to a point (great-circle distance). Optional category filter.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param point body NearestRequest true "Query point"
// @Success 200 {object} NearestResponse
// @Failure 400 {object} ValidationErrorResponse "Invalid request body or validation error"
// @Failure 503 {object} map[string]string "Facility data could not be loaded"
// @Router /analysis/nearest [post]
func (h *Handler) nearestFacility(c *gin.Context) {
	log := h.logger.WithField("method", "nearestFacility")

	var input NearestRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	categories, err := parseCategories(input.Categories)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	facilities, err := h.facilityService.ListFacilities(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	point := orb.Point{*input.Longitude, *input.Latitude}
	var nearest *spatial.NearestResult
	if res, ok := spatial.Nearest(point, filterByCategories(facilities, categories)); ok {
		nearest = &res
	}
	c.JSON(http.StatusOK, NearestToResponse(point, nearest))
}

// @Summary Distance between two points
// @Description Great-circle distance in kilometres on the mean Earth radius
// @Tags Analysis
// @Accept json
// @Produce json
// @Param points body DistanceRequest true "Two points"
// @Success 200 {object} DistanceResponse
// @Failure 400 {object} ValidationErrorResponse "Invalid request body or validation error"
// @Router /analysis/distance [post]
func (h *Handler) distance(c *gin.Context) {
	log := h.logger.WithField("method", "distance")

	var input DistanceRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	from := orb.Point{*input.From.Longitude, *input.From.Latitude}
	to := orb.Point{*input.To.Longitude, *input.To.Latitude}
	km := spatial.Distance(from, to)
	c.JSON(http.StatusOK, DistanceResponse{
		DistanceKm:    km,
		DistanceLabel: spatial.FormatDistance(km),
		Midpoint:      pointToArray(spatial.Midpoint(from, to)),
	})
}

// @Summary Buffer polygons
// @Description Buffer polygons around every facility for every requested radius (N x R features)
// @Tags Analysis
// @Produce json
// @Param radius query []number false "Radius in km, must be in the buffer catalogue" collectionFormat(multi)
// @Param category query []string false "Category filter" collectionFormat(multi)
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} map[string]string "Unknown radius or category"
// @Failure 503 {object} map[string]string "Facility data could not be loaded"
// @Router /analysis/buffers [get]
func (h *Handler) buffers(c *gin.Context) {
	log := h.logger.WithField("method", "buffers")

	raw := c.QueryArray("radius")
	requested := make([]float64, 0, len(raw))
	for _, v := range raw {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid radius %q", v)})
			return
		}
		requested = append(requested, r)
	}
	radii, err := h.resolveRadii(requested)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	categories, err := parseCategories(c.QueryArray("category"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	facilities, err := h.facilityService.ListFacilities(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, BuffersToCollection(spatial.Buffers(filterByCategories(facilities, categories), radii)))
}

// @Summary Service coverage of a point
// @Description Check which facility buffers contain a point
// @Tags Analysis
// @Accept json
// @Produce json
// @Param point body CoverageRequest true "Point and optional radii"
// @Success 200 {object} CoverageResponse
// @Failure 400 {object} ValidationErrorResponse "Invalid request body, unknown radius or category"
// @Failure 503 {object} map[string]string "Facility data could not be loaded"
// @Router /analysis/coverage [post]
func (h *Handler) coverage(c *gin.Context) {
	log := h.logger.WithField("method", "coverage")

	var input CoverageRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	radii, err := h.resolveRadii(input.Radii)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	categories, err := parseCategories(input.Categories)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	facilities, err := h.facilityService.ListFacilities(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	point := orb.Point{*input.Longitude, *input.Latitude}
	resp := CoverageResponse{Hits: make([]CoverageHit, 0)}
	for _, b := range spatial.Buffers(filterByCategories(facilities, categories), radii) {
		if !b.Contains(point) {
			continue
		}
		resp.Hits = append(resp.Hits, CoverageHit{
			FacilityKey:  b.Facility.Key(),
			FacilityName: b.Facility.Name,
			RadiusKm:     b.RadiusKm,
			DistanceKm:   spatial.Distance(point, b.Center),
		})
	}
	resp.Covered = len(resp.Hits) > 0
	c.JSON(http.StatusOK, resp)
}
