package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/facility_gis/internal/geodata"
	"github.com/shenikar/facility_gis/internal/mapstate"
)

// @Summary Get facilities as GeoJSON
// @Description Get the facility collection as a GeoJSON FeatureCollection, optionally filtered by category
// @Tags Facilities
// @Produce json
// @Param category query []string false "Category filter (Pendidikan, Kesehatan, Tempat Ibadah)" collectionFormat(multi)
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} map[string]string "Unknown category"
// @Failure 503 {object} map[string]string "Facility data could not be loaded"
// @Router /facilities [get]
func (h *Handler) listFacilities(c *gin.Context) {
	log := h.logger.WithField("method", "listFacilities")

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

	c.JSON(http.StatusOK, geodata.FacilitiesToCollection(filterByCategories(facilities, categories)))
}

// @Summary Get facility counts
// @Description Get the number of facilities per category
// @Tags Facilities
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 503 {object} map[string]string "Facility data could not be loaded"
// @Router /facilities/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	facilities, err := h.facilityService.ListFacilities(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	counts := mapstate.CountByCategory(facilities)
	resp := StatsResponse{Total: len(facilities), ByCategory: make(map[string]int, len(counts))}
	for category, n := range counts {
		resp.ByCategory[string(category)] = n
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Reload facilities
// @Description Reload the facility collection from the backend (or fallback file). Used to recover after a load failure.
// @Tags Facilities
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 503 {object} map[string]string "Facility data could not be loaded"
// @Router /facilities/reload [post]
func (h *Handler) reloadFacilities(c *gin.Context) {
	log := h.logger.WithField("method", "reloadFacilities")

	facilities, err := h.facilityService.Reload(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ReloadResponse{Count: len(facilities)})
}

// @Summary Check admin session
// @Description Check that the provided API key opens an admin session
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]bool
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /admin/session [get]
func (h *Handler) adminSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

// @Summary List facilities for the admin table
// @Description List facilities filtered by a case-insensitive search over name, address and type, and by category. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "Search text"
// @Param category query string false "Category"
// @Success 200 {array} FacilityResponse
// @Failure 400 {object} map[string]string "Unknown category"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Facility data could not be loaded"
// @Router /admin/facilities [get]
func (h *Handler) adminListFacilities(c *gin.Context) {
	log := h.logger.WithField("method", "adminListFacilities")

	filter := mapstate.TableFilter{Search: c.Query("search")}
	if raw := c.Query("category"); raw != "" {
		categories, err := parseCategories([]string{raw})
		if err != nil {
			h.respondError(c, log, err)
			return
		}
		filter.Category = categories[0]
	}

	facilities, err := h.facilityService.ListFacilities(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToFacilityResponses(filter.Apply(facilities)))
}

// @Summary Create a new facility
// @Description Create a new facility. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param facility body FacilityRequest true "Facility creation request"
// @Success 201 {object} FacilityResponse
// @Failure 400 {object} ValidationErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/facilities [post]
func (h *Handler) createFacility(c *gin.Context) {
	log := h.logger.WithField("method", "createFacility")

	var input FacilityRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToFacilityModel(input)
	if err := h.facilityService.CreateFacility(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToFacilityResponse(model))
}

// @Summary Update an existing facility
// @Description Update an existing facility by ID. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Facility ID"
// @Param facility body FacilityRequest true "Facility update request"
// @Success 200 {object} FacilityResponse
// @Failure 400 {object} ValidationErrorResponse "Invalid facility ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Facility not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/facilities/{id} [put]
func (h *Handler) updateFacility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility ID"})
		return
	}
	log := h.logger.WithField("method", "updateFacility").WithField("id", id)

	var input FacilityRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	model := DTOToFacilityModel(input)
	model.ID = id
	if err := h.facilityService.UpdateFacility(c.Request.Context(), model); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToFacilityResponse(model))
}

// @Summary Delete a facility
// @Description Delete a facility by its ID. Requires API key.
// @Tags Admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Facility ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid facility ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Facility not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /admin/facilities/{id} [delete]
func (h *Handler) deleteFacility(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid facility ID"})
		return
	}
	log := h.logger.WithField("method", "deleteFacility").WithField("id", id)

	if err := h.facilityService.DeleteFacility(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
