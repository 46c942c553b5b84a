package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/shenikar/facility_gis/internal/mapstate"
	"github.com/shenikar/facility_gis/internal/models"
	"github.com/sirupsen/logrus"
)

func (h *Handler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return uuid.Nil, false
	}
	return id, true
}

// dispatch применяет событие к сессии и отвечает новым снимком
func (h *Handler) dispatch(c *gin.Context, log *logrus.Entry, id uuid.UUID, event mapstate.Event) {
	view, err := h.sessionService.Dispatch(c.Request.Context(), id, event)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToSessionResponse(id, view))
}

// @Summary Create a map session
// @Description Create a map view state with all categories visible and default buffer radii enabled
// @Tags Sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Failure 503 {object} map[string]string "Facility data could not be loaded"
// @Router /sessions [post]
func (h *Handler) createSession(c *gin.Context) {
	log := h.logger.WithField("method", "createSession")

	id, view, err := h.sessionService.CreateSession(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ViewToSessionResponse(id, view))
}

// @Summary Get a map session
// @Description Get the current view of a map session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [get]
func (h *Handler) getSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSession").WithField("id", id)

	view, err := h.sessionService.GetSession(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToSessionResponse(id, view))
}

// @Summary Delete a map session
// @Tags Sessions
// @Param id path string true "Session ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [delete]
func (h *Handler) deleteSession(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteSession").WithField("id", id)

	if err := h.sessionService.DeleteSession(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Toggle measurement mode
// @Description Enter or leave measurement mode. Entering clears the probe, leaving clears the selection.
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/measurement/toggle [post]
func (h *Handler) toggleMeasurement(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.dispatch(c, h.logger.WithField("method", "toggleMeasurement").WithField("id", id), id, mapstate.ToggleMeasurement{})
}

// @Summary Select a facility for measurement
// @Description Click a facility marker. Ignored outside measurement mode; re-selecting removes it; a third selection evicts the oldest.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param facility body SelectFacilityRequest true "Facility key"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ValidationErrorResponse "Invalid request body"
// @Failure 404 {object} map[string]string "Session or facility not found"
// @Router /sessions/{id}/measurement/select [post]
func (h *Handler) selectFacility(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "selectFacility").WithField("id", id)

	var input SelectFacilityRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	view, err := h.sessionService.SelectFacility(c.Request.Context(), id, input.Key)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ViewToSessionResponse(id, view))
}

// @Summary Probe a map point
// @Description Click on the map: records the point and its nearest visible facility. Ignored in measurement mode.
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param point body PointRequest true "Clicked point"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ValidationErrorResponse "Invalid request body"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/probe [post]
func (h *Handler) probe(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "probe").WithField("id", id)

	var input PointRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	h.dispatch(c, log, id, mapstate.ClickMap{Point: orb.Point{*input.Longitude, *input.Latitude}})
}

// @Summary Dismiss the probe
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/probe [delete]
func (h *Handler) dismissProbe(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	h.dispatch(c, h.logger.WithField("method", "dismissProbe").WithField("id", id), id, mapstate.DismissProbe{})
}

// @Summary Toggle a category filter
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param category body ToggleCategoryRequest true "Category"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Unknown category"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/categories/toggle [post]
func (h *Handler) toggleCategory(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "toggleCategory").WithField("id", id)

	var input ToggleCategoryRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	h.dispatch(c, log, id, mapstate.ToggleCategory{Category: models.Category(input.Category)})
}

// @Summary Toggle a buffer radius
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param radius body ToggleRadiusRequest true "Radius in km"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Radius is not in the buffer catalogue"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/buffers/toggle [post]
func (h *Handler) toggleBufferRadius(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "toggleBufferRadius").WithField("id", id)

	var input ToggleRadiusRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	h.dispatch(c, log, id, mapstate.ToggleBufferRadius{RadiusKm: *input.RadiusKm})
}

// @Summary Show or hide all buffers
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param visibility body BuffersVisibilityRequest true "Visibility flag"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ValidationErrorResponse "Invalid request body"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/buffers/visibility [put]
func (h *Handler) setBuffersVisibility(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "setBuffersVisibility").WithField("id", id)

	var input BuffersVisibilityRequest
	if !h.bindJSON(c, log, &input) {
		return
	}
	h.dispatch(c, log, id, mapstate.SetBuffersShown{Shown: *input.Shown})
}
