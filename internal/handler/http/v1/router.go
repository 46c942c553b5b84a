package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Коллекция объектов
	facilities := api.Group("/facilities")
	{
		facilities.GET("", h.listFacilities)
		facilities.GET("/stats", h.getStats)
		facilities.POST("/reload", h.reloadFacilities)
	}

	// Справочные слои и легенда
	api.GET("/layers/:name", h.getLayer)
	api.GET("/legend", h.legend)

	// Пространственный анализ без состояния
	analysis := api.Group("/analysis")
	{
		analysis.POST("/nearest", h.nearestFacility)
		analysis.POST("/distance", h.distance)
		analysis.GET("/buffers", h.buffers)
		analysis.POST("/coverage", h.coverage)
	}

	// Состояние карты клиента
	sessions := api.Group("/sessions")
	{
		sessions.POST("", h.createSession)
		sessions.GET("/:id", h.getSession)
		sessions.DELETE("/:id", h.deleteSession)
		sessions.POST("/:id/measurement/toggle", h.toggleMeasurement)
		sessions.POST("/:id/measurement/select", h.selectFacility)
		sessions.POST("/:id/probe", h.probe)
		sessions.DELETE("/:id/probe", h.dismissProbe)
		sessions.POST("/:id/categories/toggle", h.toggleCategory)
		sessions.POST("/:id/buffers/toggle", h.toggleBufferRadius)
		sessions.PUT("/:id/buffers/visibility", h.setBuffersVisibility)
	}

	// Редактирование объектов, только с API-ключом
	admin := api.Group("/admin", APIKeyAuthMiddleware(h.cfg, h.logger))
	{
		admin.GET("/session", h.adminSession)
		admin.GET("/facilities", h.adminListFacilities)
		admin.POST("/facilities", h.createFacility)
		admin.PUT("/facilities/:id", h.updateFacility)
		admin.DELETE("/facilities/:id", h.deleteFacility)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
