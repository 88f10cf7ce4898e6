package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	} else {
		h.logger.Warn("API_KEYS is empty, API v1 is served without authentication")
	}

	// Инциденты, процедура реагирования и выезд по инциденту
	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/status", h.transitionStatus)
		incidents.POST("/:id/messages", h.appendMessage)
		incidents.PUT("/:id/location", h.updateLocation)
		incidents.PUT("/:id/intelligence", h.attachIntelligence)

		incidents.POST("/:id/workflow", h.startWorkflow)
		incidents.GET("/:id/workflow", h.getWorkflow)
		incidents.POST("/:id/workflow/steps/:index/toggle", h.toggleStep)

		incidents.GET("/:id/recommendations", h.recommendForIncident)
		incidents.POST("/:id/dispatch", h.requestDispatch)
	}

	// Состав группы реагирования
	ert := protected.Group("/ert")
	{
		ert.GET("/staff", h.listStaff)
		ert.POST("/staff", h.upsertStaff)
		ert.POST("/staff/:id/confirm", h.confirmDispatch)
		ert.GET("/recommendations", h.recommendForCategory)
	}

	// Лента живых событий
	live := protected.Group("/live")
	{
		live.GET("", h.liveSnapshot)
		live.DELETE("", h.clearLive)
		live.POST("/events", h.ingestLiveEvent)
		live.GET("/stream", h.liveStream)
	}
}
