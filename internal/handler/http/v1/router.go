package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Планирование миссий
	api.POST("/missions/strategy", h.generateStrategy)

	// Код Морзе
	morse := api.Group("/morse")
	{
		morse.GET("/alphabet", h.getAlphabet)
		morse.POST("/encode", h.encodeMorse)
		morse.POST("/decode", h.decodeMorse)
		morse.POST("/transcribe", h.transcribeMorse)
		morse.POST("/flashes", h.decodeFlashes)
	}

	// Геозона и защищенные сообщения
	geo := api.Group("/geofence")
	{
		geo.POST("/check", h.checkGeofence)
		geo.POST("/messages", h.sendSecureMessage)
	}

	// Маршруты системы
	api.GET("/system/health", h.healthCheck)
	api.GET("/system/info", h.systemInfo)
}
