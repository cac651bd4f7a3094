package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Модель представления, только чтение
	state := api.Group("/state")
	{
		state.GET("/hexes", h.listHexes)
		state.GET("/hexes/summary", h.hexSummary)
		state.GET("/incidents", h.listIncidents)
		state.GET("/vehicles", h.listVehicles)
		state.GET("/alerts", h.listAlerts)
		state.GET("/signals", h.listSignals)
		state.GET("/routes", h.listRoutes)
		state.GET("/dispatch", h.getDispatch)
		state.GET("/simulation", h.getSimulation)
		state.GET("/status", h.getStatus)
	}

	// Команды оператора; ключ проверяется, только если ключи заданы
	commands := api.Group("")
	if len(h.cfg.APIKeys) > 0 {
		commands.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		commands.POST("/incidents", h.createIncident)
		commands.PATCH("/incidents/:id/attended", h.markAttended)
		commands.POST("/vehicles/deploy", h.deployVehicles)
		commands.DELETE("/vehicles/:id", h.deleteVehicle)
		commands.POST("/simulation/config", h.saveSimulationConfig)
		commands.POST("/simulation/run", h.runSimulation)
		commands.POST("/simulation/reset", h.resetSimulation)
	}

	audio := api.Group("/audio")
	{
		audio.POST("/enable", h.enableAudio)
		audio.POST("/disable", h.disableAudio)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
