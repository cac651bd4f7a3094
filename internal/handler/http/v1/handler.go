package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/dispatch_console/internal/collaborator"
	"github.com/shenikar/dispatch_console/internal/config"
	"github.com/shenikar/dispatch_console/internal/models"
	"github.com/shenikar/dispatch_console/internal/service"
)

//go:generate mockgen -destination=mocks/mock_handler.go -package=mocks . CommandService,HexSummarizer

// CommandService определяет контракт команд оператора
type CommandService interface {
	CreateIncident(ctx context.Context, req collaborator.CreateIncidentRequest) (*models.CreateIncidentResult, error)
	DeployVehicles(ctx context.Context, req models.DeployRequest) (*models.DeployResult, error)
	DeleteVehicle(ctx context.Context, id models.ID) error
	MarkAttended(ctx context.Context, id models.ID) error
	SaveSimulationConfig(ctx context.Context, cfg models.SimulationConfig) (*models.SimulationConfig, error)
	RunSimulation(ctx context.Context, cfg models.SimulationConfig) (*models.SimulationResult, error)
	ResetSimulation(ctx context.Context) (string, error)
	InFlight() int64
}

// ViewService определяет контракт модели представления
type ViewService interface {
	Hexes() []service.HexView
	Incidents(liveOnly bool) []service.IncidentView
	Alerts(limit int) []service.AlertView
	Vehicles() []models.Vehicle
	Signals() []models.TrafficSignal
	Routes() []service.RouteView
	Dispatch() service.DispatchView
	Simulation() *models.SimulationResult
}

// HexSummarizer отдает сводку инцидентов по ячейкам
type HexSummarizer interface {
	HexSummary(ctx context.Context) ([]models.HexCell, error)
}

// AudioControl управляет воспроизведением радио-реплик
type AudioControl interface {
	Enable()
	Disable()
	Enabled() bool
	Pending() int
}

// Connectivity сообщает о состоянии push-канала
type Connectivity interface {
	Connected() bool
}

// Services - зависимости хендлера
type Services struct {
	Commands CommandService
	View     ViewService
	Summary  HexSummarizer
	Audio    AudioControl
	Stream   Connectivity
}

type Handler struct {
	svc      Services
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(svc Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// bind разбирает и валидирует тело. При ошибке ответ уже записан.
func (h *Handler) bind(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// commandFailed переводит ошибку команды в ответ. Повтор - на стороне клиента.
func (h *Handler) commandFailed(c *gin.Context, log *logrus.Entry, err error) {
	var ce *service.CommandError
	if !errors.As(err, &ce) {
		log.WithError(err).Error("Command failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := http.StatusBadGateway
	switch {
	case ce.Kind == service.KindTransport:
		status = http.StatusServiceUnavailable
	case ce.Kind == service.KindRejected && ce.StatusCode == http.StatusNotFound:
		status = http.StatusNotFound
	case ce.Kind == service.KindRejected && ce.StatusCode >= 400 && ce.StatusCode < 500:
		status = http.StatusUnprocessableEntity
	}
	log.WithError(err).WithField("kind", ce.Kind).Warn("Command failed")
	c.JSON(status, gin.H{"error": ce.Error(), "kind": ce.Kind})
}

// @Summary Hex grid with labels
// @Tags State
// @Produce json
// @Success 200 {array} service.HexView
// @Router /state/hexes [get]
func (h *Handler) listHexes(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.View.Hexes())
}

// @Summary Incident counts per hex
// @Description Proxied from the dispatch service, not cached.
// @Tags State
// @Produce json
// @Success 200 {array} models.HexCell
// @Failure 503 {object} map[string]string "Dispatch service unavailable"
// @Router /state/hexes/summary [get]
func (h *Handler) hexSummary(c *gin.Context) {
	log := h.logger.WithField("method", "hexSummary")
	cells, err := h.svc.Summary.HexSummary(c.Request.Context())
	if err != nil {
		log.WithError(err).Warn("Failed to fetch hex summary")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "hex summary unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cells": cells})
}

// @Summary List incidents
// @Tags State
// @Produce json
// @Param live query bool false "Only incidents not yet attended"
// @Success 200 {array} service.IncidentView
// @Router /state/incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	live, _ := strconv.ParseBool(c.DefaultQuery("live", "false"))
	c.JSON(http.StatusOK, h.svc.View.Incidents(live))
}

// @Summary List vehicles
// @Tags State
// @Produce json
// @Success 200 {array} models.Vehicle
// @Router /state/vehicles [get]
func (h *Handler) listVehicles(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.View.Vehicles())
}

// @Summary Latest patrol alerts
// @Tags State
// @Produce json
// @Param limit query int false "Number of alerts" default(20)
// @Success 200 {array} service.AlertView
// @Failure 400 {object} map[string]string "Invalid limit"
// @Router /state/alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	limit := h.cfg.AlertsVisible
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, h.svc.View.Alerts(limit))
}

// @Summary Traffic signal phases
// @Tags State
// @Produce json
// @Success 200 {array} models.TrafficSignal
// @Router /state/signals [get]
func (h *Handler) listSignals(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.View.Signals())
}

// @Summary Active routes trimmed to vehicle positions
// @Tags State
// @Produce json
// @Success 200 {array} service.RouteView
// @Router /state/routes [get]
func (h *Handler) listRoutes(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.View.Routes())
}

// @Summary Headline dispatch
// @Tags State
// @Produce json
// @Success 200 {object} service.DispatchView
// @Router /state/dispatch [get]
func (h *Handler) getDispatch(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.View.Dispatch())
}

// @Summary Last simulation result
// @Tags State
// @Produce json
// @Success 200 {object} models.SimulationResult
// @Failure 404 {object} map[string]string "No simulation has run"
// @Router /state/simulation [get]
func (h *Handler) getSimulation(c *gin.Context) {
	sim := h.svc.View.Simulation()
	if sim == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no simulation result"})
		return
	}
	c.JSON(http.StatusOK, sim)
}

// @Summary Console status
// @Tags State
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /state/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	inFlight := h.svc.Commands.InFlight()
	c.JSON(http.StatusOK, StatusResponse{
		Connected:    h.svc.Stream.Connected(),
		Busy:         inFlight > 0,
		InFlight:     inFlight,
		AudioEnabled: h.svc.Audio.Enabled(),
		QueuedCues:   h.svc.Audio.Pending(),
	})
}

// @Summary Create a new incident
// @Description Creates the incident in the dispatch service and merges the response. Requires API key when keys are configured.
// @Tags Commands
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body CreateIncidentRequest true "Incident creation request"
// @Success 201 {object} models.CreateIncidentResult
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Dispatch service unavailable"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")
	if !h.bind(c, log, &input) {
		return
	}

	res, err := h.svc.Commands.CreateIncident(c.Request.Context(), DTOToCreateIncident(input))
	if err != nil {
		h.commandFailed(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Mark incident attended
// @Tags Commands
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id}/attended [patch]
func (h *Handler) markAttended(c *gin.Context) {
	log := h.logger.WithField("method", "markAttended")
	id := models.NormalizeID(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	if err := h.svc.Commands.MarkAttended(c.Request.Context(), id); err != nil {
		h.commandFailed(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deploy vehicles
// @Tags Commands
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body DeployVehiclesRequest true "Deploy request"
// @Success 201 {object} models.DeployResult
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Router /vehicles/deploy [post]
func (h *Handler) deployVehicles(c *gin.Context) {
	var input DeployVehiclesRequest
	log := h.logger.WithField("method", "deployVehicles")
	if !h.bind(c, log, &input) {
		return
	}

	res, err := h.svc.Commands.DeployVehicles(c.Request.Context(), DTOToDeployRequest(input))
	if err != nil {
		h.commandFailed(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Delete a vehicle
// @Tags Commands
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Vehicle ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Router /vehicles/{id} [delete]
func (h *Handler) deleteVehicle(c *gin.Context) {
	log := h.logger.WithField("method", "deleteVehicle")
	id := models.NormalizeID(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle ID"})
		return
	}
	if err := h.svc.Commands.DeleteVehicle(c.Request.Context(), id); err != nil {
		h.commandFailed(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Save simulation config
// @Tags Simulation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param config body SimulationRequest true "Simulation config"
// @Success 200 {object} models.SimulationConfig
// @Router /simulation/config [post]
func (h *Handler) saveSimulationConfig(c *gin.Context) {
	var input SimulationRequest
	log := h.logger.WithField("method", "saveSimulationConfig")
	if !h.bind(c, log, &input) {
		return
	}

	saved, err := h.svc.Commands.SaveSimulationConfig(c.Request.Context(), DTOToSimulationConfig(input))
	if err != nil {
		h.commandFailed(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"config": saved})
}

// @Summary Run simulation scenario
// @Tags Simulation
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param config body SimulationRequest true "Scenario parameters"
// @Success 200 {object} models.SimulationResult
// @Router /simulation/run [post]
func (h *Handler) runSimulation(c *gin.Context) {
	var input SimulationRequest
	log := h.logger.WithField("method", "runSimulation")
	if !h.bind(c, log, &input) {
		return
	}

	res, err := h.svc.Commands.RunSimulation(c.Request.Context(), DTOToSimulationConfig(input))
	if err != nil {
		h.commandFailed(c, log, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Reset simulation
// @Tags Simulation
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ResetResponse
// @Router /simulation/reset [post]
func (h *Handler) resetSimulation(c *gin.Context) {
	log := h.logger.WithField("method", "resetSimulation")
	status, err := h.svc.Commands.ResetSimulation(c.Request.Context())
	if err != nil {
		h.commandFailed(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ResetResponse{Status: status})
}

// @Summary Enable radio playback
// @Description Plays the accumulated backlog in order.
// @Tags Audio
// @Produce json
// @Success 200 {object} AudioResponse
// @Router /audio/enable [post]
func (h *Handler) enableAudio(c *gin.Context) {
	h.svc.Audio.Enable()
	c.JSON(http.StatusOK, AudioResponse{Enabled: true, QueuedCues: h.svc.Audio.Pending()})
}

// @Summary Disable radio playback
// @Tags Audio
// @Produce json
// @Success 200 {object} AudioResponse
// @Router /audio/disable [post]
func (h *Handler) disableAudio(c *gin.Context) {
	h.svc.Audio.Disable()
	c.JSON(http.StatusOK, AudioResponse{Enabled: false, QueuedCues: h.svc.Audio.Pending()})
}

// @Summary Health check
// @Description Check the health of the service.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Service is healthy"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
