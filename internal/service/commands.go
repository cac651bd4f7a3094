package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/dispatch_console/internal/collaborator"
	"github.com/shenikar/dispatch_console/internal/models"
)

// ErrorKind - класс ошибки команды
type ErrorKind string

const (
	KindTransport ErrorKind = "transport"
	KindRejected  ErrorKind = "rejected"
	KindDecode    ErrorKind = "decode"
)

// CommandError - команда не выполнена. Повтор остается за вызывающим.
type CommandError struct {
	Op         string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("service: %s failed (%s): %v", e.Op, e.Kind, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

func commandError(op string, err error) *CommandError {
	ce := &CommandError{Op: op, Kind: KindTransport, Err: err}
	var apiErr *collaborator.APIError
	switch {
	case errors.As(err, &apiErr):
		ce.Kind = KindRejected
		ce.StatusCode = apiErr.StatusCode
	case errors.Is(err, collaborator.ErrDecode):
		ce.Kind = KindDecode
	}
	return ce
}

// Commands выполняет команды оператора как пару запрос/ответ и сводит
// ответ в хранилище сразу же.
type Commands struct {
	api      Collaborator
	state    StateStore
	loader   *Loader
	narrator Narrator
	logger   *logrus.Logger

	inFlight atomic.Int64
}

func NewCommands(api Collaborator, state StateStore, loader *Loader, narrator Narrator, logger *logrus.Logger) *Commands {
	return &Commands{
		api:      api,
		state:    state,
		loader:   loader,
		narrator: narrator,
		logger:   logger,
	}
}

// InFlight возвращает число выполняющихся команд
func (c *Commands) InFlight() int64 {
	return c.inFlight.Load()
}

func (c *Commands) Busy() bool {
	return c.InFlight() > 0
}

func (c *Commands) begin(method string) (*logrus.Entry, func()) {
	c.inFlight.Add(1)
	log := c.logger.WithFields(logrus.Fields{
		"service": "commands",
		"method":  method,
	})
	return log, func() { c.inFlight.Add(-1) }
}

func (c *Commands) refreshHexes(ctx context.Context, log *logrus.Entry) {
	if c.loader == nil {
		return
	}
	if err := c.loader.RefreshHexes(ctx); err != nil {
		log.WithError(err).Warn("Failed to refresh hex grid after command")
	}
}

// CreateIncident создает инцидент, сводит ответ, запускает локальную
// радио-последовательность и перечитывает сетку.
func (c *Commands) CreateIncident(ctx context.Context, req collaborator.CreateIncidentRequest) (*models.CreateIncidentResult, error) {
	log, done := c.begin("CreateIncident")
	defer done()
	log = log.WithField("type", req.Type)
	log.Info("Creating incident")

	res, err := c.api.CreateIncident(ctx, req)
	if err != nil {
		log.WithError(err).Error("Failed to create incident")
		return nil, commandError("create incident", err)
	}

	c.state.ApplyCreateResponse(*res)
	if c.narrator != nil {
		c.narrator.TriggerLocal()
	}
	c.refreshHexes(ctx, log)

	log.WithField("incident_id", res.Incident.ID).Info("Incident created successfully")
	return res, nil
}

func (c *Commands) DeployVehicles(ctx context.Context, req models.DeployRequest) (*models.DeployResult, error) {
	log, done := c.begin("DeployVehicles")
	defer done()
	log = log.WithFields(logrus.Fields{"type": req.Type, "count": req.Count})
	log.Info("Deploying vehicles")

	res, err := c.api.DeployVehicles(ctx, req)
	if err != nil {
		log.WithError(err).Error("Failed to deploy vehicles")
		return nil, commandError("deploy vehicles", err)
	}

	c.state.ApplyDeployed(res.Vehicles)
	log.WithField("deployed", res.Deployed).Info("Vehicles deployed successfully")
	return res, nil
}

func (c *Commands) DeleteVehicle(ctx context.Context, id models.ID) error {
	log, done := c.begin("DeleteVehicle")
	defer done()
	log = log.WithField("vehicle_id", id)

	if err := c.api.DeleteVehicle(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete vehicle")
		return commandError("delete vehicle", err)
	}

	c.state.ApplyVehicleDeleted(id)
	log.Info("Vehicle deleted successfully")
	return nil
}

func (c *Commands) MarkAttended(ctx context.Context, id models.ID) error {
	log, done := c.begin("MarkAttended")
	defer done()
	log = log.WithField("incident_id", id)

	if err := c.api.MarkIncidentAttended(ctx, id); err != nil {
		log.WithError(err).Error("Failed to mark incident attended")
		return commandError("mark attended", err)
	}

	c.state.ApplyAttended(id)
	log.Info("Incident marked attended")
	return nil
}

func (c *Commands) SaveSimulationConfig(ctx context.Context, cfg models.SimulationConfig) (*models.SimulationConfig, error) {
	log, done := c.begin("SaveSimulationConfig")
	defer done()

	saved, err := c.api.SaveSimulationConfig(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("Failed to save simulation config")
		return nil, commandError("save simulation config", err)
	}
	return saved, nil
}

// RunSimulation запускает сценарий и сводит сгенерированные инциденты
func (c *Commands) RunSimulation(ctx context.Context, cfg models.SimulationConfig) (*models.SimulationResult, error) {
	log, done := c.begin("RunSimulation")
	defer done()
	log = log.WithField("scenario", cfg.Scenario)
	log.Info("Running simulation")

	res, err := c.api.RunSimulation(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("Failed to run simulation")
		return nil, commandError("run simulation", err)
	}

	c.state.ApplySimulation(*res)
	c.refreshHexes(ctx, log)

	log.WithField("incidents", len(res.Incidents)).Info("Simulation completed")
	return res, nil
}

// ResetSimulation сбрасывает симуляцию и очищает связанное с ней состояние
func (c *Commands) ResetSimulation(ctx context.Context) (string, error) {
	log, done := c.begin("ResetSimulation")
	defer done()

	status, err := c.api.ResetSimulation(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to reset simulation")
		return "", commandError("reset simulation", err)
	}

	c.state.Reset()
	c.refreshHexes(ctx, log)

	log.WithField("status", status).Info("Simulation reset")
	return status, nil
}
