// Package service связывает клиента сервиса диспетчеризации, хранилище
// состояния и секвенсор: начальная загрузка, опрос светофоров, команды
// оператора и модель представления.
package service

import (
	"context"

	"github.com/shenikar/dispatch_console/internal/collaborator"
	"github.com/shenikar/dispatch_console/internal/models"
	"github.com/shenikar/dispatch_console/internal/store"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks . Collaborator,Narrator,SummaryCache

// Collaborator определяет контракт сервиса диспетчеризации
type Collaborator interface {
	FetchHexGrid(ctx context.Context) ([]models.HexCell, error)
	FetchHexSummary(ctx context.Context) ([]models.HexCell, error)
	FetchIncidents(ctx context.Context) ([]models.Incident, error)
	FetchVehicles(ctx context.Context) ([]models.Vehicle, error)
	FetchPatrolAlerts(ctx context.Context) ([]models.PatrolAlert, error)
	FetchTrafficSignals(ctx context.Context) ([]models.TrafficSignal, error)
	FetchActiveDispatches(ctx context.Context) ([]models.DispatchRecord, error)

	CreateIncident(ctx context.Context, req collaborator.CreateIncidentRequest) (*models.CreateIncidentResult, error)
	DeployVehicles(ctx context.Context, req models.DeployRequest) (*models.DeployResult, error)
	DeleteVehicle(ctx context.Context, id models.ID) error
	MarkIncidentAttended(ctx context.Context, id models.ID) error
	SaveSimulationConfig(ctx context.Context, cfg models.SimulationConfig) (*models.SimulationConfig, error)
	RunSimulation(ctx context.Context, cfg models.SimulationConfig) (*models.SimulationResult, error)
	ResetSimulation(ctx context.Context) (string, error)
}

// StateStore определяет контракт хранилища, в которое сводятся ответы
type StateStore interface {
	ApplySnapshot(snap store.Snapshot)
	ApplyCreateResponse(res models.CreateIncidentResult)
	ApplyDeployed(vehicles []models.Vehicle)
	ApplyVehicleDeleted(id models.ID) bool
	ApplyAttended(id models.ID) bool
	ApplySimulation(result models.SimulationResult)
	Reset()

	Hexes() []models.HexCell
	Incidents() []models.Incident
	LiveIncidents() []models.Incident
	Vehicles() []models.Vehicle
	Vehicle(id models.ID) (models.Vehicle, bool)
	Alerts(limit int) []models.PatrolAlert
	Signals() []models.TrafficSignal
	ActiveRoutes() []models.ActiveRoute
	LastDispatch() *models.DispatchRecord
	HeadlineRoute() []models.Point
	GreenCorridor() []string
	LastSimulation() *models.SimulationResult
}

// Narrator запускает локальную радио-последовательность
type Narrator interface {
	TriggerLocal() bool
}

// SummaryCache определяет контракт кэша сводки по ячейкам. GetSummary
// возвращает nil, nil при промахе.
type SummaryCache interface {
	GetSummary(ctx context.Context) ([]models.HexCell, error)
	SetSummary(ctx context.Context, cells []models.HexCell) error
	InvalidateSummary(ctx context.Context) error
}
