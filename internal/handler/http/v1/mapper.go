package v1

import (
	"github.com/shenikar/dispatch_console/internal/collaborator"
	"github.com/shenikar/dispatch_console/internal/models"
)

// DTOToCreateIncident преобразует DTO в запрос к сервису диспетчеризации.
// Вызывается после валидации, координаты заданы.
func DTOToCreateIncident(dto CreateIncidentRequest) collaborator.CreateIncidentRequest {
	return collaborator.CreateIncidentRequest{
		Type:      models.IncidentType(dto.Type),
		Latitude:  *dto.Latitude,
		Longitude: *dto.Longitude,
	}
}

func DTOToDeployRequest(dto DeployVehiclesRequest) models.DeployRequest {
	count := dto.Count
	if count == 0 {
		count = 1
	}
	return models.DeployRequest{
		Type:      models.VehicleType(dto.Type),
		HexID:     dto.HexID,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
		Count:     count,
		Status:    dto.Status,
	}
}

func DTOToSimulationConfig(dto SimulationRequest) models.SimulationConfig {
	return models.SimulationConfig{
		HexID:        dto.HexID,
		IncidentType: models.IncidentType(dto.IncidentType),
		Count:        dto.Count,
		TimeWindow:   dto.TimeWindow,
		Scenario:     dto.Scenario,
	}
}
