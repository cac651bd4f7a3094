package models

// CreateIncidentResult - ответ коллаборатора на создание инцидента
type CreateIncidentResult struct {
	Incident Incident       `json:"incident"`
	Dispatch DispatchRecord `json:"dispatch"`
	Alerts   []PatrolAlert  `json:"alerts"`
}

// DeployRequest - запрос на развертывание машин
type DeployRequest struct {
	Type      VehicleType `json:"type"`
	HexID     string      `json:"hex_id,omitempty"`
	Latitude  *float64    `json:"latitude,omitempty"`
	Longitude *float64    `json:"longitude,omitempty"`
	Count     int         `json:"count,omitempty"`
	Status    string      `json:"status,omitempty"`
}

// DeployResult - ответ на развертывание машин
type DeployResult struct {
	Deployed int       `json:"deployed"`
	Vehicles []Vehicle `json:"vehicles"`
}
