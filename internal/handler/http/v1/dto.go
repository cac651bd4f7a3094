package v1

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Type      string   `json:"type" validate:"required,oneof=crime fire medical accident civic"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// DeployVehiclesRequest DTO для развертывания машин
// @Description Машины ставятся в центр ячейки hex_id или в точку latitude/longitude
type DeployVehiclesRequest struct {
	Type      string   `json:"type" validate:"required,oneof=police ambulance fire municipal"`
	HexID     string   `json:"hex_id,omitempty" validate:"required_without=Latitude,omitempty,max=32"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"required_with=Longitude,omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"required_with=Latitude,omitempty,longitude"`
	Count     int      `json:"count,omitempty" validate:"omitempty,min=1,max=50"`
	Status    string   `json:"status,omitempty" validate:"omitempty,oneof=available busy patrolling"`
}

// SimulationRequest DTO для настройки и запуска сценария
// @Description DTO для настройки и запуска сценария
type SimulationRequest struct {
	HexID        string `json:"hex_id,omitempty" validate:"omitempty,max=32"`
	IncidentType string `json:"incident_type,omitempty" validate:"omitempty,oneof=crime fire medical accident civic"`
	Count        int    `json:"count,omitempty" validate:"omitempty,min=1,max=500"`
	TimeWindow   int    `json:"time_window,omitempty" validate:"omitempty,min=1"`
	Scenario     string `json:"scenario,omitempty" validate:"omitempty,oneof=surge congestion vehicle_unavailability"`
}

// StatusResponse DTO состояния консоли
// @Description Связь с push-каналом, выполняющиеся команды и очередь реплик
type StatusResponse struct {
	Connected    bool  `json:"connected"`
	Busy         bool  `json:"busy"`
	InFlight     int64 `json:"in_flight"`
	AudioEnabled bool  `json:"audio_enabled"`
	QueuedCues   int   `json:"queued_cues"`
}

// AudioResponse DTO состояния воспроизведения
type AudioResponse struct {
	Enabled    bool `json:"enabled"`
	QueuedCues int  `json:"queued_cues"`
}

// ResetResponse DTO ответа на сброс симуляции
type ResetResponse struct {
	Status string `json:"status"`
}
