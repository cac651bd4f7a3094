package models

// SimulationConfig - параметры сценария симуляции
type SimulationConfig struct {
	HexID        string       `json:"hex_id,omitempty"`
	IncidentType IncidentType `json:"incident_type,omitempty"`
	Count        int          `json:"count,omitempty"`
	TimeWindow   int          `json:"time_window,omitempty"`
	Scenario     string       `json:"scenario,omitempty"`
}

// SimulatedIncident - инцидент, порожденный симуляцией, вместе с назначением
type SimulatedIncident struct {
	ID        ID             `json:"id"`
	Type      IncidentType   `json:"type"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	HexID     string         `json:"hex_id"`
	Dispatch  DispatchRecord `json:"dispatch"`
}

type SimulationResult struct {
	Scenario  string              `json:"scenario"`
	Count     int                 `json:"count,omitempty"`
	Message   string              `json:"message,omitempty"`
	Incidents []SimulatedIncident `json:"incidents,omitempty"`
}

// AsIncident переводит сгенерированный инцидент в обычный: статус
// "assigned", если симуляция уже назначила машину, иначе "new".
func (s SimulatedIncident) AsIncident(createdAt string) Incident {
	inc := Incident{
		ID:        s.ID,
		Type:      s.Type,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		HexID:     s.HexID,
		Status:    StatusNew,
		CreatedAt: createdAt,
	}
	if s.Dispatch.Vehicle != nil {
		inc.Status = StatusAssigned
		inc.AssignedVehicleID = s.Dispatch.Vehicle.ID
	}
	return inc
}
