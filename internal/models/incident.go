package models

// IncidentType - тип инцидента. Помимо базовых значений бэкенд использует
// расширенный словарь (road_accident, garbage, theft и т.д.), поэтому тип не
// ограничивается константами ниже.
type IncidentType string

const (
	IncidentCrime    IncidentType = "crime"
	IncidentFire     IncidentType = "fire"
	IncidentMedical  IncidentType = "medical"
	IncidentAccident IncidentType = "accident"
	IncidentCivic    IncidentType = "civic"
)

// Известные статусы инцидента
const (
	StatusNew        = "new"
	StatusAssigned   = "assigned"
	StatusDispatched = "dispatched"
	StatusAttended   = "attended"
)

type Incident struct {
	ID                ID           `json:"id"`
	Type              IncidentType `json:"type"`
	Latitude          float64      `json:"latitude"`
	Longitude         float64      `json:"longitude"`
	HexID             string       `json:"hex_id"`
	AssignedVehicleID ID           `json:"assigned_vehicle_id,omitempty"`
	Status            string       `json:"status"`
	Attended          bool         `json:"attended"`
	CreatedAt         string       `json:"created_at"`

	ReportID string `json:"report_id,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
	VoiceURL string `json:"voice_url,omitempty"`
	Source   string `json:"source,omitempty"`
}

// Location возвращает точку инцидента
func (i Incident) Location() Point {
	return Point{i.Latitude, i.Longitude}
}
