package models

type VehicleType string

const (
	VehiclePolice    VehicleType = "police"
	VehicleAmbulance VehicleType = "ambulance"
	VehicleFire      VehicleType = "fire"
	VehicleMunicipal VehicleType = "municipal"
)

const (
	VehicleAvailable  = "available"
	VehicleBusy       = "busy"
	VehiclePatrolling = "patrolling"
)

type Vehicle struct {
	ID           ID          `json:"id"`
	Type         VehicleType `json:"type"`
	Latitude     float64     `json:"latitude"`
	Longitude    float64     `json:"longitude"`
	Status       string      `json:"status"`
	CurrentHexID string      `json:"current_hex_id,omitempty"`
}

// Position возвращает текущее положение машины
func (v Vehicle) Position() Point {
	return Point{v.Latitude, v.Longitude}
}
