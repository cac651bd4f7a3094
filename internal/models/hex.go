package models

// HexCell - ячейка гексагональной сетки
type HexCell struct {
	HexID               string         `json:"hex_id"`
	Polygon             []Point        `json:"polygon"`
	Center              Point          `json:"center"`
	IncidentCount       int            `json:"incident_count"`
	PatrolPriorityScore float64        `json:"patrol_priority_score"`
	IncidentTypes       map[string]int `json:"incident_types,omitempty"`
}
