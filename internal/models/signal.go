package models

type SignalPhase string

const (
	PhaseGreen  SignalPhase = "GREEN"
	PhaseYellow SignalPhase = "YELLOW"
	PhaseRed    SignalPhase = "RED"
)

type TrafficSignal struct {
	ID        ID          `json:"id"`
	Name      string      `json:"name"`
	Latitude  float64     `json:"latitude"`
	Longitude float64     `json:"longitude"`
	Phase     SignalPhase `json:"phase"`
}
