// Package events описывает закрытый набор событий push-канала. Каждое
// событие декодируется и проверяется на границе канала, дальше по системе
// ходят только типизированные значения.
package events

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shenikar/dispatch_console/internal/models"
)

type Type string

const (
	TypeConnect          Type = "connect"
	TypeDisconnect       Type = "disconnect"
	TypeNewIncident      Type = "new_incident"
	TypeVehicleDispatch  Type = "vehicle_dispatched"
	TypeRouteUpdate      Type = "route_update"
	TypePatrolAlert      Type = "patrol_alert"
	TypeSimulationUpdate Type = "simulation_update"
	TypeVehiclePosition  Type = "vehicle_position"
	TypeVehicleRemoved   Type = "vehicle_removed"
	TypeIncidentAttended Type = "incident_attended"
	TypeRadioComm        Type = "radio_comm"
)

var (
	ErrUnknownEvent   = errors.New("unknown event type")
	ErrInvalidPayload = errors.New("invalid event payload")
)

// Event - один вариант закрытого набора событий
type Event interface {
	Type() Type
}

type Connected struct{}

type Disconnected struct {
	Reason string
}

type NewIncident struct {
	Incident models.Incident
}

type VehicleDispatched struct {
	Dispatch models.DispatchRecord
}

type RouteUpdate struct {
	IncidentID         models.ID     `json:"incident_id"`
	VehicleID          models.ID     `json:"vehicle_id"`
	Route              *models.Route `json:"route"`
	GreenCorridorHexes []string      `json:"green_corridor_hexes"`
}

type PatrolAlert struct {
	Alert models.PatrolAlert
}

type SimulationUpdate struct {
	Result models.SimulationResult
}

type VehiclePosition struct {
	Vehicle models.Vehicle `json:"vehicle"`
}

type VehicleRemoved struct {
	VehicleID models.ID `json:"vehicle_id"`
}

type IncidentAttended struct {
	IncidentID models.ID `json:"incident_id"`
}

// RadioComm - реплика радиообмена, озвучиваемая секвенсором
type RadioComm struct {
	Role          string `json:"role"`
	Text          string `json:"text"`
	AudioFilename string `json:"audio_filename,omitempty"`
}

func (Connected) Type() Type         { return TypeConnect }
func (Disconnected) Type() Type      { return TypeDisconnect }
func (NewIncident) Type() Type       { return TypeNewIncident }
func (VehicleDispatched) Type() Type { return TypeVehicleDispatch }
func (RouteUpdate) Type() Type       { return TypeRouteUpdate }
func (PatrolAlert) Type() Type       { return TypePatrolAlert }
func (SimulationUpdate) Type() Type  { return TypeSimulationUpdate }
func (VehiclePosition) Type() Type   { return TypeVehiclePosition }
func (VehicleRemoved) Type() Type    { return TypeVehicleRemoved }
func (IncidentAttended) Type() Type  { return TypeIncidentAttended }
func (RadioComm) Type() Type         { return TypeRadioComm }

// Envelope - кадр push-канала
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Decode превращает имя события и его сырой payload в типизированное событие
func Decode(name string, data json.RawMessage) (Event, error) {
	switch Type(name) {
	case TypeConnect:
		return Connected{}, nil
	case TypeDisconnect:
		return Disconnected{}, nil
	case TypeNewIncident:
		var inc models.Incident
		if err := unmarshal(name, data, &inc); err != nil {
			return nil, err
		}
		if inc.ID == "" {
			return nil, invalid(name, "missing id")
		}
		return NewIncident{Incident: inc}, nil
	case TypeVehicleDispatch:
		var d models.DispatchRecord
		if err := unmarshal(name, data, &d); err != nil {
			return nil, err
		}
		if d.IncidentID == "" {
			return nil, invalid(name, "missing incident_id")
		}
		if d.Vehicle != nil && d.Vehicle.ID == "" {
			return nil, invalid(name, "vehicle without id")
		}
		return VehicleDispatched{Dispatch: d}, nil
	case TypeRouteUpdate:
		var ru RouteUpdate
		if err := unmarshal(name, data, &ru); err != nil {
			return nil, err
		}
		if ru.Route == nil {
			return nil, invalid(name, "missing route")
		}
		return ru, nil
	case TypePatrolAlert:
		var a models.PatrolAlert
		if err := unmarshal(name, data, &a); err != nil {
			return nil, err
		}
		if a.ID == "" {
			return nil, invalid(name, "missing id")
		}
		return PatrolAlert{Alert: a}, nil
	case TypeSimulationUpdate:
		var r models.SimulationResult
		if err := unmarshal(name, data, &r); err != nil {
			return nil, err
		}
		for _, inc := range r.Incidents {
			if inc.ID == "" {
				return nil, invalid(name, "simulated incident without id")
			}
		}
		return SimulationUpdate{Result: r}, nil
	case TypeVehiclePosition:
		var vp VehiclePosition
		if err := unmarshal(name, data, &vp); err != nil {
			return nil, err
		}
		if vp.Vehicle.ID == "" {
			return nil, invalid(name, "missing vehicle.id")
		}
		return vp, nil
	case TypeVehicleRemoved:
		var vr VehicleRemoved
		if err := unmarshal(name, data, &vr); err != nil {
			return nil, err
		}
		if vr.VehicleID == "" {
			return nil, invalid(name, "missing vehicle_id")
		}
		return vr, nil
	case TypeIncidentAttended:
		var ia IncidentAttended
		if err := unmarshal(name, data, &ia); err != nil {
			return nil, err
		}
		if ia.IncidentID == "" {
			return nil, invalid(name, "missing incident_id")
		}
		return ia, nil
	case TypeRadioComm:
		var rc RadioComm
		if err := unmarshal(name, data, &rc); err != nil {
			return nil, err
		}
		return rc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
}

func unmarshal(name string, data json.RawMessage, v any) error {
	if len(data) == 0 {
		return invalid(name, "empty payload")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPayload, name, err)
	}
	return nil
}

func invalid(name, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidPayload, name, reason)
}
