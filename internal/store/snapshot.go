package store

import "github.com/shenikar/dispatch_console/internal/models"

// Collection - имя коллекции, которую заменяет снапшот
type Collection string

const (
	CollectionHexes      Collection = "hexes"
	CollectionIncidents  Collection = "incidents"
	CollectionVehicles   Collection = "vehicles"
	CollectionAlerts     Collection = "alerts"
	CollectionSignals    Collection = "signals"
	CollectionDispatches Collection = "dispatches"
)

// Snapshot - полное состояние одной коллекции
type Snapshot interface {
	Collection() Collection
}

type (
	HexSnapshot      []models.HexCell
	IncidentSnapshot []models.Incident
	VehicleSnapshot  []models.Vehicle
	AlertSnapshot    []models.PatrolAlert
	SignalSnapshot   []models.TrafficSignal
	DispatchSnapshot []models.DispatchRecord
)

func (HexSnapshot) Collection() Collection      { return CollectionHexes }
func (IncidentSnapshot) Collection() Collection { return CollectionIncidents }
func (VehicleSnapshot) Collection() Collection  { return CollectionVehicles }
func (AlertSnapshot) Collection() Collection    { return CollectionAlerts }
func (SignalSnapshot) Collection() Collection   { return CollectionSignals }
func (DispatchSnapshot) Collection() Collection { return CollectionDispatches }
