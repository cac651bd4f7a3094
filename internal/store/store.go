// Package store держит каноническую in-memory модель консоли и сводит в нее
// снапшоты и push-события.
//
// Правила слияния:
//   - машины и ячейки: upsert по идентификатору, запись заменяется целиком;
//   - инциденты при создании: вставка, только если идентификатора еще нет;
//   - назначение и отметка "обслужен": patch по идентификатору, событие для
//     неизвестного инцидента отбрасывается до следующего снапшота;
//   - маршруты: один на инцидент, новый заменяет прежний, отметка "обслужен"
//     удаляет маршрут;
//   - incident_count ячейки: +1 на каждый реально вставленный инцидент,
//     снапшот ячеек заменяет счетчики целиком.
//
// Все методы безопасны для повторного применения одного и того же события.
package store

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/dispatch_console/internal/events"
	"github.com/shenikar/dispatch_console/internal/models"
)

type Store struct {
	mu     sync.RWMutex
	logger *logrus.Logger
	now    func() time.Time

	hexes        map[string]models.HexCell
	incidents    []models.Incident
	vehicles     map[models.ID]models.Vehicle
	alerts       []models.PatrolAlert
	signals      []models.TrafficSignal
	routes       []models.ActiveRoute
	lastDispatch *models.DispatchRecord
	headline     []models.Point
	corridor     []string
	lastSim      *models.SimulationResult
}

// New создает пустое хранилище
func New(logger *logrus.Logger) *Store {
	return &Store{
		logger:   logger,
		now:      time.Now,
		hexes:    map[string]models.HexCell{},
		vehicles: map[models.ID]models.Vehicle{},
	}
}

// ApplySnapshot заменяет коллекцию. Снапшот активных назначений
// заменяет набор маршрутов, первое назначение становится головным. Пустой
// снапшот означает, что активных маршрутов нет.
func (s *Store) ApplySnapshot(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch v := snap.(type) {
	case HexSnapshot:
		s.hexes = ReplaceHexes(v)
	case IncidentSnapshot:
		s.incidents = ReplaceIncidents(v)
		s.pruneAttendedRoutes()
	case VehicleSnapshot:
		s.vehicles = ReplaceVehicles(v)
	case AlertSnapshot:
		s.alerts, _ = PrependAlerts(nil, v...)
	case SignalSnapshot:
		s.signals = append([]models.TrafficSignal(nil), v...)
	case DispatchSnapshot:
		s.replayDispatches(v)
	default:
		s.logger.WithField("component", "store").Warnf("Ignoring snapshot of unknown type %T", snap)
		return
	}
	s.logger.WithFields(logrus.Fields{
		"component":  "store",
		"collection": snap.Collection(),
	}).Debug("Snapshot applied")
}

// pruneAttendedRoutes убирает маршруты инцидентов, уже отмеченных обслуженными
func (s *Store) pruneAttendedRoutes() {
	routes := make([]models.ActiveRoute, 0, len(s.routes))
	for _, r := range s.routes {
		if !s.isAttended(r.IncidentID) {
			routes = append(routes, r)
		}
	}
	s.routes = routes
}

func (s *Store) replayDispatches(dispatches []models.DispatchRecord) {
	routes := make([]models.ActiveRoute, 0, len(dispatches))
	for _, d := range dispatches {
		if d.Vehicle == nil || !d.HasGeometry() {
			continue
		}
		s.vehicles = UpsertVehicle(s.vehicles, *d.Vehicle)
		s.incidents, _ = PatchIncident(s.incidents, d.IncidentID, assignVehicle(d.Vehicle.ID))
		if s.isAttended(d.IncidentID) {
			continue
		}
		routes = SetRoute(routes, models.ActiveRoute{
			IncidentID: d.IncidentID,
			VehicleID:  d.Vehicle.ID,
			Geometry:   d.Route.Geometry,
		})
	}
	s.routes = routes
	if len(dispatches) == 0 {
		return
	}

	head := dispatches[0]
	s.lastDispatch = &head
	if head.Route != nil && len(head.Route.Geometry) > 0 {
		s.headline = head.Route.Geometry
		s.corridor = head.GreenCorridorHexes
	}
}

// ApplyRawEvent декодирует событие push-канала и применяет его. Событие
// неизвестного или некорректного вида пропускается с записью в лог.
func (s *Store) ApplyRawEvent(name string, data json.RawMessage) bool {
	ev, err := events.Decode(name, data)
	if err != nil {
		s.logger.WithField("component", "store").WithError(err).Warn("Dropping malformed event")
		return false
	}
	return s.ApplyEvent(ev)
}

// ApplyEvent применяет типизированное событие. Возвращает false, если
// состояние не изменилось (повтор, неизвестная цель, служебное событие).
func (s *Store) ApplyEvent(ev events.Event) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"component": "store",
		"event":     ev.Type(),
	})

	var changed bool
	switch e := ev.(type) {
	case events.NewIncident:
		inc := e.Incident
		inc.Attended = false
		changed = s.observeNewIncident(inc)
	case events.VehicleDispatched:
		s.applyDispatch(e.Dispatch, true)
		changed = true
	case events.RouteUpdate:
		changed = s.applyRouteUpdate(e)
	case events.PatrolAlert:
		var n int
		s.alerts, n = PrependAlerts(s.alerts, e.Alert)
		changed = n > 0
	case events.SimulationUpdate:
		s.applySimulation(e.Result)
		changed = true
	case events.VehiclePosition:
		s.vehicles = UpsertVehicle(s.vehicles, e.Vehicle)
		changed = true
	case events.VehicleRemoved:
		s.vehicles, changed = RemoveVehicle(s.vehicles, e.VehicleID)
	case events.IncidentAttended:
		changed = s.applyAttended(e.IncidentID)
	default:
		return false
	}

	if !changed {
		log.Debug("Event produced no change")
	}
	return changed
}

func (s *Store) observeNewIncident(inc models.Incident) bool {
	var inserted bool
	s.incidents, inserted = InsertIncident(s.incidents, inc)
	if !inserted {
		return false
	}
	s.hexes, _ = IncrementHex(s.hexes, inc.HexID, inc.Type)
	return true
}

func (s *Store) isAttended(id models.ID) bool {
	i := indexOfIncident(s.incidents, id)
	return i >= 0 && s.incidents[i].Attended
}

// applyDispatch сводит назначение: машина upsert'ится из payload, инцидент
// получает назначение, маршрут заменяет прежний для этого инцидента.
func (s *Store) applyDispatch(d models.DispatchRecord, headline bool) {
	if headline {
		rec := d
		s.lastDispatch = &rec
	}
	if d.Vehicle != nil {
		s.vehicles = UpsertVehicle(s.vehicles, *d.Vehicle)
		s.incidents, _ = PatchIncident(s.incidents, d.IncidentID, assignVehicle(d.Vehicle.ID))
	}
	if d.HasGeometry() {
		if headline {
			s.headline = d.Route.Geometry
		}
		if !s.isAttended(d.IncidentID) {
			s.routes = SetRoute(s.routes, models.ActiveRoute{
				IncidentID: d.IncidentID,
				VehicleID:  d.VehicleID(),
				Geometry:   d.Route.Geometry,
			})
		}
	}
	if headline {
		s.corridor = d.GreenCorridorHexes
	}
}

func (s *Store) applyRouteUpdate(e events.RouteUpdate) bool {
	s.headline = e.Route.Geometry
	s.corridor = e.GreenCorridorHexes
	if e.IncidentID == "" || len(e.Route.Geometry) < 2 || s.isAttended(e.IncidentID) {
		return true
	}
	vehicleID := e.VehicleID
	if vehicleID == "" {
		if existing, ok := findRoute(s.routes, e.IncidentID); ok {
			vehicleID = existing.VehicleID
		}
	}
	s.routes = SetRoute(s.routes, models.ActiveRoute{
		IncidentID: e.IncidentID,
		VehicleID:  vehicleID,
		Geometry:   e.Route.Geometry,
	})
	return true
}

func (s *Store) applySimulation(result models.SimulationResult) {
	res := result
	s.lastSim = &res
	createdAt := s.now().UTC().Format(time.RFC3339)

	// Вставка идет с конца, чтобы первый сгенерированный инцидент оказался
	// в начале списка.
	for i := len(result.Incidents) - 1; i >= 0; i-- {
		item := result.Incidents[i]
		s.observeNewIncident(item.AsIncident(createdAt))
		d := item.Dispatch
		if d.IncidentID == "" {
			d.IncidentID = item.ID
		}
		s.applyDispatch(d, false)
	}
}

func (s *Store) applyAttended(id models.ID) bool {
	var patched, pruned bool
	s.incidents, patched = PatchIncident(s.incidents, id, markAttended)
	s.routes, pruned = PruneRoute(s.routes, id)
	return patched || pruned
}

// ApplyCreateResponse сводит ответ на команду создания инцидента так же,
// как эхо-событие: повторное событие new_incident ничего не задублирует.
func (s *Store) ApplyCreateResponse(res models.CreateIncidentResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observeNewIncident(res.Incident)
	s.alerts, _ = PrependAlerts(s.alerts, res.Alerts...)
	s.applyDispatch(res.Dispatch, true)
}

// ApplyDeployed добавляет развернутые машины
func (s *Store) ApplyDeployed(vehicles []models.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vehicles {
		if v.ID == "" {
			continue
		}
		s.vehicles = UpsertVehicle(s.vehicles, v)
	}
}

// ApplyVehicleDeleted убирает машину после подтверждения удаления
func (s *Store) ApplyVehicleDeleted(id models.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed bool
	s.vehicles, removed = RemoveVehicle(s.vehicles, id)
	return removed
}

// ApplyAttended отмечает инцидент обслуженным после подтверждения команды
func (s *Store) ApplyAttended(id models.ID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyAttended(id)
}

// ApplySimulation сводит результат запуска сценария
func (s *Store) ApplySimulation(result models.SimulationResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applySimulation(result)
}

// Reset очищает состояние, относящееся к симуляции. Ячейки, оповещения и
// светофоры остаются: их перечитывает следующий снапшот.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incidents = nil
	s.vehicles = map[models.ID]models.Vehicle{}
	s.routes = nil
	s.headline = nil
	s.corridor = nil
	s.lastSim = nil
	s.lastDispatch = nil
}

// Hexes возвращает ячейки, отсортированные по идентификатору
func (s *Store) Hexes() []models.HexCell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.HexCell, 0, len(s.hexes))
	for _, c := range s.hexes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].HexID < out[j].HexID })
	return out
}

func (s *Store) Hex(id string) (models.HexCell, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.hexes[id]
	return c, ok
}

// Incidents возвращает инциденты, новые первыми
func (s *Store) Incidents() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Incident(nil), s.incidents...)
}

// LiveIncidents возвращает необслуженные инциденты
func (s *Store) LiveIncidents() []models.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Incident, 0, len(s.incidents))
	for _, inc := range s.incidents {
		if !inc.Attended {
			out = append(out, inc)
		}
	}
	return out
}

func (s *Store) Incident(id models.ID) (models.Incident, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOfIncident(s.incidents, id); i >= 0 {
		return s.incidents[i], true
	}
	return models.Incident{}, false
}

// Vehicles возвращает машины, отсортированные по идентификатору
func (s *Store) Vehicles() []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Vehicle(id models.ID) (models.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vehicles[id]
	return v, ok
}

// Alerts возвращает до limit последних оповещений; limit <= 0 - все
func (s *Store) Alerts(limit int) []models.PatrolAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.alerts)
	if limit > 0 && limit < n {
		n = limit
	}
	return append([]models.PatrolAlert(nil), s.alerts[:n]...)
}

func (s *Store) Signals() []models.TrafficSignal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TrafficSignal(nil), s.signals...)
}

// ActiveRoutes возвращает маршруты в порядке их появления
func (s *Store) ActiveRoutes() []models.ActiveRoute {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.ActiveRoute(nil), s.routes...)
}

func (s *Store) LastDispatch() *models.DispatchRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastDispatch == nil {
		return nil
	}
	d := *s.lastDispatch
	return &d
}

// HeadlineRoute возвращает геометрию последнего назначения
func (s *Store) HeadlineRoute() []models.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Point(nil), s.headline...)
}

func (s *Store) GreenCorridor() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.corridor...)
}

func (s *Store) LastSimulation() *models.SimulationResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastSim == nil {
		return nil
	}
	r := *s.lastSim
	return &r
}
