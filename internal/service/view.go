package service

import (
	"github.com/shenikar/dispatch_console/internal/labels"
	"github.com/shenikar/dispatch_console/internal/models"
	"github.com/shenikar/dispatch_console/internal/route"
)

// LabelPlaceholder показывается для ячейки, которой нет в сетке
const LabelPlaceholder = "?"

type HexView struct {
	models.HexCell
	Label string `json:"label"`
}

type IncidentView struct {
	models.Incident
	HexLabel string `json:"hex_label"`
}

type AlertView struct {
	models.PatrolAlert
	HexLabel string `json:"hex_label"`
}

// RouteView - маршрут, обрезанный по текущему положению машины
type RouteView struct {
	IncidentID models.ID      `json:"incident_id"`
	VehicleID  models.ID      `json:"vehicle_id"`
	Geometry   []models.Point `json:"geometry"`
}

type DispatchView struct {
	Dispatch      *models.DispatchRecord `json:"dispatch"`
	Geometry      []models.Point         `json:"geometry"`
	GreenCorridor []string               `json:"green_corridor_hexes"`
}

// View строит модель представления поверх хранилища
type View struct {
	state StateStore
}

func NewView(state StateStore) *View {
	return &View{state: state}
}

// labelsFor строит подписи по тому же набору ячеек, который отображается
func labelsFor(cells []models.HexCell) map[string]string {
	ids := make([]string, 0, len(cells))
	for _, c := range cells {
		ids = append(ids, c.HexID)
	}
	return labels.Assign(ids)
}

func (v *View) Hexes() []HexView {
	cells := v.state.Hexes()
	ls := labelsFor(cells)
	out := make([]HexView, 0, len(cells))
	for _, c := range cells {
		out = append(out, HexView{HexCell: c, Label: labels.Lookup(ls, c.HexID, LabelPlaceholder)})
	}
	return out
}

func (v *View) Incidents(liveOnly bool) []IncidentView {
	items := v.state.Incidents()
	if liveOnly {
		items = v.state.LiveIncidents()
	}
	ls := labelsFor(v.state.Hexes())
	out := make([]IncidentView, 0, len(items))
	for _, inc := range items {
		out = append(out, IncidentView{Incident: inc, HexLabel: labels.Lookup(ls, inc.HexID, LabelPlaceholder)})
	}
	return out
}

func (v *View) Alerts(limit int) []AlertView {
	items := v.state.Alerts(limit)
	ls := labelsFor(v.state.Hexes())
	out := make([]AlertView, 0, len(items))
	for _, a := range items {
		out = append(out, AlertView{PatrolAlert: a, HexLabel: labels.Lookup(ls, a.HexID, LabelPlaceholder)})
	}
	return out
}

// Routes возвращает активные маршруты, обрезанные по позиции машин
func (v *View) Routes() []RouteView {
	routes := v.state.ActiveRoutes()
	out := make([]RouteView, 0, len(routes))
	for _, r := range routes {
		out = append(out, RouteView{
			IncidentID: r.IncidentID,
			VehicleID:  r.VehicleID,
			Geometry:   route.Project(r.Geometry, v.position(r.VehicleID)),
		})
	}
	return out
}

// Dispatch возвращает заголовочное назначение с обрезанной геометрией
func (v *View) Dispatch() DispatchView {
	last := v.state.LastDispatch()
	view := DispatchView{
		Dispatch:      last,
		GreenCorridor: v.state.GreenCorridor(),
	}
	geometry := v.state.HeadlineRoute()
	if last == nil {
		view.Geometry = geometry
		return view
	}
	pos := v.position(last.VehicleID())
	if pos == nil && last.Vehicle != nil {
		p := last.Vehicle.Position()
		pos = &p
	}
	view.Geometry = route.Project(geometry, pos)
	return view
}

func (v *View) position(id models.ID) *models.Point {
	if id == "" {
		return nil
	}
	veh, ok := v.state.Vehicle(id)
	if !ok {
		return nil
	}
	p := veh.Position()
	return &p
}

func (v *View) Vehicles() []models.Vehicle {
	return v.state.Vehicles()
}

func (v *View) Signals() []models.TrafficSignal {
	return v.state.Signals()
}

// Simulation возвращает результат последнего запуска сценария или nil
func (v *View) Simulation() *models.SimulationResult {
	return v.state.LastSimulation()
}
