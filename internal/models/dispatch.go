package models

// Route - маршрут, рассчитанный коллаборатором
type Route struct {
	Geometry  []Point  `json:"geometry"`
	DistanceM *float64 `json:"distance_m,omitempty"`
	DurationS *float64 `json:"duration_s,omitempty"`
	Source    string   `json:"source,omitempty"`
}

// DispatchRecord - результат назначения машины на инцидент
type DispatchRecord struct {
	IncidentID         ID       `json:"incident_id"`
	Vehicle            *Vehicle `json:"vehicle"`
	Route              *Route   `json:"route,omitempty"`
	GreenCorridorHexes []string `json:"green_corridor_hexes,omitempty"`
	Message            string   `json:"message,omitempty"`
}

// HasGeometry сообщает, есть ли у назначения отрисовываемый маршрут
func (d DispatchRecord) HasGeometry() bool {
	return d.Route != nil && len(d.Route.Geometry) >= 2
}

// VehicleID возвращает идентификатор назначенной машины или пустую строку
func (d DispatchRecord) VehicleID() ID {
	if d.Vehicle == nil {
		return ""
	}
	return d.Vehicle.ID
}

// ActiveRoute - маршрут, который сейчас отображается для инцидента
type ActiveRoute struct {
	IncidentID ID      `json:"incident_id"`
	VehicleID  ID      `json:"vehicle_id"`
	Geometry   []Point `json:"geometry"`
}
