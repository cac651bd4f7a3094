package store

import "github.com/shenikar/dispatch_console/internal/models"

// Функции слияния чистые: принимают текущее значение коллекции и
// обновление, возвращают следующее значение. Входные срезы и карты не
// изменяются, поэтому ранее выданные значения остаются валидными.

func indexOfIncident(list []models.Incident, id models.ID) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// InsertIncident добавляет инцидент в начало списка, только если его еще нет.
// Второе значение сообщает, была ли вставка.
func InsertIncident(list []models.Incident, inc models.Incident) ([]models.Incident, bool) {
	if inc.ID == "" || indexOfIncident(list, inc.ID) >= 0 {
		return list, false
	}
	next := make([]models.Incident, 0, len(list)+1)
	next = append(next, inc)
	next = append(next, list...)
	return next, true
}

// PatchIncident применяет patch к инциденту с данным идентификатором.
// Если инцидента нет, список возвращается без изменений и false.
func PatchIncident(list []models.Incident, id models.ID, patch func(models.Incident) models.Incident) ([]models.Incident, bool) {
	i := indexOfIncident(list, id)
	if i < 0 {
		return list, false
	}
	next := make([]models.Incident, len(list))
	copy(next, list)
	next[i] = patch(next[i])
	return next, true
}

// ReplaceIncidents строит коллекцию из снапшота; повторные идентификаторы
// отбрасываются, первый выигрывает.
func ReplaceIncidents(items []models.Incident) []models.Incident {
	next := make([]models.Incident, 0, len(items))
	seen := make(map[models.ID]struct{}, len(items))
	for _, inc := range items {
		if inc.ID == "" {
			continue
		}
		if _, ok := seen[inc.ID]; ok {
			continue
		}
		seen[inc.ID] = struct{}{}
		next = append(next, inc)
	}
	return next
}

func markAttended(inc models.Incident) models.Incident {
	inc.Attended = true
	inc.Status = models.StatusAttended
	return inc
}

func assignVehicle(vehicleID models.ID) func(models.Incident) models.Incident {
	return func(inc models.Incident) models.Incident {
		inc.AssignedVehicleID = vehicleID
		return inc
	}
}

// UpsertHex заменяет ячейку целиком
func UpsertHex(hexes map[string]models.HexCell, cell models.HexCell) map[string]models.HexCell {
	next := make(map[string]models.HexCell, len(hexes)+1)
	for k, v := range hexes {
		next[k] = v
	}
	next[cell.HexID] = cell
	return next
}

// ReplaceHexes строит коллекцию ячеек из снапшота
func ReplaceHexes(cells []models.HexCell) map[string]models.HexCell {
	next := make(map[string]models.HexCell, len(cells))
	for _, c := range cells {
		if c.HexID == "" {
			continue
		}
		next[c.HexID] = c
	}
	return next
}

// IncrementHex увеличивает incident_count ячейки ровно на 1 и счетчик типа,
// если у ячейки есть разбивка по типам. Неизвестная ячейка не создается.
func IncrementHex(hexes map[string]models.HexCell, hexID string, incType models.IncidentType) (map[string]models.HexCell, bool) {
	cell, ok := hexes[hexID]
	if !ok {
		return hexes, false
	}
	cell.IncidentCount++
	if cell.IncidentTypes != nil && incType != "" {
		types := make(map[string]int, len(cell.IncidentTypes)+1)
		for k, v := range cell.IncidentTypes {
			types[k] = v
		}
		types[string(incType)]++
		cell.IncidentTypes = types
	}
	return UpsertHex(hexes, cell), true
}

// UpsertVehicle заменяет запись машины целиком, без слияния по полям
func UpsertVehicle(vehicles map[models.ID]models.Vehicle, v models.Vehicle) map[models.ID]models.Vehicle {
	next := make(map[models.ID]models.Vehicle, len(vehicles)+1)
	for k, val := range vehicles {
		next[k] = val
	}
	next[v.ID] = v
	return next
}

// RemoveVehicle удаляет машину по идентификатору
func RemoveVehicle(vehicles map[models.ID]models.Vehicle, id models.ID) (map[models.ID]models.Vehicle, bool) {
	if _, ok := vehicles[id]; !ok {
		return vehicles, false
	}
	next := make(map[models.ID]models.Vehicle, len(vehicles))
	for k, v := range vehicles {
		if k != id {
			next[k] = v
		}
	}
	return next, true
}

// ReplaceVehicles строит коллекцию машин из снапшота
func ReplaceVehicles(items []models.Vehicle) map[models.ID]models.Vehicle {
	next := make(map[models.ID]models.Vehicle, len(items))
	for _, v := range items {
		if v.ID == "" {
			continue
		}
		next[v.ID] = v
	}
	return next
}

// PrependAlerts добавляет оповещения в начало списка, сохраняя их порядок и
// пропуская уже известные идентификаторы.
func PrependAlerts(list []models.PatrolAlert, alerts ...models.PatrolAlert) ([]models.PatrolAlert, int) {
	seen := make(map[models.ID]struct{}, len(list)+len(alerts))
	for _, a := range list {
		seen[a.ID] = struct{}{}
	}
	fresh := make([]models.PatrolAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.ID == "" {
			continue
		}
		if _, ok := seen[a.ID]; ok {
			continue
		}
		seen[a.ID] = struct{}{}
		fresh = append(fresh, a)
	}
	if len(fresh) == 0 {
		return list, 0
	}
	next := make([]models.PatrolAlert, 0, len(fresh)+len(list))
	next = append(next, fresh...)
	next = append(next, list...)
	return next, len(fresh)
}

// SetRoute ставит маршрут инцидента, заменяя прежний для того же инцидента
func SetRoute(routes []models.ActiveRoute, r models.ActiveRoute) []models.ActiveRoute {
	next := make([]models.ActiveRoute, 0, len(routes)+1)
	for _, existing := range routes {
		if existing.IncidentID != r.IncidentID {
			next = append(next, existing)
		}
	}
	return append(next, r)
}

// PruneRoute убирает маршрут инцидента, остальные остаются нетронутыми
func PruneRoute(routes []models.ActiveRoute, incidentID models.ID) ([]models.ActiveRoute, bool) {
	idx := -1
	for i, r := range routes {
		if r.IncidentID == incidentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return routes, false
	}
	next := make([]models.ActiveRoute, 0, len(routes)-1)
	next = append(next, routes[:idx]...)
	next = append(next, routes[idx+1:]...)
	return next, true
}

func findRoute(routes []models.ActiveRoute, incidentID models.ID) (models.ActiveRoute, bool) {
	for _, r := range routes {
		if r.IncidentID == incidentID {
			return r, true
		}
	}
	return models.ActiveRoute{}, false
}
