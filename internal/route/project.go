// Package route обрезает геометрию маршрута до непройденной части.
package route

import "github.com/shenikar/dispatch_console/internal/models"

// Project возвращает суффикс polyline, начинающийся с вершины, ближайшей к
// позиции машины. Интерполяции между вершинами нет. При pos == nil или
// геометрии короче двух точек возвращается исходная геометрия.
func Project(geometry []models.Point, pos *models.Point) []models.Point {
	if pos == nil || len(geometry) < 2 {
		return geometry
	}
	best := 0
	bestDist := sqDist(geometry[0], *pos)
	for i := 1; i < len(geometry); i++ {
		if d := sqDist(geometry[i], *pos); d < bestDist {
			best, bestDist = i, d
		}
	}
	return geometry[best:]
}

func sqDist(a, b models.Point) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx + dy*dy
}
