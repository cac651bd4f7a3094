package models

// Point - пара координат [lat, lng]
type Point [2]float64

// Lat возвращает широту
func (p Point) Lat() float64 { return p[0] }

// Lng возвращает долготу
func (p Point) Lng() float64 { return p[1] }
