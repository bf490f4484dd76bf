package geofence

import (
	"math"

	"github.com/tidwall/geodesic"
)

// RadiusKm - радиус разрешённой зоны вокруг опорной точки
const RadiusKm = 5.0

// ReferencePoint - опорная ("домашняя") точка зоны
var ReferencePoint = Coordinate{Latitude: 37.7749, Longitude: -122.4194}

// Coordinate представляет пару широта/долгота в десятичных градусах
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Fence описывает круговую зону на эллипсоиде WGS84
type Fence struct {
	Center   Coordinate
	RadiusKm float64
}

// Default возвращает зону вокруг ReferencePoint радиусом RadiusKm
func Default() Fence {
	return Fence{Center: ReferencePoint, RadiusKm: RadiusKm}
}

// DistanceKm возвращает геодезическое расстояние между точками в километрах
func DistanceKm(a, b Coordinate) float64 {
	var meters float64
	geodesic.WGS84.Inverse(a.Latitude, a.Longitude, b.Latitude, b.Longitude, &meters, nil, nil)
	return meters / 1000
}

// Distance возвращает расстояние от центра зоны до точки в километрах
func (f Fence) Distance(p Coordinate) float64 {
	return DistanceKm(f.Center, p)
}

// Contains сообщает, лежит ли точка строго внутри зоны.
// Точка ровно на границе зоны не принадлежит.
func (f Fence) Contains(p Coordinate) bool {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) {
		return false
	}
	return f.Distance(p) < f.RadiusKm
}

// IsWithinGeofence проверяет координаты относительно зоны по умолчанию
func IsWithinGeofence(latitude, longitude float64) bool {
	return Default().Contains(Coordinate{Latitude: latitude, Longitude: longitude})
}
