package models

import (
	"time"
)

// GeofenceCheck представляет результат проверки координат относительно геозоны
type GeofenceCheck struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	DistanceKm float64   `json:"distance_km"`
	RadiusKm   float64   `json:"radius_km"`
	Within     bool      `json:"within"`
	CheckedAt  time.Time `json:"checked_at"`
}
