package geofence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/geodesic"
)

// pointAt возвращает точку на заданном расстоянии и азимуте от опорной
func pointAt(t *testing.T, km, azimuth float64) Coordinate {
	t.Helper()
	var lat, lon float64
	geodesic.WGS84.Direct(ReferencePoint.Latitude, ReferencePoint.Longitude, azimuth, km*1000, &lat, &lon, nil)
	return Coordinate{Latitude: lat, Longitude: lon}
}

func TestIsWithinGeofence_ReferencePoint(t *testing.T) {
	assert.True(t, IsWithinGeofence(ReferencePoint.Latitude, ReferencePoint.Longitude))
	assert.Zero(t, DistanceKm(ReferencePoint, ReferencePoint))
}

func TestIsWithinGeofence_JustInside(t *testing.T) {
	for _, azimuth := range []float64{0, 45, 90, 180, 270} {
		p := pointAt(t, 4.999, azimuth)
		assert.True(t, IsWithinGeofence(p.Latitude, p.Longitude), "azimuth %v", azimuth)
	}
}

func TestIsWithinGeofence_JustOutside(t *testing.T) {
	for _, azimuth := range []float64{0, 45, 90, 180, 270} {
		p := pointAt(t, 5.001, azimuth)
		assert.False(t, IsWithinGeofence(p.Latitude, p.Longitude), "azimuth %v", azimuth)
	}
}

func TestFence_BoundaryIsExcluded(t *testing.T) {
	p := pointAt(t, 5.0, 30)
	d := DistanceKm(ReferencePoint, p)
	assert.InDelta(t, 5.0, d, 1e-6)

	fence := Fence{Center: ReferencePoint, RadiusKm: d}
	assert.False(t, fence.Contains(p))
}

func TestDistanceKm_UsesEllipsoid(t *testing.T) {
	// San Francisco -> Los Angeles, ~559 km on WGS84
	la := Coordinate{Latitude: 34.0522, Longitude: -118.2437}
	d := DistanceKm(ReferencePoint, la)

	assert.InDelta(t, 559.0, d, 2.0)
	assert.False(t, IsWithinGeofence(la.Latitude, la.Longitude))
}

func TestIsWithinGeofence_NaN(t *testing.T) {
	assert.False(t, IsWithinGeofence(math.NaN(), ReferencePoint.Longitude))
	assert.False(t, IsWithinGeofence(ReferencePoint.Latitude, math.NaN()))
}

func TestFence_CustomCenter(t *testing.T) {
	fence := Fence{Center: Coordinate{Latitude: 0, Longitude: 0}, RadiusKm: 1}

	assert.True(t, fence.Contains(Coordinate{Latitude: 0, Longitude: 0.005}))
	assert.False(t, fence.Contains(Coordinate{Latitude: 0, Longitude: 0.01}))
	assert.False(t, fence.Contains(ReferencePoint))
}

func TestDefault(t *testing.T) {
	f := Default()
	assert.Equal(t, ReferencePoint, f.Center)
	assert.Equal(t, RadiusKm, f.RadiusKm)
}
