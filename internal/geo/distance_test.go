package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

const (
	moscowLat = 55.7558
	moscowLon = 37.6176
	spbLat    = 59.9311
	spbLon    = 30.3609
)

func TestDistance_MoscowToSaintPetersburg(t *testing.T) {
	d := Distance(moscowLat, moscowLon, spbLat, spbLon)
	assert.InDelta(t, 635.0, d, 5.0)
}

func TestDistance_Symmetric(t *testing.T) {
	points := [][2]float64{
		{moscowLat, moscowLon},
		{spbLat, spbLon},
		{55.0084, 82.9357},
		{-33.8688, 151.2093},
		{0, 0},
		{89.9, -179.9},
		{-90, 180},
	}
	for _, p := range points {
		for _, q := range points {
			pq := Distance(p[0], p[1], q[0], q[1])
			qp := Distance(q[0], q[1], p[0], p[1])
			assert.InDelta(t, pq, qp, 1e-9*math.Max(1, pq), "p=%v q=%v", p, q)
		}
	}
}

func TestDistance_ZeroForIdenticalPoints(t *testing.T) {
	for _, p := range [][2]float64{{moscowLat, moscowLon}, {0, 0}, {-45.5, 170.25}, {90, 0}} {
		assert.InDelta(t, 0.0, Distance(p[0], p[1], p[0], p[1]), 1e-9)
	}
}

func TestDistance_QuarterMeridian(t *testing.T) {
	// equator to pole is a quarter of the great circle
	want := math.Pi * EarthRadiusKm / 2
	assert.InDelta(t, want, Distance(0, 0, 90, 0), 1e-6)
}

func TestPointDistance_MatchesDistance(t *testing.T) {
	p := orb.Point{moscowLon, moscowLat}
	q := orb.Point{spbLon, spbLat}
	assert.Equal(t, Distance(moscowLat, moscowLon, spbLat, spbLon), PointDistance(p, q))
}

func TestCoordinateRanges(t *testing.T) {
	assert.True(t, ValidLatitude(-90))
	assert.True(t, ValidLatitude(90))
	assert.False(t, ValidLatitude(90.0001))
	assert.False(t, ValidLatitude(-91))

	assert.True(t, ValidLongitude(-180))
	assert.True(t, ValidLongitude(180))
	assert.False(t, ValidLongitude(180.5))
	assert.False(t, ValidLongitude(-200))
}
