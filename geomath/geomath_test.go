package geomath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brevetalign/models"
)

func TestGeoDistance(t *testing.T) {
	t.Run("identical coordinates return zero", func(t *testing.T) {
		d, err := GeoDistance(0, 0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, d)
	})

	t.Run("latitude-only offset", func(t *testing.T) {
		d, err := GeoDistance(50, 20, 60, 20)
		require.NoError(t, err)
		assert.InDelta(t, 1111949.2664455846, d, 1e-6)
	})

	t.Run("longitude-only offset", func(t *testing.T) {
		d, err := GeoDistance(60, 20, 60, 30)
		require.NoError(t, err)
		assert.InDelta(t, 555445.1329718407, d, 1e-6)
	})

	t.Run("numerically degenerate points fail MathDomain", func(t *testing.T) {
		_, err := GeoDistance(60.691026, 28.806356, 60.691026, 28.806357)
		require.Error(t, err)
	})
}

func TestPointToTrack(t *testing.T) {
	p := models.Point{Lat: 60, Lng: 20, T: 0, D: 150}
	track := []models.Point{
		{Lat: 50, Lng: 20, T: 0, D: 0},
		{Lat: 60, Lng: 20, T: 0, D: 0},
		{Lat: 60, Lng: 20, T: 0, D: 150},
		{Lat: 60, Lng: 20, T: 0, D: 1150},
		{Lat: 60, Lng: 30, T: 0, D: 200},
		{Lat: 0, Lng: 0, T: 0, D: 0},
	}

	got := PointToTrack(p, track, DefaultFactor)
	want := []float64{1111949.416, 0.15, 0.0, 1.0, 555445.183, 6891381.266}

	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 5e-3, "index %d", i)
	}
}

func TestTrackToTrack_NaNSubstitution(t *testing.T) {
	u := []models.Point{{Lat: 0, Lng: 0, T: 0, D: 0}, models.Missing}
	v := []models.Point{{Lat: 0, Lng: 0, T: 0, D: 0}, {Lat: 10, Lng: 10, T: 0, D: 500}}

	got := TrackToTrack(u, v, 0)
	assert.True(t, math.IsInf(got, 0) == false)
	assert.InDelta(t, 3000.0, got, 1e-9) // first pair 0, second is NaN -> MaxPointDistance
}
