package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"brevetalign/models"
)

func TestDownSampleFactor(t *testing.T) {
	cases := []struct {
		name             string
		source, target   int
		want             float64
	}{
		{"reference dataset ratio", 8000, 500, 0.01001},
		{"smaller ratio", 100, 50, 0.0011},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DownSampleFactor(tc.source, tc.target)
			assert.InDelta(t, tc.want, got, 5e-6)
		})
	}
}

func TestSimplify_KeepsEndpoints(t *testing.T) {
	points := []models.RoutePoint{
		{Lat: 0, Lng: 0},
		{Lat: 0.0001, Lng: 1},
		{Lat: 0, Lng: 2},
	}
	mask := Simplify(points, 0.001)
	assert.True(t, mask[0])
	assert.True(t, mask[len(mask)-1])
}

func TestSimplify_DropsNearCollinearPoint(t *testing.T) {
	points := []models.RoutePoint{
		{Lat: 0, Lng: 0},
		{Lat: 0.00001, Lng: 1}, // negligible deviation from the straight line
		{Lat: 0, Lng: 2},
	}
	mask := Simplify(points, 0.01)
	assert.False(t, mask[1])
}

func TestSimplify_KeepsSignificantDeviation(t *testing.T) {
	points := []models.RoutePoint{
		{Lat: 0, Lng: 0},
		{Lat: 5, Lng: 1}, // well away from the straight line
		{Lat: 0, Lng: 2},
	}
	mask := Simplify(points, 0.01)
	assert.True(t, mask[1])
}

func TestSimplify_EmptyAndSingle(t *testing.T) {
	assert.Empty(t, Simplify(nil, 0.001))

	single := Simplify([]models.RoutePoint{{Lat: 1, Lng: 1}}, 0.001)
	assert.Equal(t, []bool{true}, single)
}
