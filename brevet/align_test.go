package brevet

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brevetalign/models"
)

// straightLineRoute builds a short synthetic route along a meridian, one
// point every ~1.1km of latitude, used by every test in this file.
func straightLineRoute(n int) []models.Point {
	out := make([]models.Point, n)
	for i := 0; i < n; i++ {
		lat := float64(i) * 0.01
		out[i] = models.Point{Lat: lat, Lng: 0, T: 0, D: float64(i) * 1111.2}
	}
	return out
}

// straightLineTrack samples the same meridian every ~280m, close enough that
// the points left after stop clearing keep the control deviation under
// the default threshold.
func straightLineTrack(n int, startTime float64) []models.Point {
	out := make([]models.Point, n)
	for i := 0; i < n; i++ {
		lat := float64(i) * 0.0025
		out[i] = models.Point{Lat: lat, Lng: 0, T: startTime + float64(i)*10, D: 0}
	}
	return out
}

func testBrevet(route []models.Point) Brevet {
	checkpoints := []models.Point{route[0], route[len(route)-1]}
	ids := []string{"start", "finish"}
	return Brevet{
		ShortTrack:    route,
		Checkpoints:   checkpoints,
		CheckpointIDs: ids,
		Config:        DefaultConfig(len(checkpoints)),
	}
}

func TestAlign_HappyPath(t *testing.T) {
	route := straightLineRoute(20)
	b := testBrevet(route)
	track := straightLineTrack(200, 1000)

	reduced, err := Align(b, track)
	require.NoError(t, err)
	assert.Len(t, reduced, len(b.Checkpoints))
}

func TestAlign_EmptyTrackRejected(t *testing.T) {
	route := straightLineRoute(20)
	b := testBrevet(route)

	_, err := Align(b, nil)
	require.Error(t, err)
}

func TestAlign_FarAwayTrackRejectedOnRouteDeviation(t *testing.T) {
	route := straightLineRoute(20)
	b := testBrevet(route)

	track := make([]models.Point, 200)
	for i := range track {
		track[i] = models.Point{Lat: float64(i) * 0.005, Lng: 50, T: 1000 + float64(i)*10, D: 0}
	}

	_, err := Align(b, track)
	require.Error(t, err)
}

func TestAlign_ConcurrentCallsAreIndependent(t *testing.T) {
	route := straightLineRoute(20)
	b := testBrevet(route)
	track := straightLineTrack(200, 1000)

	const goroutines = 8
	results := make([][]models.Point, goroutines)
	errs := make([]error, goroutines)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		i := i
		go func() {
			defer wg.Done()
			results[i], errs[i] = Align(b, track)
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		require.NoError(t, errs[i])
		require.Equal(t, len(results[0]), len(results[i]))
		for j := range results[0] {
			assert.Equal(t, results[0][j], results[i][j])
		}
	}
}
