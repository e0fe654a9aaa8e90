// Package checkpoint implements the checkpoint list builder (component C):
// expanding a checkpoint sequence into entry/exit points for the aligner.
package checkpoint

import "brevetalign/models"

// Expand turns an ordered checkpoint list into a flat point array and a
// parallel identifier array. Every non-endpoint checkpoint is duplicated
// as an entry and an exit point; the start checkpoint appears once (no
// entry) and the finish checkpoint appears once (no exit). So
// len(output) == 2*N-2 for N >= 2, and == 1 for N == 1.
func Expand(checkpoints []models.Checkpoint) ([]models.Point, []string) {
	n := len(checkpoints)
	if n == 0 {
		return nil, nil
	}

	points := make([]models.Point, 0, 2*n)
	ids := make([]string, 0, 2*n)
	for _, cp := range checkpoints {
		p := models.Point{Lat: cp.Lat, Lng: cp.Lng, T: 0, D: float64(cp.DistanceKm) * 1000}
		points = append(points, p, p)
		ids = append(ids, cp.UID, cp.UID)
	}

	if n == 1 {
		return points[:len(points)-1], ids[:len(ids)-1]
	}
	return points[1 : len(points)-1], ids[1 : len(ids)-1]
}
