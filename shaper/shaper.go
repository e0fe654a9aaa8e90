// Package shaper implements the track shaper (component S): down-sampling
// by spacing, prolog/epilog trimming, and checkpoint stop removal.
package shaper

import (
	"math"

	"brevetalign/constants"
	"brevetalign/geomath"
	"brevetalign/models"
)

// DownSampleMask emits a boolean mask keeping roughly one point per
// constants.DownSampleInterval meters of advance. For each retained index
// i it scans distances to the next `ahead` points and keeps the first
// offset whose distance exceeds the interval. When no offset in the
// window qualifies, ahead grows by x1.5 and the scan retries (bounded by
// track length). After a successful jump, ahead relaxes toward
// (ahead+offset+19)/2 so the look-ahead window tracks local point density.
// The last index is always retained. NaN distances are treated as "does
// not qualify" and skipped.
func DownSampleMask(track []models.Point) []bool {
	n := len(track)
	mask := make([]bool, n)
	if n == 0 {
		return mask
	}
	mask[0] = true
	if n == 1 {
		return mask
	}
	mask[n-1] = true

	ahead := constants.LookupAheadPoints
	i := 0
	for i < n-1 {
		window := ahead
		if i+window > n-1 {
			window = n - 1 - i
		}

		found := false
		offset := 0
		for window > 0 {
			candidates := track[i+1 : i+1+window]
			dists := geomath.PointToTrack(track[i], candidates, 0)
			for j, d := range dists {
				if math.IsNaN(d) {
					continue
				}
				if d > constants.DownSampleInterval {
					offset = j + 1
					found = true
					break
				}
			}
			if found {
				break
			}
			if i+ahead > n-1 {
				// The window already reaches the end of the track and
				// still found nothing — growing ahead further can't
				// change the candidate set, so stop retrying.
				break
			}
			ahead = int(float64(ahead) * 1.5)
			window = ahead
			if i+window > n-1 {
				window = n - 1 - i
			}
		}

		if !found {
			break
		}

		mask[i+offset] = true
		ahead = (ahead + offset + 19) / 2
		i += offset
	}

	return mask
}

// ApplyMask projects a boolean mask over a point slice, returning the
// retained points in order.
func ApplyMask(track []models.Point, mask []bool) []models.Point {
	out := make([]models.Point, 0, len(track))
	for i, keep := range mask {
		if keep {
			out = append(out, track[i])
		}
	}
	return out
}

// TrimEpilog discards every track point after the last one within
// constants.CheckpointRadius of the end checkpoint. Tracks shorter than 2
// points are returned unchanged.
func TrimEpilog(track []models.Point, end models.Point) []models.Point {
	if len(track) < 2 {
		return track
	}
	last := -1
	ends := geomath.PointToTrack(end, track, 0)
	for i, d := range ends {
		if !math.IsNaN(d) && d <= constants.CheckpointRadius {
			last = i
		}
	}
	if last < 0 {
		return track
	}
	return track[:last+1]
}

// TrimProlog discards every track point before the first one within
// constants.CheckpointRadius of the start checkpoint, and rebases the
// remaining points' D values to start at zero. Tracks shorter than 2
// points are returned unchanged.
func TrimProlog(track []models.Point, start models.Point) []models.Point {
	if len(track) < 2 {
		return track
	}
	first := -1
	starts := geomath.PointToTrack(start, track, 0)
	for i, d := range starts {
		if !math.IsNaN(d) && d <= constants.CheckpointRadius {
			first = i
			break
		}
	}
	if first < 0 {
		return track
	}

	base := track[first].D
	out := make([]models.Point, len(track)-first)
	for i, p := range track[first:] {
		p.D -= base
		out[i] = p
	}
	return out
}

// ClearStops removes every track point within constants.CheckpointRadius
// of any checkpoint. The distance-shift penalty is disabled (factor 0)
// since this is a purely geographic proximity test — riders linger at
// controls and those samples would otherwise derail the aligner.
func ClearStops(track []models.Point, checkpoints []models.Point) []models.Point {
	out := make([]models.Point, 0, len(track))
	for _, p := range track {
		near := false
		for _, cp := range checkpoints {
			d := geomath.PointToTrack(p, []models.Point{cp}, 0)[0]
			if !math.IsNaN(d) && d <= constants.CheckpointRadius {
				near = true
				break
			}
		}
		if !near {
			out = append(out, p)
		}
	}
	return out
}
