// Package simplify implements the Ramer-Douglas-Peucker polyline reducer
// (component R) and its epsilon auto-selector. Perpendicular distance is
// computed directly on the raw (lat, lng) pairs in degree-space — not a
// geodesic distance — matching the upstream rdp library's behavior that
// the route builder relies on.
package simplify

import (
	"math"

	"brevetalign/models"
)

// Simplify runs an iterative (explicit-stack, non-recursive) RDP reduction
// over points' (Lat, Lng) pairs with perpendicular-distance threshold eps.
// It returns a boolean mask the same length as points; callers project any
// other per-point attribute (distance, labels, timestamps) through the
// mask themselves.
func Simplify(points []models.RoutePoint, eps float64) []bool {
	n := len(points)
	keep := make([]bool, n)
	if n == 0 {
		return keep
	}
	keep[0] = true
	keep[n-1] = true
	if n < 3 {
		for i := range keep {
			keep[i] = true
		}
		return keep
	}

	type span struct{ lo, hi int }
	stack := []span{{0, n - 1}}

	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		lo, hi := s.lo, s.hi
		if hi-lo < 2 {
			continue
		}

		maxDist := -1.0
		maxIdx := -1
		for i := lo + 1; i < hi; i++ {
			d := perpendicularDistance(points[i], points[lo], points[hi])
			if d > maxDist {
				maxDist = d
				maxIdx = i
			}
		}

		if maxDist > eps {
			keep[maxIdx] = true
			stack = append(stack, span{lo, maxIdx}, span{maxIdx, hi})
		}
	}

	return keep
}

// perpendicularDistance returns the Euclidean perpendicular distance, in
// degree-space, from point to the line through lineStart/lineEnd.
func perpendicularDistance(point, lineStart, lineEnd models.RoutePoint) float64 {
	dx := lineEnd.Lng - lineStart.Lng
	dy := lineEnd.Lat - lineStart.Lat

	if dx == 0 && dy == 0 {
		ddx := point.Lng - lineStart.Lng
		ddy := point.Lat - lineStart.Lat
		return math.Sqrt(ddx*ddx + ddy*ddy)
	}

	// |cross product| / |line vector|
	numerator := math.Abs(dx*(lineStart.Lat-point.Lat) - (lineStart.Lng-point.Lng)*dy)
	denominator := math.Sqrt(dx*dx + dy*dy)
	return numerator / denominator
}

// DownSampleFactor returns an RDP epsilon tuned so that simplifying a
// source-length polyline again lands close to target's length — the
// second, coarser "short" simplification consumed by the aligner.
func DownSampleFactor(sourceLen, targetLen int) float64 {
	return 0.0002*float64(targetLen)/float64(sourceLen) + float64(targetLen)/50000
}

// Apply projects a boolean mask over a RoutePoint slice, returning only
// the retained points in their original order.
func Apply(points []models.RoutePoint, mask []bool) []models.RoutePoint {
	out := make([]models.RoutePoint, 0, len(points))
	for i, keep := range mask {
		if keep {
			out = append(out, points[i])
		}
	}
	return out
}
