// Package align implements Hirschberg's linear-space sequence alignment
// (component H), generalized from the classic generic-sequence version to
// the point domain: a custom geodesic cost function and asymmetric gap
// costs in place of a scalar edit distance.
//
// Score convention: higher is better. The aligner is a maximization, not a
// minimization, over replace/delete/insert contributions.
package align

import (
	"math"

	"brevetalign/models"
)

// CostFunc is the geodesic kernel's point-to-sequence distance, used by
// the aligner as a replacement cost to subtract: small geographic distance
// means a large contribution to the alignment score.
type CostFunc func(subject models.Point, sequence []models.Point) []float64

// Align runs Hirschberg's algorithm over source and target, returning
// aligned sequences of equal length and the alignment score. Positions
// where the aligned source is models.Missing correspond to unmatched
// target points (insertions); positions where the aligned target is
// missing correspond to unmatched source points (deletions, e.g. an
// unvisited checkpoint). Callers filter on "aligned source != missing" to
// project onto the target side.
func Align(source, target []models.Point, deletionCost, insertionCost float64, cost CostFunc) ([]models.Point, []models.Point, float64) {
	n, m := len(source), len(target)

	if n == 0 && m == 0 {
		return nil, nil, 0
	}

	if m == 0 {
		alignedTarget := missingSlice(n)
		return clone(source), alignedTarget, float64(n) * deletionCost
	}

	if n == 0 {
		alignedSource := missingSlice(m)
		return alignedSource, clone(target), float64(m) * insertionCost
	}

	if m == 1 {
		idx, minCost := linearSearch(target[0], source, cost)
		alignedTarget := missingSlice(n)
		alignedTarget[idx] = target[0]
		score := deletionCost*float64(n-1) - minCost
		return clone(source), alignedTarget, score
	}

	if n == 1 {
		idx, minCost := linearSearch(source[0], target, cost)
		alignedSource := missingSlice(m)
		alignedSource[idx] = source[0]
		score := insertionCost*float64(m-1) - minCost
		return alignedSource, clone(target), score
	}

	cut := n / 2
	upper := lineScore(source[:cut], target, deletionCost, insertionCost, cost)
	lower := lineScore(reversePoints(source[cut:]), reversePoints(target), deletionCost, insertionCost, cost)
	lowerReversed := reverseFloats(lower)

	splitAt := 0
	best := math.Inf(-1)
	for j := 0; j <= m; j++ {
		v := upper[j] + lowerReversed[j]
		if v > best {
			best = v
			splitAt = j
		}
	}

	leftSource, leftTarget, leftScore := Align(source[:cut], target[:splitAt], deletionCost, insertionCost, cost)
	rightSource, rightTarget, rightScore := Align(source[cut:], target[splitAt:], deletionCost, insertionCost, cost)

	return append(leftSource, rightSource...), append(leftTarget, rightTarget...), leftScore + rightScore
}

// lineScore computes the final row of the Needleman-Wunsch-style score
// matrix for source against target, using two preallocated buffers that
// alternate roles rather than allocating one array per source row.
func lineScore(source, target []models.Point, deletionCost, insertionCost float64, cost CostFunc) []float64 {
	targetLen := len(target)
	row1 := make([]float64, targetLen+1)
	row2 := make([]float64, targetLen+1)
	for j := range row1 {
		row1[j] = float64(j) * insertionCost
	}

	for i := 0; i < len(source); i++ {
		costs := cost(source[i], target)
		row2[0] = row1[0] + deletionCost
		for j := 1; j <= targetLen; j++ {
			replacement := row1[j-1] - costs[j-1]
			deletion := row1[j] + deletionCost
			insertion := row2[j-1] + insertionCost
			row2[j] = max3(replacement, deletion, insertion)
		}
		row1, row2 = row2, row1
	}

	return row1
}

// linearSearch picks the index in sequence with minimum cost against
// subject, for the length-1 base cases.
func linearSearch(subject models.Point, sequence []models.Point, cost CostFunc) (int, float64) {
	costs := cost(subject, sequence)
	minCost := math.Inf(1)
	index := 0
	for i, c := range costs {
		if c < minCost {
			minCost = c
			index = i
		}
	}
	return index, minCost
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func missingSlice(n int) []models.Point {
	out := make([]models.Point, n)
	for i := range out {
		out[i] = models.Missing
	}
	return out
}

func clone(points []models.Point) []models.Point {
	out := make([]models.Point, len(points))
	copy(out, points)
	return out
}

func reversePoints(points []models.Point) []models.Point {
	out := make([]models.Point, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}
	return out
}

func reverseFloats(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}

// ReduceByMatchedSource filters alignedTarget to the positions where
// alignedSource is not the missing sentinel, yielding one entry per
// source element (a match, or models.Missing for a deletion). Callers
// use this to project an alignment back onto the source sequence's shape.
func ReduceByMatchedSource(alignedSource, alignedTarget []models.Point) []models.Point {
	out := make([]models.Point, 0, len(alignedSource))
	for i, s := range alignedSource {
		if !s.IsMissing() {
			out = append(out, alignedTarget[i])
		}
	}
	return out
}
