package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brevetalign/models"
)

// charsToPoints encodes a string as a sequence of points carrying the rune
// value in Lat, for exercising the aligner against a plain edit-distance
// scenario without pulling geomath into this test.
func charsToPoints(s string) []models.Point {
	out := make([]models.Point, len(s))
	for i, r := range []byte(s) {
		out[i] = models.Point{Lat: float64(r)}
	}
	return out
}

func pointsToChars(points []models.Point) string {
	out := make([]byte, len(points))
	for i, p := range points {
		if p.IsMissing() {
			out[i] = '-'
			continue
		}
		out[i] = byte(p.Lat)
	}
	return string(out)
}

func matchCost(subject models.Point, sequence []models.Point) []float64 {
	costs := make([]float64, len(sequence))
	for i, v := range sequence {
		if v.Lat == subject.Lat {
			costs[i] = -2
		} else {
			costs[i] = 1
		}
	}
	return costs
}

func TestAlign_SymbolScenario(t *testing.T) {
	source := charsToPoints("AGTACGCA")
	target := charsToPoints("TATGC")

	alignedSource, alignedTarget, score := Align(source, target, -2, -2, matchCost)

	require.Len(t, alignedSource, len(alignedTarget))
	assert.Equal(t, "AGTACGCA", pointsToChars(alignedSource))
	assert.Equal(t, "--TATGC-", pointsToChars(alignedTarget))
	assert.Equal(t, 1.0, score)
}

func TestAlign_BothEmpty(t *testing.T) {
	src, tgt, score := Align(nil, nil, -3000, 0, matchCost)
	assert.Empty(t, src)
	assert.Empty(t, tgt)
	assert.Equal(t, 0.0, score)
}

func TestAlign_TargetEmpty(t *testing.T) {
	source := charsToPoints("AB")
	src, tgt, score := Align(source, nil, -3000, 0, matchCost)
	assert.Equal(t, "AB", pointsToChars(src))
	assert.True(t, tgt[0].IsMissing())
	assert.True(t, tgt[1].IsMissing())
	assert.Equal(t, -6000.0, score)
}

func TestAlign_SourceEmpty(t *testing.T) {
	target := charsToPoints("AB")
	src, tgt, score := Align(nil, target, -3000, 0, matchCost)
	assert.Equal(t, "AB", pointsToChars(tgt))
	assert.True(t, src[0].IsMissing())
	assert.True(t, src[1].IsMissing())
	assert.Equal(t, 0.0, score)
}

func TestAlign_IdentitySelfAlignment(t *testing.T) {
	seq := charsToPoints("ABCDE")
	// Identical elements cost nothing, as with a geodesic distance, so a
	// perfect self-alignment scores zero.
	zeroOnMatch := func(subject models.Point, sequence []models.Point) []float64 {
		costs := make([]float64, len(sequence))
		for i, v := range sequence {
			if v.Lat != subject.Lat {
				costs[i] = 1
			}
		}
		return costs
	}
	src, tgt, score := Align(seq, seq, -3000, 0, zeroOnMatch)
	assert.Equal(t, "ABCDE", pointsToChars(src))
	assert.Equal(t, "ABCDE", pointsToChars(tgt))
	assert.Equal(t, 0.0, score)
}

func TestAlign_EqualLengthBounds(t *testing.T) {
	source := charsToPoints("AGTACGCA")
	target := charsToPoints("TATGC")
	alignedSource, alignedTarget, _ := Align(source, target, -2, -2, matchCost)

	l := len(alignedSource)
	assert.Equal(t, l, len(alignedTarget))
	maxLen := len(source)
	if len(target) > maxLen {
		maxLen = len(target)
	}
	assert.GreaterOrEqual(t, l, maxLen)
	assert.LessOrEqual(t, l, len(source)+len(target))
}

func TestReduceByMatchedSource(t *testing.T) {
	alignedSource := []models.Point{{Lat: 1}, models.Missing, {Lat: 2}}
	alignedTarget := []models.Point{{Lat: 10}, {Lat: 20}, models.Missing}

	reduced := ReduceByMatchedSource(alignedSource, alignedTarget)
	require.Len(t, reduced, 2)
	assert.Equal(t, 10.0, reduced[0].Lat)
	assert.True(t, reduced[1].IsMissing())
}
