// Package brevet implements the alignment orchestrator (component A): it
// drives the track shaper and the Hirschberg aligner twice — once against
// the short route, once against the checkpoint list — applies acceptance
// thresholds, and emits per-control visit timestamps.
package brevet

import (
	"time"

	"brevetalign/align"
	"brevetalign/constants"
	"brevetalign/geomath"
	"brevetalign/models"
	"brevetalign/shaper"
	"brevetalign/utils"
)

// Brevet is the orchestrator's entry-point descriptor: the cached,
// pre-simplified short route and the expanded checkpoint list (with their
// parallel identifiers), plus per-brevet thresholds.
type Brevet struct {
	ShortTrack    []models.Point
	Checkpoints   []models.Point
	CheckpointIDs []string
	Config        Config
}

// costFunc is the geodesic kernel wired in as the aligner's cost function.
func costFunc(subject models.Point, sequence []models.Point) []float64 {
	return geomath.PointToTrack(subject, sequence, geomath.DefaultFactor)
}

// Align runs the full pipeline against a raw track and returns one Point
// per entry in b.Checkpoints: a matched visit (T is the timestamp to
// record) or models.Missing for an unvisited checkpoint.
func Align(b Brevet, track []models.Point) ([]models.Point, error) {
	start := time.Now()

	shaped := shape(b, track)
	utils.StageLogger("shape", msSince(start)).Int("shaped_len", len(shaped)).Msg("track shaped")
	if len(shaped) == 0 {
		return nil, wrapSentinel(ErrNoTrack, utils.NewEmptyTrackError, "no usable track points after shaping")
	}

	routeStart := time.Now()
	routeSource, routeTarget, routeScore := align.Align(b.ShortTrack, shaped, -constants.MaxPointDistance, 0, costFunc)
	reduced1 := align.ReduceByMatchedSource(routeSource, routeTarget)
	utils.StageLogger("align_route", msSince(routeStart)).Float64("score", routeScore).Msg("route alignment complete")

	if routeScore < -float64(len(reduced1))*b.Config.TrackDeviationMax {
		utils.LogWarn().Float64("score", routeScore).Msg("route deviation rejected on raw score")
		return nil, wrapSentinel(ErrRouteDeviation, utils.NewRouteDeviationError, "alignment score fails the route deviation threshold")
	}

	dev1 := geomath.TrackToTrack(b.ShortTrack, reduced1, 0)
	if dev1 > float64(len(reduced1))*b.Config.TrackDeviationMin {
		utils.LogWarn().Float64("deviation", dev1).Msg("route deviation rejected on recomputed distance")
		return nil, wrapSentinel(ErrRouteDeviation, utils.NewRouteDeviationError, "recomputed route deviation exceeds threshold")
	}

	controlStart := time.Now()
	cpSource, cpTarget, _ := align.Align(b.Checkpoints, shaped, -constants.MaxPointDistance, 0, costFunc)
	reduced2 := align.ReduceByMatchedSource(cpSource, cpTarget)
	utils.StageLogger("align_checkpoints", msSince(controlStart)).Msg("checkpoint alignment complete")

	dev2 := geomath.TrackToTrack(b.Checkpoints, reduced2, 0)
	if dev2 > b.Config.ControlDeviation {
		utils.LogWarn().Float64("deviation", dev2).Msg("control deviation rejected")
		return nil, wrapSentinel(ErrControlDeviation, utils.NewControlDeviationError, "checkpoint alignment deviation exceeds threshold")
	}

	visited := countVisited(reduced2)
	required := float64(len(b.Checkpoints))/2 + 1
	if float64(visited) < required {
		utils.LogWarn().Int("visited", visited).Float64("required", required).Msg("checkpoint missing")
		return nil, wrapSentinel(ErrCheckpointMissing, utils.NewCheckpointMissingError, "too few checkpoints were visited")
	}

	utils.StageLogger("align", msSince(start)).Int("visited", visited).Msg("alignment accepted")
	return reduced2, nil
}

// shape runs the three sequential track-shaping reductions, or just
// down-sampling and stop-clearing if skip_trim is set.
func shape(b Brevet, track []models.Point) []models.Point {
	mask := shaper.DownSampleMask(track)
	downSampled := shaper.ApplyMask(track, mask)

	if len(b.Checkpoints) == 0 {
		return shaper.ClearStops(downSampled, b.Checkpoints)
	}

	if b.Config.SkipTrim {
		return shaper.ClearStops(downSampled, b.Checkpoints)
	}

	end := b.Checkpoints[len(b.Checkpoints)-1]
	start := b.Checkpoints[0]
	// Epilog is trimmed before prolog: cutting the tail first keeps the
	// prolog search window from being thrown off by a track that loops
	// back near the start point after finishing.
	trimmed := shaper.TrimEpilog(downSampled, end)
	trimmed = shaper.TrimProlog(trimmed, start)
	return shaper.ClearStops(trimmed, b.Checkpoints)
}

func countVisited(points []models.Point) int {
	n := 0
	for _, p := range points {
		if !p.IsMissing() {
			n++
		}
	}
	return n
}

func wrapSentinel(sentinel error, ctor func(string, error) *utils.AppError, message string) error {
	return ctor(message, sentinel)
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
