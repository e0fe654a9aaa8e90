// Package routebuild implements the route builder (component P): turning
// a raw ordered list of route points into a cumulative-distance route, its
// normal/short RDP simplifications, and a checkpoint list.
package routebuild

import (
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"brevetalign/constants"
	"brevetalign/geomath"
	"brevetalign/models"
	"brevetalign/simplify"
)

// Route is the full output of building a raw point list: the cumulative
// route, its two simplifications, and the derived checkpoint list.
type Route struct {
	Full        []models.RoutePoint
	Normal      []models.RoutePoint
	Short       []models.RoutePoint
	Checkpoints []models.Checkpoint
}

// BuildRoute accumulates great-circle distance between consecutive points.
// A pair too close together to produce a valid cosine argument is a
// recognized MathDomain condition: the point is carried forward as a
// duplicate of its predecessor rather than dropped, so indices into the
// route stay stable for label attachment.
func BuildRoute(points []models.RoutePoint) []models.RoutePoint {
	if len(points) == 0 {
		return nil
	}
	result := make([]models.RoutePoint, len(points))
	result[0] = points[0]
	result[0].Distance = 0

	for i := 1; i < len(points); i++ {
		prev := result[i-1]
		p := points[i]
		d, err := geomath.GeoDistance(prev.Lat, prev.Lng, p.Lat, p.Lng)
		if err != nil {
			result[i] = prev
			continue
		}
		p.Distance = prev.Distance + d
		result[i] = p
	}
	return result
}

// Simplify produces the "normal" RDP simplification at the canonical
// eps (constants.RouteSimplifyFactor).
func Simplify(route []models.RoutePoint) []models.RoutePoint {
	mask := simplify.Simplify(route, constants.RouteSimplifyFactor)
	return simplify.Apply(route, mask)
}

// SimplifyShort produces the coarser "short" simplification, whose eps is
// chosen so its length roughly matches normal's.
func SimplifyShort(route, normal []models.RoutePoint) []models.RoutePoint {
	eps := simplify.DownSampleFactor(len(route), len(normal))
	mask := simplify.Simplify(route, eps)
	return simplify.Apply(route, mask)
}

// FindCheckpoints draws a checkpoint list from a built route, in priority
// order: the first point (always "Start"), every mid-route control point,
// then labels embedded on the first point ("symlabs") that are
// themselves controls. The result is sorted by distance and checkpoints
// with an empty name are dropped.
func FindCheckpoints(points []models.RoutePoint) []models.Checkpoint {
	if len(points) == 0 {
		return nil
	}

	first := points[0]
	rest := points[1:]

	var labels []models.Checkpoint
	for _, lbl := range first.SymLabs {
		if !models.HasControlPrefix(lbl.LabTxt) {
			continue
		}
		labels = append(labels, models.Checkpoint{Lat: lbl.Lat, Lng: lbl.Lng, Name: strings.TrimSpace(lbl.LabTxt)})
	}

	checkpoints := make([]models.Checkpoint, 0, len(rest)+2)

	start := checkpointFromRoutePoint(first)
	start.Name = "Start"
	checkpoints = append(checkpoints, start)

	for _, p := range rest {
		if !p.IsControl() {
			continue
		}
		cp := checkpointFromRoutePoint(p)
		cp.Name = fixName(cp.Name, p.Dir, p.LabTxt, "")
		checkpoints = append(checkpoints, cp)
	}

	AttachLabels(labels, rest)
	checkpoints = append(checkpoints, labels...)

	filtered := checkpoints[:0]
	for _, cp := range checkpoints {
		if strings.TrimSpace(cp.Name) != "" {
			filtered = append(filtered, cp)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].DistanceKm < filtered[j].DistanceKm })
	return filtered
}

// AttachLabels assigns a distance to every label-derived checkpoint that
// doesn't already carry one, using the nearest full-route point (argmin of
// point-to-sequence distance). A genuine km-0 label is indistinguishable
// from "distance missing", so a zero distance is always treated as unset.
func AttachLabels(labels []models.Checkpoint, points []models.RoutePoint) {
	if len(points) == 0 || len(labels) == 0 {
		return
	}
	asPoints := make([]models.Point, len(points))
	for i, p := range points {
		asPoints[i] = models.Point{Lat: p.Lat, Lng: p.Lng, T: 0, D: p.Distance}
	}

	for i := range labels {
		if labels[i].DistanceKm != 0 {
			continue
		}
		subject := models.Point{Lat: labels[i].Lat, Lng: labels[i].Lng}
		distances := geomath.PointToTrack(subject, asPoints, geomath.DefaultFactor)

		best := -1
		bestVal := math.Inf(1)
		for j, d := range distances {
			if !math.IsNaN(d) && d < bestVal {
				bestVal = d
				best = j
			}
		}
		if best >= 0 {
			labels[i].DistanceKm = int(math.Round(points[best].Distance / 1000))
		}
	}
}

// AddLastCheckpoint synthesizes an "End" checkpoint when the last route
// point's distance exceeds the last recognized control's distance by more
// than constants.EpilogMaxLength.
func AddLastCheckpoint(checkpoints []models.Checkpoint, finish models.RoutePoint) []models.Checkpoint {
	if len(checkpoints) == 0 {
		return checkpoints
	}
	last := checkpoints[len(checkpoints)-1]
	if finish.Distance > float64(last.DistanceKm)*1000+constants.EpilogMaxLength {
		end := checkpointFromRoutePoint(finish)
		end.Name = "End"
		checkpoints = append(checkpoints, end)
	}
	return checkpoints
}

// AssignUIDs fills in a stable identifier for any checkpoint that doesn't
// already carry one.
func AssignUIDs(checkpoints []models.Checkpoint) {
	for i := range checkpoints {
		if checkpoints[i].UID == "" {
			checkpoints[i].UID = uuid.NewString()
		}
	}
}

// Build runs the full route-building pipeline: cumulative distance,
// normal/short simplification, checkpoint extraction, End-checkpoint
// synthesis, and UID assignment.
func Build(points []models.RoutePoint) Route {
	full := BuildRoute(points)
	normal := Simplify(full)
	short := SimplifyShort(full, normal)

	checkpoints := FindCheckpoints(full)
	if len(full) > 0 {
		checkpoints = AddLastCheckpoint(checkpoints, full[len(full)-1])
	}
	AssignUIDs(checkpoints)

	return Route{Full: full, Normal: normal, Short: short, Checkpoints: checkpoints}
}

func checkpointFromRoutePoint(p models.RoutePoint) models.Checkpoint {
	return models.Checkpoint{
		Lat:        p.Lat,
		Lng:        p.Lng,
		DistanceKm: int(math.Round(p.Distance / 1000)),
	}
}

func fixName(name, dir, labtxt, replacement string) string {
	for _, candidate := range []string{name, dir, labtxt, replacement} {
		if strings.TrimSpace(candidate) != "" {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}
