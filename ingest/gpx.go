// Package ingest implements the producer side of the core's external point
// stream boundary: turning a parsed GPX document into the normalized
// Point/RoutePoint shapes the core consumes. GPX parsing is the only
// ingestion format with a library in the example corpus
// (github.com/tkrajina/gpxgo); FIT ingestion is documented in points.go
// without an implementation.
package ingest

import (
	"strings"

	"github.com/tkrajina/gpxgo/gpx"

	"brevetalign/geomath"
	"brevetalign/models"
)

// TrackFromGPX projects every track point across every segment/track of a
// parsed GPX document into a Point with D left at 0; RecomputeDistances
// fills it in via consecutive geodesic distances.
func TrackFromGPX(data []byte) ([]models.Point, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, err
	}

	var points []models.Point
	for _, trk := range g.Tracks {
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				ts := 0.0
				if !p.Timestamp.IsZero() {
					ts = float64(p.Timestamp.Unix())
				}
				points = append(points, models.Point{Lat: p.Latitude, Lng: p.Longitude, T: ts, D: 0})
			}
		}
	}
	return RecomputeDistances(points), nil
}

// RecomputeDistances fills in D by accumulating geo_distance between
// consecutive points, carrying the previous D forward across a degenerate
// (MathDomain) pair instead of aborting.
func RecomputeDistances(track []models.Point) []models.Point {
	for i := 1; i < len(track); i++ {
		prev := track[i-1]
		d, err := geomath.GeoDistance(prev.Lat, prev.Lng, track[i].Lat, track[i].Lng)
		if err != nil {
			track[i].D = prev.D
			continue
		}
		track[i].D = prev.D + d
	}
	return track
}

// RouteFromGPX projects a parsed GPX document's waypoints (route labels,
// e.g. a control marked "CP1" in its name) and track points into
// RoutePoint, the raw input routebuild.Build expects. Waypoints are
// projected first since they typically carry the control labels;
// coordinates from the track segments follow as the route polyline itself.
func RouteFromGPX(data []byte) ([]models.RoutePoint, error) {
	g, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, err
	}

	var points []models.RoutePoint
	for _, wpt := range g.Waypoints {
		points = append(points, models.RoutePoint{
			Lat:    wpt.Latitude,
			Lng:    wpt.Longitude,
			LabTxt: strings.TrimSpace(wpt.Name),
		})
	}
	for _, trk := range g.Tracks {
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				points = append(points, models.RoutePoint{Lat: p.Latitude, Lng: p.Longitude})
			}
		}
	}
	return points, nil
}
