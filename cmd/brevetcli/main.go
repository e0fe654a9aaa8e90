// Command brevetcli exercises the alignment pipeline end to end: it reads
// a route GPX and a track GPX from local paths, builds the route and
// checkpoint list, runs the orchestrator, and prints the per-checkpoint
// visit result as JSON. There is no HTTP surface or document store here —
// a host wiring this into a service is expected to call the same
// ingest/routebuild/brevet functions directly.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"brevetalign/brevet"
	"brevetalign/checkpoint"
	"brevetalign/config"
	"brevetalign/ingest"
	"brevetalign/models"
	"brevetalign/routebuild"
	"brevetalign/utils"
)

type visitResult struct {
	UID  string  `json:"uid"`
	Name string  `json:"name,omitempty"`
	Lat  float64 `json:"lat,omitempty"`
	Lng  float64 `json:"lng,omitempty"`
	T    float64 `json:"timestamp,omitempty"`
	Seen bool    `json:"seen"`
}

func main() {
	cfg := config.NewAppConfig()
	utils.InitLogger(cfg)

	var routePath, trackPath string
	var skipTrim bool
	var trackDeviation, controlDeviation float64

	root := &cobra.Command{
		Use:   "brevetcli",
		Short: "Validate a recorded GPS track against a planned brevet route",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(routePath, trackPath, skipTrim, trackDeviation, controlDeviation)
		},
	}

	root.Flags().StringVar(&routePath, "route", "", "path to the route GPX file")
	root.Flags().StringVar(&trackPath, "track", "", "path to the recorded track GPX file")
	root.Flags().BoolVar(&skipTrim, "skip-trim", false, "skip prolog/epilog trimming")
	root.Flags().Float64Var(&trackDeviation, "track-deviation", 0, "override track deviation threshold (0 = default)")
	root.Flags().Float64Var(&controlDeviation, "control-deviation", 0, "override control deviation threshold (0 = default)")
	root.MarkFlagRequired("route")
	root.MarkFlagRequired("track")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runValidate(routePath, trackPath string, skipTrim bool, trackDeviation, controlDeviation float64) error {
	routeBytes, err := os.ReadFile(routePath)
	if err != nil {
		return fmt.Errorf("reading route file: %w", err)
	}
	trackBytes, err := os.ReadFile(trackPath)
	if err != nil {
		return fmt.Errorf("reading track file: %w", err)
	}

	rawRoute, err := ingest.RouteFromGPX(routeBytes)
	if err != nil {
		return fmt.Errorf("parsing route GPX: %w", err)
	}
	rawTrack, err := ingest.TrackFromGPX(trackBytes)
	if err != nil {
		return fmt.Errorf("parsing track GPX: %w", err)
	}

	built := routebuild.Build(rawRoute)
	for _, cp := range built.Checkpoints {
		if err := utils.ValidateStruct(cp); err != nil {
			return fmt.Errorf("built checkpoint %q: %w", cp.Name, err)
		}
	}
	points, ids := checkpoint.Expand(built.Checkpoints)

	cfg := brevet.DefaultConfig(len(points))
	cfg.SkipTrim = skipTrim
	if trackDeviation > 0 {
		cfg.TrackDeviationMax = trackDeviation
		cfg.TrackDeviationMin = trackDeviation
	}
	if controlDeviation > 0 {
		cfg.ControlDeviation = controlDeviation
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("brevet config: %w", err)
	}

	b := brevet.Brevet{
		ShortTrack:    routePointsToPoints(built.Short),
		Checkpoints:   points,
		CheckpointIDs: ids,
		Config:        cfg,
	}

	reduced, err := brevet.Align(b, rawTrack)
	if err != nil {
		return err
	}

	results := make([]visitResult, len(reduced))
	for i, p := range reduced {
		results[i] = visitResult{UID: ids[i], Seen: !p.IsMissing()}
		if !p.IsMissing() {
			results[i].Lat = p.Lat
			results[i].Lng = p.Lng
			results[i].T = p.T
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func routePointsToPoints(rps []models.RoutePoint) []models.Point {
	out := make([]models.Point, len(rps))
	for i, p := range rps {
		out[i] = models.Point{Lat: p.Lat, Lng: p.Lng, T: 0, D: p.Distance}
	}
	return out
}
