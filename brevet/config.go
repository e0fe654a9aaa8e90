package brevet

import (
	"brevetalign/constants"
	"brevetalign/utils"
)

// Config holds the per-brevet acceptance thresholds. These are policy, not
// assertions, and are configurable per brevet rather than hard-coded.
type Config struct {
	// TrackDeviationMax/Min are meters per matched point.
	TrackDeviationMax float64 `validate:"gte=0"`
	TrackDeviationMin float64 `validate:"gte=0"`
	// ControlDeviation is an aggregate meters threshold, already scaled by
	// the checkpoint count — see DefaultControlDeviation.
	ControlDeviation float64 `validate:"gte=0"`
	SkipTrim         bool
}

// DefaultConfig returns the canonical thresholds for a brevet whose
// expanded checkpoint array (see checkpoint.Expand) has numCheckpoints
// entries — the same count Align derives its minimum number of visited
// checkpoints from.
func DefaultConfig(numCheckpoints int) Config {
	return Config{
		TrackDeviationMax: constants.TrackDeviationMax,
		TrackDeviationMin: constants.TrackDeviationMin,
		ControlDeviation:  DefaultControlDeviation(numCheckpoints),
	}
}

// DefaultControlDeviation computes (n/2 + 1) * CONTROL_DEVIATION_FACTOR.
func DefaultControlDeviation(numCheckpoints int) float64 {
	return (float64(numCheckpoints)/2 + 1) * constants.ControlDeviationFactor
}

// Validate checks the configuration's numeric fields are non-negative.
func (c Config) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return utils.WrapError(err, utils.ErrorTypeValidation, "invalid brevet config")
	}
	return nil
}
