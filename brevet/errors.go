package brevet

import "errors"

// Sentinel errors returned by Align, wrapped inside a *utils.AppError so
// callers can inspect the structured error while still using errors.Is.
var (
	ErrNoTrack           = errors.New("no usable track points remain after shaping")
	ErrRouteDeviation    = errors.New("track deviates from the short route beyond the configured threshold")
	ErrControlDeviation  = errors.New("track deviates from the checkpoints beyond the configured threshold")
	ErrCheckpointMissing = errors.New("too few checkpoints were visited")
)
