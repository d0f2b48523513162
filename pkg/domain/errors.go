package domain

import "errors"

// ErrMissingInput is returned when a run is started without its
// required parameters (e.g. a pathfinding grid with no start or end
// cell). The rejection happens before the executor runs and leaves the
// playback state unchanged.
var ErrMissingInput = errors.New("missing required input")

// ErrUnknownAlgorithm is returned when an algorithm name does not match
// any algorithm of the selected family.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// ErrInvalidSpeed is returned for non-positive speed multipliers.
var ErrInvalidSpeed = errors.New("speed multiplier must be positive")
