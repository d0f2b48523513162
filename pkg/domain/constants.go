package domain

import "time"

// Per-family base step delays. The effective delay is base divided by
// the speed multiplier. Pathfinding animates twice as fast because its
// logs are dominated by single-cell visit steps.
const (
	BaseStepDelay            = 100 * time.Millisecond
	PathfindingBaseStepDelay = 50 * time.Millisecond
)

// BaseDelayFor returns the base step delay for a family.
func BaseDelayFor(family Family) time.Duration {
	if family == FamilyPathfinding {
		return PathfindingBaseStepDelay
	}
	return BaseStepDelay
}

// Speed multiplier bounds. SetSpeed clamps into this range.
const (
	MinSpeed = 0.1
	MaxSpeed = 10.0
)

// Array size bounds for sorting and searching inputs.
const (
	MinArraySize = 10
	MaxArraySize = 500
)

// Pathfinding grid dimensions.
const (
	GridWidth  = 40
	GridHeight = 25
)

// HistoryCapacity bounds the performance record history; insertion
// beyond capacity evicts the oldest record.
const HistoryCapacity = 50
