package domain

import "time"

// PerformanceRecord is the one-shot summary captured when a run's
// playback completes. It is owned by the host's history after creation,
// independent of the step log's lifetime.
type PerformanceRecord struct {
	ID               string        `json:"id"`
	Algorithm        string        `json:"algorithm"`
	Family           Family        `json:"family"`
	GenerationTime   time.Duration `json:"generation_time"`
	Comparisons      int           `json:"comparisons"`
	Mutations        int           `json:"mutations"`
	MemoryEstimateKB int           `json:"memory_estimate_kb"`
	Timestamp        time.Time     `json:"timestamp"`
}
