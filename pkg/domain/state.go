package domain

// PlaybackState is the playback controller's state machine position.
type PlaybackState string

const (
	// StateStopped means no run is armed. Start generates a fresh log.
	StateStopped PlaybackState = "stopped"

	// StateRunning means ticks advance the cursor on the wall clock.
	StateRunning PlaybackState = "running"

	// StatePaused means the cursor holds; manual stepping is allowed.
	StatePaused PlaybackState = "paused"

	// StateCompleted means the cursor reached the end of the log and
	// the performance record has been emitted.
	StateCompleted PlaybackState = "completed"
)

func (s PlaybackState) String() string {
	return string(s)
}
