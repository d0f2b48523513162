package domain

// Log is the ordered, append-only sequence of steps produced by one
// executor run. It is appended to during generation and read-only
// during playback; a new run replaces the log wholesale.
type Log struct {
	family Family
	steps  []Step
}

// NewLog creates an empty log for the given family.
func NewLog(family Family) *Log {
	return &Log{family: family}
}

// Family returns the algorithm family this log belongs to.
func (l *Log) Family() Family {
	return l.family
}

// Append adds a step to the end of the log.
func (l *Log) Append(step Step) {
	l.steps = append(l.steps, step)
}

// Len returns the number of recorded steps.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	return len(l.steps)
}

// At returns the step at index i. The caller must not mutate the
// returned step's snapshot or highlight slice.
func (l *Log) At(i int) Step {
	return l.steps[i]
}

// Last returns the final step and true, or a zero step and false for an
// empty log.
func (l *Log) Last() (Step, bool) {
	if l.Len() == 0 {
		return Step{}, false
	}
	return l.steps[len(l.steps)-1], true
}
