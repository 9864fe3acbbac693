package processor

// State is the lifecycle state of a Processor.
type State int

const (
	StateCollecting State = iota
	StateFinalizing
	StateDone
	StateFailed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateCollecting:
		return "collecting"
	case StateFinalizing:
		return "finalizing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal returns true once no more passes are accepted.
func (s State) Terminal() bool {
	return s == StateDone || s == StateFailed
}
