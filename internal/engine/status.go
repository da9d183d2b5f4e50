package engine

// Status is the derived state of a round.
type Status int

const (
	// StatusNotStarted is held by callers before a round exists.
	// An Engine never reports it.
	StatusNotStarted Status = iota
	// StatusStarted means the round is in progress.
	StatusStarted
	// StatusWon means every letter of the mystery word is revealed.
	StatusWon
	// StatusLost means the failure stage reached MaxStage.
	StatusLost
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not_started"
	case StatusStarted:
		return "started"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Finished reports whether s is terminal.
func (s Status) Finished() bool {
	return s == StatusWon || s == StatusLost
}
