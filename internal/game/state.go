// Package game provides the terminal presenter: round lifecycle, input handling and the main loop.
package game

// State is the presenter's screen state.
type State int

const (
	// StateTitle shows the start prompt. No round exists.
	StateTitle State = iota
	// StateRound accepts guesses for the current round.
	StateRound
	// StateRoundOver shows the result until the reveal delay elapses.
	StateRoundOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StateRound:
		return "round"
	case StateRoundOver:
		return "round_over"
	default:
		return "unknown"
	}
}
