package game

// State is the round's lifecycle tag
type State int

const (
	InProgress State = iota
	Won
	Lost
)

// String returns the string representation of a state
func (s State) String() string {
	switch s {
	case InProgress:
		return "In Progress"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further guesses are accepted in this state.
func (s State) IsTerminal() bool {
	return s == Won || s == Lost
}
