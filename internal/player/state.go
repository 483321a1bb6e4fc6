package player

import "fmt"

// State is the pick/throw state of the player. Exactly one is active.
type State int

const (
	StateNone State = iota
	StateIdle
	StatePicking
	StateThrowing

	stateCount // sentinel, never a live state
)

var stateNames = [stateCount]string{"none", "idle", "picking", "throwing"}

func (s State) String() string {
	if s < 0 || s >= stateCount {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}
