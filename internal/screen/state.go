// Package screen models the view state shared by the console's read screens.
package screen

import (
	"errors"
	"fmt"
)

type State int

const (
	Idle State = iota
	Loading
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var ErrTransition = errors.New("screen: invalid state transition")

// allowed lists the legal edges. Failed is terminal until the screen is
// mounted again.
var allowed = map[State][]State{
	Idle:    {Loading},
	Loading: {Loaded, Failed},
	Loaded:  {Loaded},
}

func (s State) CanTransition(to State) bool {
	for _, next := range allowed[s] {
		if next == to {
			return true
		}
	}
	return false
}

func (s State) Transition(to State) (State, error) {
	if !s.CanTransition(to) {
		return s, fmt.Errorf("%w: %s -> %s", ErrTransition, s, to)
	}
	return to, nil
}
