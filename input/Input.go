// Package input defines the discrete control states polled once per advance.
package input

type State int

const (
	Idle State = iota
	Paddle1Down
	Paddle1Up
	Paddle2Down
	Paddle2Up
)

func (s State) String() string {
	switch s {
	case Paddle1Down:
		return "paddle1-down"
	case Paddle1Up:
		return "paddle1-up"
	case Paddle2Down:
		return "paddle2-down"
	case Paddle2Up:
		return "paddle2-up"
	}
	return "idle"
}

// Source reports the active control state. Debouncing is the source's job.
type Source interface {
	CurrentState() State
}

// None is a source that never leaves Idle.
type None struct{}

func (None) CurrentState() State {
	return Idle
}

// Script replays a fixed sequence of states, then stays Idle.
type Script struct {
	States []State
	next   int
}

func (s *Script) CurrentState() State {
	if s.next >= len(s.States) {
		return Idle
	}
	st := s.States[s.next]
	s.next++
	return st
}
