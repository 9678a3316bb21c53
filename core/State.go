package core

import (
	"fmt"

	"ShapePong/geometry"

	"github.com/pkg/errors"
)

// MaxDigit is the highest score a single digit can show.
const MaxDigit = 9

type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	}
	return "none"
}

// ScoreRule decides which counter a crossed edge increments.
type ScoreRule int

const (
	// ScoreEdge credits the counter on the side of the crossed edge.
	ScoreEdge ScoreRule = iota
	// ScoreOpponent credits the player facing the crossed edge.
	ScoreOpponent
)

func ParseScoreRule(s string) (ScoreRule, error) {
	switch s {
	case "", "edge":
		return ScoreEdge, nil
	case "opponent":
		return ScoreOpponent, nil
	}
	return ScoreEdge, errors.Errorf("unknown score rule %q", s)
}

func (r ScoreRule) String() string {
	if r == ScoreOpponent {
		return "opponent"
	}
	return "edge"
}

type Score struct {
	Left, Right int
}

func (s *Score) Award(e Edge, rule ScoreRule) {
	if rule == ScoreOpponent {
		if e == EdgeLeft {
			e = EdgeRight
		} else if e == EdgeRight {
			e = EdgeLeft
		}
	}
	switch e {
	case EdgeLeft:
		s.Left++
	case EdgeRight:
		s.Right++
	}
}

// Overflowed reports whether either counter no longer fits one digit.
func (s Score) Overflowed() bool {
	return s.Left > MaxDigit || s.Right > MaxDigit
}

func (s *Score) Reset() {
	s.Left, s.Right = 0, 0
}

// String renders the score as "L|R".
func (s Score) String() string {
	return fmt.Sprintf("%d|%d", s.Left, s.Right)
}

// State is shared by the advance step and the render pass. Advance writes
// Score and sets the flags, render clears the flags.
type State struct {
	Score      Score
	Fence      geometry.Region
	Redraw     bool
	FullRedraw bool
}

func NewState(fence geometry.Region) *State {
	return &State{Fence: fence, Redraw: true, FullRedraw: true}
}
