package core

import "ShapePong/input"

// ApplyInput turns one polled control state into a paddle step. Paddle 1 is
// the right paddle, paddle 2 the left one. It reports whether a paddle moved.
func ApplyInput(st input.State, p1, p2 *Paddle) bool {
	switch st {
	case input.Paddle1Down:
		p1.MoveDown()
	case input.Paddle1Up:
		p1.MoveUp()
	case input.Paddle2Down:
		p2.MoveDown()
	case input.Paddle2Up:
		p2.MoveUp()
	default:
		return false
	}
	return true
}
