package core

import (
	"ShapePong/audio"
	"ShapePong/geometry"
	"ShapePong/scene"
)

// Rules are the tunable parts of collision handling.
type Rules struct {
	// PaddleMargin narrows the fence on x to the paddle contact zone.
	PaddleMargin int
	// ServeSpeed is the horizontal speed the ball restarts with after a point.
	ServeSpeed int
	ScoreRule  ScoreRule
}

func DefaultRules() Rules {
	return Rules{PaddleMargin: 7, ServeSpeed: 2, ScoreRule: ScoreEdge}
}

// Outcome describes what one advance did to the ball.
type Outcome struct {
	Cue      audio.Cue
	Paddle   int // 1 or 2 when a paddle returned the ball
	Walls    []geometry.Axis
	Scored   Edge
	Wrapped  bool
	Position geometry.Vector2
	Velocity geometry.Vector2
	Score    Score
}

type Engine struct {
	scene  *scene.Scene
	buzzer audio.Buzzer
	rules  Rules
}

func NewEngine(s *scene.Scene, b audio.Buzzer, rules Rules) *Engine {
	return &Engine{scene: s, buzzer: b, rules: rules}
}

// Advance moves the ball one step from its pending position, resolving paddle,
// wall and scoring collisions against the paddles' committed positions.
func (e *Engine) Advance(ball Ball, p1, p2 *Paddle, st *State) Outcome {
	var out Outcome
	e.scene.Update(func(tx scene.Tx) {
		out = e.advance(tx, ball, p1, p2, st)
	})
	return out
}

func (e *Engine) advance(tx scene.Tx, ball Ball, p1, p2 *Paddle, st *State) Outcome {
	var out Outcome
	e.buzzer.SetPitch(audio.Silence)

	mv := tx.Mover(ball.Mover)
	l := tx.Layer(mv.Layer)
	fence := st.Fence
	inner := fence.Inset(e.rules.PaddleMargin, 0)
	midX := fence.Center().X

	newPos := l.PosNext.Add(mv.Velocity)
	b := l.Shape.Bounds(newPos)
	span1 := tx.MoverLayer(p1.Mover).Bounds()
	span2 := tx.MoverLayer(p2.Mover).Bounds()

axes:
	for _, axis := range geometry.Axes {
		if axis == geometry.AxisX && inner.Exceeds(axis, b) {
			top, bottom := b.TopLeft.Y, b.BottomRight.Y
			if span1.ContainsSpan(geometry.AxisY, top, bottom) && b.TopLeft.X > midX {
				newPos = e.reflect(mv, newPos, axis, audio.CuePaddle1, &out)
				out.Paddle = 1
				continue axes
			}
			if span2.ContainsSpan(geometry.AxisY, top, bottom) && b.TopLeft.X < midX {
				newPos = e.reflect(mv, newPos, axis, audio.CuePaddle2, &out)
				out.Paddle = 2
				continue axes
			}
		}

		if fence.Exceeds(axis, b) {
			newPos = e.reflect(mv, newPos, axis, audio.CueWall, &out)
			out.Walls = append(out.Walls, axis)
		}

		if axis != geometry.AxisX {
			continue
		}
		edge := EdgeNone
		if b.TopLeft.X < fence.TopLeft.X {
			edge = EdgeLeft
		} else if b.BottomRight.X > fence.BottomRight.X {
			edge = EdgeRight
		}
		if edge != EdgeNone {
			newPos = fence.Center()
			serve := e.rules.ServeSpeed
			if edge == EdgeRight {
				serve = -serve
			}
			mv.Velocity.X = serve
			st.Score.Award(edge, e.rules.ScoreRule)
			e.cue(audio.CueScore, &out)
			out.Scored = edge
			break axes
		}
	}

	if st.Score.Overflowed() {
		st.Score.Reset()
		st.FullRedraw = true
		out.Wrapped = true
	}

	l.PosNext = newPos.Clamped()
	st.Redraw = true

	out.Position = l.PosNext
	out.Velocity = mv.Velocity
	out.Score = st.Score
	return out
}

// reflect inverts the velocity on axis and pushes the ball back by twice the
// new velocity so it does not stay inside the boundary it crossed.
func (e *Engine) reflect(mv *scene.Mover, pos geometry.Vector2, axis geometry.Axis, c audio.Cue, out *Outcome) geometry.Vector2 {
	v := -mv.Velocity.Axis(axis)
	mv.Velocity = mv.Velocity.WithAxis(axis, v)
	e.cue(c, out)
	return pos.WithAxis(axis, pos.Axis(axis)+2*v)
}

func (e *Engine) cue(c audio.Cue, out *Outcome) {
	e.buzzer.SetPitch(c.Period())
	out.Cue = c
}
