package core

import (
	"testing"

	"ShapePong/audio"
	"ShapePong/geometry"
	"ShapePong/pixel"
	"ShapePong/scene"
	"ShapePong/shape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	periods []uint16
}

func (r *recorder) SetPitch(p uint16) {
	r.periods = append(r.periods, p)
}

func (r *recorder) last() uint16 {
	if len(r.periods) == 0 {
		return audio.Silence
	}
	return r.periods[len(r.periods)-1]
}

type table struct {
	scene  *scene.Scene
	engine *Engine
	buzzer *recorder
	state  *State
	ball   Ball
	p1, p2 *Paddle
}

var field = geometry.Rect(0, 0, 100, 100)

func newTable(t *testing.T, ballPos, ballVel geometry.Vector2, rules Rules) *table {
	t.Helper()
	b := scene.NewBuilder()
	ballLayer := b.Layer(shape.Circle(2), pixel.White, ballPos)
	right := b.Layer(shape.Rect(1, 10), pixel.Purple, geometry.Vec(95, 50))
	left := b.Layer(shape.Rect(1, 10), pixel.Red, geometry.Vec(5, 50))
	b.Layer(shape.RectOutline(50, 50), pixel.Black, geometry.Vec(50, 50))
	mBall := b.Mover(ballLayer, ballVel)
	m1 := b.Mover(right, geometry.Vec(0, 0))
	m2 := b.Mover(left, geometry.Vec(0, 0))
	s, err := b.Build()
	require.NoError(t, err)

	rec := &recorder{}
	return &table{
		scene:  s,
		engine: NewEngine(s, rec, rules),
		buzzer: rec,
		state:  NewState(field),
		ball:   Ball{NewGameObject(mBall)},
		p1:     NewPaddle(s, m1, 4, field),
		p2:     NewPaddle(s, m2, 4, field),
	}
}

func (tb *table) advance() Outcome {
	return tb.engine.Advance(tb.ball, tb.p1, tb.p2, tb.state)
}

func (tb *table) ballLayer() scene.Layer {
	return tb.scene.Layer(tb.scene.Mover(tb.ball.Mover).Layer)
}

func (tb *table) velocity() geometry.Vector2 {
	return tb.scene.Mover(tb.ball.Mover).Velocity
}

func TestFreeFlight(t *testing.T) {
	tb := newTable(t, geometry.Vec(50, 30), geometry.Vec(2, 3), DefaultRules())
	out := tb.advance()

	assert.Equal(t, audio.CueNone, out.Cue)
	assert.Equal(t, geometry.Vec(52, 33), tb.ballLayer().PosNext)
	assert.Equal(t, geometry.Vec(50, 30), tb.ballLayer().Pos, "committed position untouched")
	assert.True(t, tb.state.Redraw)
	assert.Equal(t, []uint16{audio.Silence}, tb.buzzer.periods)
}

func TestLeftPaddleReturnsBall(t *testing.T) {
	tb := newTable(t, geometry.Vec(5, 50), geometry.Vec(-2, 0), DefaultRules())
	out := tb.advance()

	assert.Equal(t, 2, out.Paddle)
	assert.Equal(t, geometry.Vec(2, 0), tb.velocity())
	assert.Equal(t, geometry.Vec(7, 50), tb.ballLayer().PosNext, "prospective x 3 pushed right by 4")
	assert.Equal(t, audio.CuePaddle2, out.Cue)
	assert.Equal(t, audio.CuePaddle2.Period(), tb.buzzer.last())
	assert.NotEqual(t, audio.CueWall.Period(), tb.buzzer.last())
	assert.NotEqual(t, audio.CueScore.Period(), tb.buzzer.last())
	assert.Equal(t, Score{}, tb.state.Score)
}

func TestRightPaddleReturnsBall(t *testing.T) {
	tb := newTable(t, geometry.Vec(93, 45), geometry.Vec(3, 1), DefaultRules())
	out := tb.advance()

	assert.Equal(t, 1, out.Paddle)
	assert.Equal(t, audio.CuePaddle1, out.Cue)
	assert.Equal(t, geometry.Vec(-3, 1), tb.velocity())
	assert.Equal(t, geometry.Vec(90, 46), tb.ballLayer().PosNext)
}

func TestPaddleNeedsFullVerticalOverlap(t *testing.T) {
	// paddle 2 spans y 40..60, the ball spans 57..61
	tb := newTable(t, geometry.Vec(5, 59), geometry.Vec(-2, 0), DefaultRules())
	out := tb.advance()

	assert.Zero(t, out.Paddle)
	assert.NotEqual(t, audio.CuePaddle2, out.Cue)
}

func TestPaddleSideMustMatch(t *testing.T) {
	// paddle 1 covers the ball vertically but sits on the other half
	tb := newTable(t, geometry.Vec(5, 50), geometry.Vec(-2, 0), DefaultRules())
	tb.scene.Update(func(tx scene.Tx) {
		l := tx.MoverLayer(tb.p2.Mover)
		l.Pos = geometry.Vec(5, 10)
	})
	out := tb.advance()

	assert.NotEqual(t, 1, out.Paddle)
	assert.NotEqual(t, 2, out.Paddle)
}

func TestPaddleUsesCommittedPosition(t *testing.T) {
	tb := newTable(t, geometry.Vec(5, 50), geometry.Vec(-2, 0), DefaultRules())
	for i := 0; i < 5; i++ {
		tb.p2.MoveUp()
	}
	out := tb.advance()
	assert.Equal(t, 2, out.Paddle, "pending paddle moves do not count until committed")
}

func TestWallBounce(t *testing.T) {
	tb := newTable(t, geometry.Vec(50, 2), geometry.Vec(1, -2), DefaultRules())
	out := tb.advance()

	assert.Equal(t, audio.CueWall, out.Cue)
	assert.Equal(t, []geometry.Axis{geometry.AxisY}, out.Walls)
	assert.Equal(t, geometry.Vec(1, 2), tb.velocity())
	assert.Equal(t, geometry.Vec(51, 4), tb.ballLayer().PosNext)
	assert.True(t, field.Contains(tb.ballLayer().PosNext))
}

func TestPaddleHitStillChecksOtherAxis(t *testing.T) {
	tb := newTable(t, geometry.Vec(5, 50), geometry.Vec(-2, 0), DefaultRules())
	tb.scene.Update(func(tx scene.Tx) {
		// paddle 2 spans y 85..105, past the bottom wall
		tx.MoverLayer(tb.p2.Mover).Pos = geometry.Vec(5, 95)
		tx.MoverLayer(tb.ball.Mover).PosNext = geometry.Vec(5, 98)
		tx.Mover(tb.ball.Mover).Velocity = geometry.Vec(-2, 1)
	})
	out := tb.advance()

	assert.Equal(t, 2, out.Paddle)
	assert.Equal(t, []geometry.Axis{geometry.AxisY}, out.Walls)
	assert.Equal(t, geometry.Vec(2, -1), tb.velocity())
	assert.Equal(t, audio.CueWall, out.Cue, "last cue wins")
}

func TestLeftEdgeScores(t *testing.T) {
	tb := newTable(t, geometry.Vec(3, 10), geometry.Vec(-2, 0), DefaultRules())
	out := tb.advance()

	assert.Equal(t, EdgeLeft, out.Scored)
	assert.Equal(t, Score{Left: 1}, tb.state.Score)
	assert.Equal(t, geometry.Vec(50, 50), tb.ballLayer().PosNext)
	assert.Equal(t, geometry.Vec(2, 0), tb.velocity())
	assert.Equal(t, audio.CueScore, out.Cue)
	assert.Equal(t, audio.CueScore.Period(), tb.buzzer.last())
}

func TestRightEdgeScores(t *testing.T) {
	tb := newTable(t, geometry.Vec(97, 80), geometry.Vec(2, -1), DefaultRules())
	out := tb.advance()

	assert.Equal(t, EdgeRight, out.Scored)
	assert.Equal(t, Score{Right: 1}, tb.state.Score)
	assert.Equal(t, geometry.Vec(-2, -1), tb.velocity())
	assert.Equal(t, geometry.Vec(50, 50), tb.ballLayer().PosNext)
}

func TestOpponentScoreRule(t *testing.T) {
	rules := DefaultRules()
	rules.ScoreRule = ScoreOpponent
	tb := newTable(t, geometry.Vec(3, 10), geometry.Vec(-2, 0), rules)
	tb.advance()
	assert.Equal(t, Score{Right: 1}, tb.state.Score)
}

func TestLeftEdgeReflectionKeepsBallInside(t *testing.T) {
	for _, y := range []int{10, 50, 90} {
		tb := newTable(t, geometry.Vec(2, y), geometry.Vec(-2, 0), DefaultRules())
		tb.advance()
		assert.Equal(t, geometry.Vec(2, 0), tb.velocity(), "y=%d", y)
		assert.True(t, field.Contains(tb.ballLayer().PosNext), "y=%d", y)
	}
}

func TestScoreWrapsAfterNine(t *testing.T) {
	tb := newTable(t, geometry.Vec(3, 10), geometry.Vec(-2, 0), DefaultRules())
	tb.state.Score = Score{Left: 9, Right: 4}
	tb.state.FullRedraw = false

	out := tb.advance()

	assert.True(t, out.Wrapped)
	assert.Equal(t, Score{}, tb.state.Score)
	assert.Equal(t, Score{}, out.Score)
	assert.True(t, tb.state.FullRedraw)
}

func TestRepeatedScoringWraps(t *testing.T) {
	tb := newTable(t, geometry.Vec(3, 10), geometry.Vec(-2, 0), DefaultRules())
	for i := 1; i <= 10; i++ {
		tb.scene.Update(func(tx scene.Tx) {
			tx.MoverLayer(tb.ball.Mover).PosNext = geometry.Vec(3, 10)
			tx.Mover(tb.ball.Mover).Velocity = geometry.Vec(-2, 0)
		})
		out := tb.advance()
		require.Equal(t, EdgeLeft, out.Scored)
		if i < 10 {
			assert.Equal(t, i, tb.state.Score.Left)
			assert.False(t, out.Wrapped)
		} else {
			assert.True(t, out.Wrapped)
			assert.Equal(t, Score{}, tb.state.Score)
		}
	}
}

// The ball must never drift out of the fence nor change speed over a long rally.
func TestLongRunStaysInField(t *testing.T) {
	tb := newTable(t, geometry.Vec(40, 30), geometry.Vec(2, 3), DefaultRules())
	for i := 0; i < 2000; i++ {
		out := tb.advance()
		tb.scene.Commit(tb.ball.Set)

		v := tb.velocity()
		assert.Equal(t, 2, abs(v.X), "tick %d", i)
		assert.Equal(t, 3, abs(v.Y), "tick %d", i)

		pos := tb.ballLayer().Pos
		require.True(t, field.Inset(-3, -3).Contains(pos), "tick %d pos %v", i, pos)
		require.True(t, tb.ballLayer().Bounds().Valid())
		if out.Scored != EdgeNone {
			assert.Equal(t, field.Center(), pos)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
