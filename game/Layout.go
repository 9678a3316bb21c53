package game

import (
	"ShapePong/config"
	"ShapePong/core"
	"ShapePong/geometry"
	"ShapePong/scene"
	"ShapePong/shape"

	"github.com/pkg/errors"
)

// ScoreRows are the pixel rows above the field kept free for the score line.
const ScoreRows = 3

// Layout is the scene every game starts from: ball, right paddle, left paddle
// and the field outline, painted in that order.
type Layout struct {
	Scene   *scene.Scene
	Ball    core.Ball
	Paddle1 *core.Paddle
	Paddle2 *core.Paddle
	Field   scene.LayerID
	Fence   geometry.Region
}

// FieldRegion is the field outline for a width x height screen. The fence is
// the outline's bounds.
func FieldRegion(width, height int) geometry.Region {
	return geometry.Rect(1, ScoreRows, width-2, height-2)
}

func NewLayout(s *config.Settings) (*Layout, error) {
	region := FieldRegion(s.Screen.Width, s.Screen.Height)
	if !region.Valid() {
		return nil, errors.Errorf("screen %dx%d too small for a field", s.Screen.Width, s.Screen.Height)
	}
	half := geometry.Vec((region.Width()-1)/2, (region.Height()-1)/2)
	center := region.TopLeft.Add(half)
	outline := shape.RectOutline(half.X, half.Y)

	// the outline may be a pixel short of the region on even sizes
	fence := outline.Bounds(center)

	b := scene.NewBuilder()
	ballLayer := b.Layer(shape.Circle(s.Ball.Radius), s.Color.Ball, center)
	p1Layer := b.Layer(shape.Rect(s.Paddle.HalfWidth, s.Paddle.HalfHeight), s.Color.Paddle1,
		geometry.Vec(fence.BottomRight.X-s.Paddle.Inset, center.Y))
	p2Layer := b.Layer(shape.Rect(s.Paddle.HalfWidth, s.Paddle.HalfHeight), s.Color.Paddle2,
		geometry.Vec(fence.TopLeft.X+s.Paddle.Inset, center.Y))
	field := b.Layer(outline, s.Color.Field, center)

	ballMover := b.Mover(ballLayer, geometry.Vec(s.Ball.Velocity.X, s.Ball.Velocity.Y))
	p1Mover := b.Mover(p1Layer, geometry.Vec(0, 0))
	p2Mover := b.Mover(p2Layer, geometry.Vec(0, 0))

	sc, err := b.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build scene")
	}

	return &Layout{
		Scene:   sc,
		Ball:    core.Ball{GameObject: core.NewGameObject(ballMover)},
		Paddle1: core.NewPaddle(sc, p1Mover, s.Paddle.Step, fence),
		Paddle2: core.NewPaddle(sc, p2Mover, s.Paddle.Step, fence),
		Field:   field,
		Fence:   fence,
	}, nil
}
