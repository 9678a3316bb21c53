package core

import (
	"ShapePong/geometry"
	"ShapePong/scene"
)

// GameObject is a mover in the scene together with the moving set that
// commits it.
type GameObject struct {
	Mover scene.MoverID
	Set   scene.MovingSet
}

func NewGameObject(id scene.MoverID) GameObject {
	return GameObject{Mover: id, Set: scene.MovingSet{id}}
}

type Ball struct {
	GameObject
}

// Paddle moves vertically by a fixed step and never leaves the fence.
type Paddle struct {
	GameObject
	scene *scene.Scene
	step  int
	fence geometry.Region
}

func NewPaddle(s *scene.Scene, id scene.MoverID, step int, fence geometry.Region) *Paddle {
	return &Paddle{GameObject: NewGameObject(id), scene: s, step: step, fence: fence}
}

func (p *Paddle) MoveUp() {
	p.move(-p.step)
}

func (p *Paddle) MoveDown() {
	p.move(p.step)
}

func (p *Paddle) move(dy int) {
	p.scene.Update(func(tx scene.Tx) {
		l := tx.MoverLayer(p.Mover)
		next := l.PosNext.Add(geometry.Vec(0, dy))

		half := l.Shape.Bounds(geometry.Vec(0, 0)).BottomRight.Y
		lo, hi := p.fence.TopLeft.Y+half, p.fence.BottomRight.Y-half
		if lo <= hi {
			next.Y = geometry.Clamp(next.Y, lo, hi)
		}
		l.PosNext = next
	})
}

// Span is the paddle's committed bounds.
func (p *Paddle) Span() geometry.Region {
	return p.scene.Layer(p.scene.Mover(p.Mover).Layer).Bounds()
}
