// Package scene keeps the layer stack: an arena of layers painted in a fixed
// order, plus an arena of movers that give some of those layers a velocity.
//
// The structure is built once with a Builder and never restructured. Only
// positions and velocities change afterwards, always under the scene lock.
package scene

import (
	"sync"

	"ShapePong/geometry"
	"ShapePong/pixel"
	"ShapePong/shape"
)

type LayerID int

type MoverID int

// MovingSet lists movers committed together by one redraw pass.
type MovingSet []MoverID

// Layer is a shape with a color and three positions: the one painted last
// frame, the one committed for painting, and the pending one being advanced.
type Layer struct {
	Shape   shape.Shape
	Color   pixel.Color
	PosLast geometry.Vector2
	Pos     geometry.Vector2
	PosNext geometry.Vector2
}

// Bounds covers the layer at its committed position.
func (l Layer) Bounds() geometry.Region {
	return l.Shape.Bounds(l.Pos)
}

// Footprint covers both the previous and the committed position.
func (l Layer) Footprint() geometry.Region {
	return l.Shape.Bounds(l.PosLast).Union(l.Shape.Bounds(l.Pos))
}

type Mover struct {
	Layer    LayerID
	Velocity geometry.Vector2
}

type Scene struct {
	mu     sync.Mutex
	layers []Layer
	order  []LayerID
	movers []Mover
}

// Tx gives mutable access to layers and movers while the scene lock is held.
type Tx struct {
	s *Scene
}

func (tx Tx) Layer(id LayerID) *Layer {
	return &tx.s.layers[id]
}

func (tx Tx) Mover(id MoverID) *Mover {
	return &tx.s.movers[id]
}

// MoverLayer is the layer moved by the mover id.
func (tx Tx) MoverLayer(id MoverID) *Layer {
	return &tx.s.layers[tx.s.movers[id].Layer]
}

// Update runs fn with the scene locked.
func (s *Scene) Update(fn func(tx Tx)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(Tx{s: s})
}

// Layer returns a copy of the layer state.
func (s *Scene) Layer(id LayerID) Layer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layers[id]
}

// Mover returns a copy of the mover state.
func (s *Scene) Mover(id MoverID) Mover {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.movers[id]
}

// PaintOrder returns the layer ids from topmost to bottommost.
func (s *Scene) PaintOrder() []LayerID {
	out := make([]LayerID, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Scene) Len() int {
	return len(s.layers)
}

// Commit advances every layer of set (PosLast = Pos, Pos = PosNext) in a single
// critical section and returns the regions each move dirtied together with a
// snapshot of the committed stack to paint them from.
func (s *Scene) Commit(set MovingSet) ([]geometry.Region, Stack) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirty := make([]geometry.Region, 0, len(set))
	for _, id := range set {
		l := &s.layers[s.movers[id].Layer]
		l.PosNext = l.PosNext.Clamped()
		l.PosLast = l.Pos
		l.Pos = l.PosNext
		dirty = append(dirty, l.Footprint())
	}
	return dirty, s.snapshot()
}

// Snapshot copies the committed stack in paint order.
func (s *Scene) Snapshot() Stack {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Scene) snapshot() Stack {
	stack := make(Stack, len(s.order))
	for i, id := range s.order {
		l := s.layers[id]
		stack[i] = Probe{Shape: l.Shape, Color: l.Color, Pos: l.Pos}
	}
	return stack
}

// Probe is one entry of a committed stack.
type Probe struct {
	Shape shape.Shape
	Color pixel.Color
	Pos   geometry.Vector2
}

// Stack is a committed paint order, topmost first.
type Stack []Probe

// ColorAt returns the color of the first layer covering p, or bg.
func (st Stack) ColorAt(p geometry.Vector2, bg pixel.Color) pixel.Color {
	for _, probe := range st {
		if probe.Shape.Check(probe.Pos, p) {
			return probe.Color
		}
	}
	return bg
}
