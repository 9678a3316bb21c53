package render

import (
	"ShapePong/geometry"
	"ShapePong/pixel"
	"ShapePong/scene"
)

// Display is the pixel sink. WritePixel fills the window declared by the last
// SetDrawWindow call, row-major from its top left corner.
type Display interface {
	SetDrawWindow(r geometry.Region)
	WritePixel(c pixel.Color)
}

// Flusher is implemented by displays that buffer writes until shown.
type Flusher interface {
	Show()
}

// Compositor repaints screen regions by probing the layer stack.
type Compositor struct {
	display    Display
	screen     geometry.Region
	background pixel.Color
}

func NewCompositor(d Display, screen geometry.Region, background pixel.Color) *Compositor {
	return &Compositor{display: d, screen: screen, background: background}
}

func (c *Compositor) Screen() geometry.Region {
	return c.screen
}

// CommitAndRedraw commits the pending positions of set and repaints the union
// of every moved layer's old and new footprint. It returns the pixels written.
func (c *Compositor) CommitAndRedraw(s *scene.Scene, set scene.MovingSet) int {
	dirty, stack := s.Commit(set)

	n := 0
	for _, r := range dirty {
		n += c.paint(stack, r)
	}
	return n
}

// RedrawAll repaints the whole screen from the committed stack.
func (c *Compositor) RedrawAll(s *scene.Scene) int {
	return c.paint(s.Snapshot(), c.screen)
}

// Redraw repaints one region from the committed stack.
func (c *Compositor) Redraw(s *scene.Scene, r geometry.Region) int {
	return c.paint(s.Snapshot(), r)
}

func (c *Compositor) paint(stack scene.Stack, r geometry.Region) int {
	r, ok := r.Intersect(c.screen)
	if !ok {
		return 0
	}

	c.display.SetDrawWindow(r)
	for row := r.TopLeft.Y; row <= r.BottomRight.Y; row++ {
		for col := r.TopLeft.X; col <= r.BottomRight.X; col++ {
			c.display.WritePixel(stack.ColorAt(geometry.Vec(col, row), c.background))
		}
	}
	return r.Area()
}

// Flush shows buffered output if the display buffers.
func (c *Compositor) Flush() {
	if f, ok := c.display.(Flusher); ok {
		f.Show()
	}
}
