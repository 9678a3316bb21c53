package render

import (
	"ShapePong/geometry"
	"ShapePong/pixel"
)

// Framebuffer is an in-memory Display.
type Framebuffer struct {
	width, height int
	pix           []pixel.Color

	window geometry.Region
	cursor geometry.Vector2

	Writes  int
	Windows []geometry.Region
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]pixel.Color, width*height),
	}
}

func (f *Framebuffer) Bounds() geometry.Region {
	return geometry.Rect(0, 0, f.width-1, f.height-1)
}

func (f *Framebuffer) SetDrawWindow(r geometry.Region) {
	f.window = r
	f.cursor = r.TopLeft
	f.Windows = append(f.Windows, r)
}

func (f *Framebuffer) WritePixel(c pixel.Color) {
	f.Set(f.cursor, c)
	f.Writes++

	f.cursor.X++
	if f.cursor.X > f.window.BottomRight.X {
		f.cursor.X = f.window.TopLeft.X
		f.cursor.Y++
		if f.cursor.Y > f.window.BottomRight.Y {
			f.cursor.Y = f.window.TopLeft.Y
		}
	}
}

func (f *Framebuffer) Set(p geometry.Vector2, c pixel.Color) {
	if p.X < 0 || p.Y < 0 || p.X >= f.width || p.Y >= f.height {
		return
	}
	f.pix[p.Y*f.width+p.X] = c
}

func (f *Framebuffer) At(p geometry.Vector2) pixel.Color {
	if p.X < 0 || p.Y < 0 || p.X >= f.width || p.Y >= f.height {
		return 0
	}
	return f.pix[p.Y*f.width+p.X]
}

// ResetStats clears the write counters.
func (f *Framebuffer) ResetStats() {
	f.Writes = 0
	f.Windows = f.Windows[:0]
}
