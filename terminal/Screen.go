// Package terminal drives a text terminal as the game's display, text overlay
// and keypad. Two pixel rows share one character cell: the upper half block
// glyph is painted with the top pixel as foreground and the bottom pixel as
// background.
package terminal

import (
	"sync"

	"ShapePong/geometry"
	"ShapePong/pixel"

	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"
)

const HalfBlock = '▀'

type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen

	width, height int
	pix           []pixel.Color

	window geometry.Region
	cursor geometry.Vector2
}

// Open initialises the controlling terminal.
func Open(width, height int) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "new screen")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "init screen")
	}

	defaultStyle := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	s.SetStyle(defaultStyle)
	s.HideCursor()
	s.Clear()

	return New(s, width, height), nil
}

// New wraps an initialised tcell screen with a width x height pixel surface.
func New(s tcell.Screen, width, height int) *Screen {
	return &Screen{
		screen: s,
		width:  width,
		height: height,
		pix:    make([]pixel.Color, width*height),
	}
}

func (s *Screen) Tcell() tcell.Screen {
	return s.screen
}

// Bounds is the pixel surface.
func (s *Screen) Bounds() geometry.Region {
	return geometry.Rect(0, 0, s.width-1, s.height-1)
}

func (s *Screen) SetDrawWindow(r geometry.Region) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.window = r
	s.cursor = r.TopLeft
}

func (s *Screen) WritePixel(c pixel.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.cursor
	if p.X >= 0 && p.Y >= 0 && p.X < s.width && p.Y < s.height {
		s.pix[p.Y*s.width+p.X] = c
		s.paintCell(p.X, p.Y/2)
	}

	s.cursor.X++
	if s.cursor.X > s.window.BottomRight.X {
		s.cursor.X = s.window.TopLeft.X
		s.cursor.Y++
		if s.cursor.Y > s.window.BottomRight.Y {
			s.cursor.Y = s.window.TopLeft.Y
		}
	}
}

// Pixel returns the last color written at p.
func (s *Screen) Pixel(p geometry.Vector2) pixel.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.X < 0 || p.Y < 0 || p.X >= s.width || p.Y >= s.height {
		return 0
	}
	return s.pix[p.Y*s.width+p.X]
}

func (s *Screen) paintCell(col, row int) {
	top := s.pix[(2*row)*s.width+col]
	bottom := top
	if 2*row+1 < s.height {
		bottom = s.pix[(2*row+1)*s.width+col]
	}
	style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
	s.screen.SetContent(col, row, HalfBlock, nil, style)
}

// DrawDigits writes text with its first glyph in the cell holding pixel (x, y).
// Text cells are not part of the pixel surface and are overwritten by the next
// repaint of the pixels below them.
func (s *Screen) DrawDigits(x, y int, text string, fg, bg pixel.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()

	style := tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
	col, row := x, y/2
	for _, r := range text {
		s.screen.SetContent(col, row, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}

func (s *Screen) Show() {
	s.screen.Show()
}

// Sync redraws the whole terminal, used after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

func (s *Screen) Close() {
	s.screen.Fini()
}

func tcellColor(c pixel.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
