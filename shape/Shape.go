// Package shape describes the footprints a layer can paint.
//
// Shapes are a closed set of variants selected by Kind. Each variant answers two
// questions for a given center: the bounding region, and whether a probe pixel
// belongs to the footprint.
package shape

import (
	"fmt"

	"ShapePong/geometry"

	"github.com/pkg/errors"
)

type Kind uint8

const (
	KindRect Kind = iota
	KindRectOutline
	KindCircle
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindRectOutline:
		return "rect-outline"
	case KindCircle:
		return "circle"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Shape is shared read-only between layers.
type Shape struct {
	Kind   Kind
	Half   geometry.Vector2 // rectangles: half width and half height
	Radius int              // circles
}

func Rect(halfWidth, halfHeight int) Shape {
	return Shape{Kind: KindRect, Half: geometry.Vec(halfWidth, halfHeight)}
}

func RectOutline(halfWidth, halfHeight int) Shape {
	return Shape{Kind: KindRectOutline, Half: geometry.Vec(halfWidth, halfHeight)}
}

func Circle(radius int) Shape {
	return Shape{Kind: KindCircle, Radius: radius}
}

// Validate rejects negative extents and unknown kinds.
func (s Shape) Validate() error {
	switch s.Kind {
	case KindRect, KindRectOutline:
		if s.Half.X < 0 || s.Half.Y < 0 {
			return errors.Errorf("%s: negative half size %v", s.Kind, s.Half)
		}
	case KindCircle:
		if s.Radius < 0 {
			return errors.Errorf("%s: negative radius %d", s.Kind, s.Radius)
		}
	default:
		return errors.Errorf("unknown shape %s", s.Kind)
	}
	return nil
}

// Bounds returns the box covering the shape centered at center.
// An unknown kind yields an invalid (empty) region.
func (s Shape) Bounds(center geometry.Vector2) geometry.Region {
	var half geometry.Vector2
	switch s.Kind {
	case KindRect, KindRectOutline:
		half = s.Half
	case KindCircle:
		half = geometry.Vec(s.Radius, s.Radius)
	default:
		return geometry.Region{TopLeft: center, BottomRight: center.Sub(geometry.Vec(1, 1))}
	}
	return geometry.Region{TopLeft: center.Sub(half), BottomRight: center.Add(half)}
}

// Check reports whether p is painted by the shape centered at center.
func (s Shape) Check(center, p geometry.Vector2) bool {
	switch s.Kind {
	case KindRect:
		return s.Bounds(center).Contains(p)
	case KindRectOutline:
		outer := s.Bounds(center)
		return outer.Contains(p) && !outer.Inset(1, 1).Contains(p)
	case KindCircle:
		d := p.Sub(center)
		return d.X*d.X+d.Y*d.Y <= s.Radius*s.Radius
	}
	return false
}
