package geometry

import "fmt"

// Region is an inclusive axis-aligned box.
type Region struct {
	TopLeft     Vector2
	BottomRight Vector2
}

func Rect(x0, y0, x1, y1 int) Region {
	return Region{TopLeft: Vec(x0, y0), BottomRight: Vec(x1, y1)}
}

// Valid reports whether the corners are ordered on both axes.
func (r Region) Valid() bool {
	return r.TopLeft.X <= r.BottomRight.X && r.TopLeft.Y <= r.BottomRight.Y
}

func (r Region) Width() int {
	return r.BottomRight.X - r.TopLeft.X + 1
}

func (r Region) Height() int {
	return r.BottomRight.Y - r.TopLeft.Y + 1
}

// Area is the number of pixels covered, zero for an invalid region.
func (r Region) Area() int {
	if !r.Valid() {
		return 0
	}
	return r.Width() * r.Height()
}

func (r Region) Center() Vector2 {
	return Vector2{
		X: (r.TopLeft.X + r.BottomRight.X) / 2,
		Y: (r.TopLeft.Y + r.BottomRight.Y) / 2,
	}
}

func (r Region) Contains(p Vector2) bool {
	return p.X >= r.TopLeft.X && p.X <= r.BottomRight.X &&
		p.Y >= r.TopLeft.Y && p.Y <= r.BottomRight.Y
}

// ContainsSpan reports whether [lo, hi] lies inside r on the given axis.
func (r Region) ContainsSpan(axis Axis, lo, hi int) bool {
	return lo >= r.TopLeft.Axis(axis) && hi <= r.BottomRight.Axis(axis)
}

// Exceeds reports whether o sticks out of r on the given axis.
func (r Region) Exceeds(axis Axis, o Region) bool {
	return o.TopLeft.Axis(axis) < r.TopLeft.Axis(axis) ||
		o.BottomRight.Axis(axis) > r.BottomRight.Axis(axis)
}

// Union is the smallest region covering both r and o.
func (r Region) Union(o Region) Region {
	return Region{
		TopLeft: Vector2{
			X: min(r.TopLeft.X, o.TopLeft.X),
			Y: min(r.TopLeft.Y, o.TopLeft.Y),
		},
		BottomRight: Vector2{
			X: max(r.BottomRight.X, o.BottomRight.X),
			Y: max(r.BottomRight.Y, o.BottomRight.Y),
		},
	}
}

// Intersect returns the overlap of r and o and whether it is non-empty.
func (r Region) Intersect(o Region) (Region, bool) {
	out := Region{
		TopLeft: Vector2{
			X: max(r.TopLeft.X, o.TopLeft.X),
			Y: max(r.TopLeft.Y, o.TopLeft.Y),
		},
		BottomRight: Vector2{
			X: min(r.BottomRight.X, o.BottomRight.X),
			Y: min(r.BottomRight.Y, o.BottomRight.Y),
		},
	}
	return out, out.Valid()
}

// Inset shrinks r by dx on both x edges and dy on both y edges.
func (r Region) Inset(dx, dy int) Region {
	r.TopLeft.X += dx
	r.TopLeft.Y += dy
	r.BottomRight.X -= dx
	r.BottomRight.Y -= dy
	return r
}

func (r Region) String() string {
	return fmt.Sprintf("[(%d,%d)-(%d,%d)]", r.TopLeft.X, r.TopLeft.Y, r.BottomRight.X, r.BottomRight.Y)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
