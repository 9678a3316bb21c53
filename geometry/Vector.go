package geometry

import "math"

// Coordinates are kept inside the signed 16-bit range of the display controller.
const (
	MinCoord = math.MinInt16
	MaxCoord = math.MaxInt16
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Axes lists the axes in the order collisions are resolved.
var Axes = [...]Axis{AxisX, AxisY}

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Vector2 is an integer point or displacement on the pixel grid.
type Vector2 struct {
	X, Y int
}

func Vec(x, y int) Vector2 {
	return Vector2{X: x, Y: y}
}

func (a Vector2) Add(b Vector2) Vector2 {
	a.X += b.X
	a.Y += b.Y
	return a
}

func (a Vector2) Sub(b Vector2) Vector2 {
	a.X -= b.X
	a.Y -= b.Y
	return a
}

func (a Vector2) Scale(k int) Vector2 {
	a.X *= k
	a.Y *= k
	return a
}

// Axis returns the component of a on the given axis.
func (a Vector2) Axis(axis Axis) int {
	if axis == AxisX {
		return a.X
	}
	return a.Y
}

// WithAxis returns a copy of a with the component on axis replaced by v.
func (a Vector2) WithAxis(axis Axis, v int) Vector2 {
	if axis == AxisX {
		a.X = v
	} else {
		a.Y = v
	}
	return a
}

// Clamped pins both components into [MinCoord, MaxCoord].
func (a Vector2) Clamped() Vector2 {
	return Vector2{
		X: Clamp(a.X, MinCoord, MaxCoord),
		Y: Clamp(a.Y, MinCoord, MaxCoord),
	}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
