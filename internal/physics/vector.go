package physics

import (
	"fmt"
	"math"
)

// Vector2d is an immutable 2D vector. Every operation returns a new value.
type Vector2d struct {
	X, Y float64
}

// Vec is shorthand for Vector2d{X: x, Y: y}.
func Vec(x, y float64) Vector2d {
	return Vector2d{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2d) Add(o Vector2d) Vector2d {
	return Vector2d{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o, i.e. the vector pointing from o to v.
func (v Vector2d) Sub(o Vector2d) Vector2d {
	return Vector2d{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vector2d) Scale(s float64) Vector2d {
	return Vector2d{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean magnitude.
func (v Vector2d) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns the unit vector with the same direction.
// The zero vector normalizes to the zero vector.
func (v Vector2d) Normalize() Vector2d {
	if v.X == 0 && v.Y == 0 {
		return Vector2d{}
	}
	l := v.Length()
	return Vector2d{X: v.X / l, Y: v.Y / l}
}

func (v Vector2d) String() string {
	return fmt.Sprintf("{x=%g, y=%g}", v.X, v.Y)
}
