// Package core provides geometry and screen primitives shared by the
// simulation and the terminal host. It has no dependency on Bubble Tea so
// game logic stays pure and testable.
package core

import "math"

// Vec2 is a point or direction in world space.
type Vec2 struct {
	X, Y float64
}

// V builds a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v.
// A zero-length vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	if v.IsZero() {
		return v
	}
	l := v.Len()
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Body is an axis-aligned rectangle in world space. Pos is the bottom-left
// corner, Y grows upward.
type Body struct {
	Pos  Vec2
	Size Vec2
}

// Right returns the x-coordinate of the right edge.
func (b Body) Right() float64 {
	return b.Pos.X + b.Size.X
}

// Top returns the y-coordinate of the top edge.
func (b Body) Top() float64 {
	return b.Pos.Y + b.Size.Y
}

// Center returns the center point.
func (b Body) Center() Vec2 {
	return Vec2{X: b.Pos.X + b.Size.X/2, Y: b.Pos.Y + b.Size.Y/2}
}

// Overlaps reports whether two bodies overlap. Touching edges do not count:
// each min must be strictly less than the other's max on both axes.
func (b Body) Overlaps(o Body) bool {
	return b.Pos.X < o.Right() &&
		o.Pos.X < b.Right() &&
		b.Pos.Y < o.Top() &&
		o.Pos.Y < b.Top()
}

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
