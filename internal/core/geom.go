// Package core provides fundamental types and utilities for the game.
// It contains no framework dependencies (especially no Bubble Tea or Ebiten)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or offset in continuous world coordinates.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// RectAround creates a square box of the given half-extent centred on c.
func RectAround(c Vec2, half float64) Rect {
	return Rect{X: c.X - half, Y: c.Y - half, W: 2 * half, H: 2 * half}
}

// RectCentered creates a w×h rectangle centred on c.
func RectCentered(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps or touches another.
// Edges are inclusive: two boxes sharing an edge with zero gap intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point p is inside this rectangle.
// The right and bottom edges are exclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
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
