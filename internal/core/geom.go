// Package core provides fundamental types and utilities for the dodge game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// DefaultHitMargin is the fraction of a box's width/height trimmed from every
// side before collision testing. 0.15 leaves the central 70% as the hitbox.
const DefaultHitMargin = 0.15

// Box is an axis-aligned bounding box in playfield units.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Inset shrinks the box by margin*W on the left and right and margin*H on the
// top and bottom.
func (b Box) Inset(margin float64) Box {
	return Box{
		X: b.X + b.W*margin,
		Y: b.Y + b.H*margin,
		W: b.W * (1 - margin*2),
		H: b.H * (1 - margin*2),
	}
}

// Touches reports whether two boxes overlap or share an edge.
// Comparisons are non-strict, so edge contact counts as overlap.
func (b Box) Touches(other Box) bool {
	return !(b.Right() < other.X ||
		b.X > other.Right() ||
		b.Bottom() < other.Y ||
		b.Y > other.Bottom())
}

// Overlaps tests the two boxes after trimming DefaultHitMargin from each.
func (b Box) Overlaps(other Box) bool {
	return Overlaps(b, other, DefaultHitMargin)
}

// Overlaps shrinks both boxes by margin and then runs the separating-axis
// test. Raw sprite bounds are larger than the visible silhouette, so the
// trimmed boxes decide whether a hit happened.
func Overlaps(a, b Box, margin float64) bool {
	return a.Inset(margin).Touches(b.Inset(margin))
}

// Rect represents an integer rectangle in screen cells.
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

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
