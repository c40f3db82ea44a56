// Package core provides fundamental types and utilities for the game platform.
// It does not depend on Bubble Tea, which keeps game logic pure and testable.
package core

// Rect represents an axis-aligned box on the character grid.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// CenteredRect returns a w×h rectangle horizontally centered in a screen of
// the given width, with its top edge at y.
func CenteredRect(screenW, y, w, h int) Rect {
	return Rect{X: (screenW - w) / 2, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// PercentOf maps a percentage in [0,100] onto a cell index in [0, size).
func PercentOf(percent float64, size int) int {
	if size <= 0 {
		return 0
	}
	return Clamp(int(percent/100*float64(size)), 0, size-1)
}
