// Package geometry provides pure rectangle and point math for canvas
// layout: bounding boxes, overlap and containment tests, and the
// clamping rules that keep components inside the canvas boundaries.
package geometry

import "math"

// Point is a position on the canvas.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Equal returns true if two points are equal.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Add returns the point translated by delta.
func (p Point) Add(delta Point) Point {
	return Point{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Sub returns the difference p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is an axis-aligned rectangle described by its edges.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width returns the rectangle width.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the rectangle height.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Bounds is a boundary rectangle expressed as min/max coordinates.
type Bounds struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

// Limits constrains a size during clamping. Zero-value maxima mean
// unbounded; zero-value minima fall back to the global floor of 1.
type Limits struct {
	MinWidth  float64
	MinHeight float64
	MaxWidth  float64
	MaxHeight float64
}

// BoundingBox returns the rectangle occupied by a box at pos with the
// given size.
func BoundingBox(pos Point, size Size) Rect {
	return Rect{
		Left:   pos.X,
		Top:    pos.Y,
		Right:  pos.X + size.Width,
		Bottom: pos.Y + size.Height,
	}
}

// Overlaps reports whether two rectangles intersect. Rectangles that
// merely touch along an edge or corner do not overlap.
func Overlaps(a, b Rect) bool {
	return a.Left < b.Right && a.Right > b.Left &&
		a.Top < b.Bottom && a.Bottom > b.Top
}

// PointInside reports whether p lies inside r. Edges are inclusive.
func PointInside(p Point, r Rect) bool {
	return p.X >= r.Left && p.X <= r.Right &&
		p.Y >= r.Top && p.Y <= r.Bottom
}

// ClampPosition returns the nearest position to pos at which a box of
// the given size fits entirely inside bounds. When the box is larger
// than the boundary on an axis, the position falls back to the
// boundary minimum on that axis.
func ClampPosition(pos Point, size Size, bounds Bounds) Point {
	maxX := bounds.MaxX - size.Width
	if maxX < bounds.MinX {
		maxX = bounds.MinX
	}
	maxY := bounds.MaxY - size.Height
	if maxY < bounds.MinY {
		maxY = bounds.MinY
	}
	return Point{
		X: clamp(pos.X, bounds.MinX, maxX),
		Y: clamp(pos.Y, bounds.MinY, maxY),
	}
}

// ClampDimensions returns size clamped to limits. Absent minima default
// to 1, absent maxima are unbounded.
func ClampDimensions(size Size, limits Limits) Size {
	minW := limits.MinWidth
	if minW <= 0 {
		minW = 1
	}
	minH := limits.MinHeight
	if minH <= 0 {
		minH = 1
	}

	// A max below the min cannot be honored; the min wins so the
	// result never drops below the global floor.
	maxW := limits.MaxWidth
	if maxW > 0 && maxW < minW {
		maxW = minW
	}
	maxH := limits.MaxHeight
	if maxH > 0 && maxH < minH {
		maxH = minH
	}

	w := size.Width
	if w < minW {
		w = minW
	}
	if maxW > 0 && w > maxW {
		w = maxW
	}

	h := size.Height
	if h < minH {
		h = minH
	}
	if maxH > 0 && h > maxH {
		h = maxH
	}

	return Size{Width: w, Height: h}
}

// SnapToGrid rounds each axis of pos to the nearest multiple of step.
// A step of zero or less leaves the position unchanged.
func SnapToGrid(pos Point, step float64) Point {
	if step <= 0 {
		return pos
	}
	return Point{
		X: math.Round(pos.X/step) * step,
		Y: math.Round(pos.Y/step) * step,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
