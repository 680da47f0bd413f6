package lineart

import "math"

// Rect is an axis-aligned clip rectangle. A bound set to ±Inf leaves the
// corresponding side unconstrained; see [Unbounded].
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Unbounded returns the rectangle that constrains nothing. Clipping against
// it is the identity.
func Unbounded() Rect {
	return Rect{
		X0: math.Inf(-1),
		Y0: math.Inf(-1),
		X1: math.Inf(1),
		Y1: math.Inf(1),
	}
}

// Abs returns a new rectangle with the same extents as r, but ensuring that
// width and height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) MinX() float64 { return min(r.X0, r.X1) }
func (r Rect) MaxX() float64 { return max(r.X0, r.X1) }
func (r Rect) MinY() float64 { return min(r.Y0, r.Y1) }
func (r Rect) MaxY() float64 { return max(r.Y0, r.Y1) }

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Contains reports whether the rectangle contains pt. All four edges are
// inclusive, matching the clipper's notion of "inside": a point that clipping
// would place exactly on an edge is contained.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.MinX() &&
		pt.X <= r.MaxX() &&
		pt.Y >= r.MinY() &&
		pt.Y <= r.MaxY()
}
