package lineart

import (
	"iter"
	"math"
	"slices"
)

// Clip cuts off the parts of a polyline beyond the rectangle and returns the
// remaining segments, each fully inside the rectangle. Sides of the
// rectangle set to ±Inf constrain nothing.
//
// Wherever the polyline crosses a bound between two consecutive vertices, an
// exactly interpolated boundary point is inserted; its clipped coordinate
// equals the bound. No point outside the rectangle is ever produced.
//
// With join set, the surviving pieces are concatenated into a single ring
// instead of being kept separate, and the crossing between the last and first
// vertex is considered as well. This is the right mode for filled shapes, so
// that a polygon clipped to a corner still closes properly; open strokes want
// join unset.
//
// The returned sequence is finite and single-use. See [ClipPoints] for
// clipping isolated marks rather than connected lines.
func Clip(line Polyline, r Rect, join bool) iter.Seq[Polyline] {
	return func(yield func(Polyline) bool) {
		// The rectangle is axis-aligned, so clipping is separable: clip
		// against the two y bounds, then against the two x bounds by
		// reusing the same 1D routine on swapped coordinates.
		for g := range clipRange(line, r.MinY(), r.MaxY(), join) {
			for h := range clipRange(swapXY(g), r.MinX(), r.MaxX(), join) {
				if !yield(swapXY(h)) {
					return
				}
			}
		}
	}
}

// ClipPoints filters isolated points against the rectangle. It implements
// the only-marks mode of clipping, which has no segments to speak of.
func ClipPoints(points []Point, r Rect) []Point {
	var out []Point
	for _, pt := range points {
		if r.Contains(pt) {
			out = append(out, pt)
		}
	}
	return out
}

// clipRange clips a polyline against lo ≤ y ≤ hi. Infinite bounds constrain
// nothing. See [Clip] for the join semantics.
func clipRange(line Polyline, lo, hi float64, join bool) iter.Seq[Polyline] {
	return func(yield func(Polyline) bool) {
		pts := slices.Clone(line)

		for _, bound := range [2]float64{lo, hi} {
			if math.IsInf(bound, 0) {
				continue
			}
			n := 1
			if join {
				// Treat the polyline as circular: the segment from the
				// last point back to the first may cross the bound too.
				n = 0
			}
			for n < len(pts) {
				prev := pts[(n+len(pts)-1)%len(pts)]
				cur := pts[n]
				if prev.Y < bound && bound < cur.Y || prev.Y > bound && bound > cur.Y {
					// Exact linear interpolation; the inserted point lies
					// exactly on the bound.
					x := (prev.X*(cur.Y-bound) + cur.X*(bound-prev.Y)) / (cur.Y - prev.Y)
					pts = slices.Insert(pts, n, Point{X: x, Y: bound})
				}
				n++
			}
		}

		for island := range Islands(len(pts), func(n int) bool {
			return pts[n].Y >= lo && pts[n].Y <= hi
		}, join) {
			seg := make(Polyline, len(island))
			for k, i := range island {
				seg[k] = pts[i]
			}
			if !yield(seg) {
				return
			}
		}
	}
}

// swapXY mirrors a polyline across the diagonal, turning x clipping into y
// clipping.
func swapXY(line Polyline) Polyline {
	out := make(Polyline, len(line))
	for i, pt := range line {
		out[i] = Point{X: pt.Y, Y: pt.X}
	}
	return out
}
