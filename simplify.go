package lineart

import (
	"iter"
	"math"
)

// DefaultTolerance is a default simplification tolerance suitable for
// physical coordinate units: a deviation of 10⁻³ cm is invisible in print.
const DefaultTolerance = 1e-3

// Simplify removes vertices whose omission changes the rendered path by no
// more than tolerance. The result is a subsequence of the input and always
// retains the first and last vertex. Applying Simplify to its own output is
// the identity.
//
// The algorithm walks the polyline with an anchor vertex and accumulates, in
// polar coordinates around the anchor, the angular wedge within which the
// next anchor may lie without any skipped vertex deviating by more than the
// tolerance at its radius. A vertex whose radius decreases (the path turns
// back) or that falls outside the wedge ends the run and becomes the next
// anchor. Inputs with fewer than 3 vertices pass through unchanged.
//
// The returned sequence is finite and single-use.
func Simplify(line Polyline, tolerance float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if len(line) < 3 {
			for _, pt := range line {
				if !yield(pt) {
					return
				}
			}
			return
		}

		i := 0
		var upper, lower float64
		var hasUpper, hasLower bool

		// The wedge only constrains once both edges are known.
		included := func(angle float64) bool {
			return !hasUpper || !hasLower ||
				mod2pi(angle-lower) <= mod2pi(upper-lower)
		}

		for {
			origin := line[i]
			if !yield(origin) {
				return
			}

			former := 0.0
			hasUpper, hasLower = false, false

			for {
				v := line[i+1].Sub(origin)
				r := v.Hypot()
				phi := v.Angle()

				if r < former || !included(phi) {
					break
				}

				i++

				if i == len(line)-1 {
					yield(line[i])
					return
				}

				former = r

				if r > tolerance {
					delta := math.Asin(tolerance / r)

					if included(phi + delta) {
						upper = phi + delta
						hasUpper = true
					}
					if included(phi - delta) {
						lower = phi - delta
						hasLower = true
					}
				}
			}
		}
	}
}
