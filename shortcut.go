package lineart

import "slices"

// ShortcutOptions bounds the loops that [Shortcut] is allowed to remove.
type ShortcutOptions struct {
	// MaxLength is the maximum arc length of a loop to cut off. A value
	// ≤ 0 means no absolute limit.
	MaxLength float64
	// MaxLengthRel is the maximum arc length of a loop to cut off,
	// relative to the total length of the polyline. A value ≤ 0 means no
	// relative limit.
	MaxLengthRel float64
}

var DefaultShortcutOptions = ShortcutOptions{MaxLength: 0, MaxLengthRel: 1}

// Shortcut cuts off loops at self-intersection points: wherever a segment
// crosses a later segment within the allowed loop length, the vertices
// strictly between the crossing entry and exit are replaced by the single
// crossing point.
//
// The search window per segment is bounded by the allowed loop length in
// cumulative arc length, which keeps the quadratic pair scan capped. The
// output never has more vertices than the input and never a greater total
// length. Inputs with fewer than 4 vertices cannot self-intersect and are
// returned unchanged.
//
// A tangential intersection, where the crossing parameter lies exactly on a
// segment boundary on both sides, is preserved rather than removed if the
// 4-point path around it does not itself self-intersect. This is a heuristic
// guard against merging two genuinely separate loops that merely touch; it
// is best-effort, not a hard guarantee. Removed loops and preserved touching
// points are reported on the package logger at debug level (see [SetLogger]).
func Shortcut(line Polyline, opts ShortcutOptions) Polyline {
	n := len(line)
	if n < 4 {
		return line
	}

	d := line.deltas()
	dist := line.cumdist()
	total := dist[n-1]

	length := opts.MaxLength
	if length <= 0 {
		length = total
	}
	if opts.MaxLengthRel > 0 {
		length = min(length, opts.MaxLengthRel*total)
	}

	type cut struct {
		i, j int
		pt   Point
	}
	var cuts []cut

	for i := 0; i < n-1; i++ {
		for j := i + 2; j < n-1; j++ {
			if dist[j] > dist[i]+length {
				break
			}

			det := d[i].Y*d[j].X - d[i].X*d[j].Y
			if det == 0 {
				continue
			}

			w := line[j].Sub(line[i])

			u := (d[j].X*w.Y - d[j].Y*w.X) / det
			if !(0 < u && u <= 1) {
				continue
			}
			v := (d[i].X*w.Y - d[i].Y*w.X) / det
			if !(0 <= v && v < 1) {
				continue
			}

			if u == 1 && v == 0 && n > 4 {
				// The crossing sits exactly on the shared vertex. Check
				// the reduced path that skips it; if that does not
				// self-intersect, the two loops only touch.
				reduced := Polyline{line[i], line[i+2], line[j-1], line[j+1]}
				if len(Shortcut(reduced, DefaultShortcutOptions)) == 4 {
					logger().Debug("preserving non-crossing intersection",
						"x", line[j].X, "y", line[j].Y)
					continue
				}
			}

			cuts = append(cuts, cut{i, j, line[i].Translate(d[i].Mul(u))})

			looplen := (dist[j+1]*v + dist[j]*(1-v)) -
				(dist[i+1]*u + dist[i]*(1-u))
			logger().Debug("removing loop",
				"length", looplen, "fraction", looplen/total)

			i = j
			break
		}
	}

	out := slices.Clone(line)
	// Apply edits back to front so earlier indices stay valid.
	for k := len(cuts) - 1; k >= 0; k-- {
		c := cuts[k]
		out = slices.Replace(out, c.i+1, c.j+1, c.pt)
	}
	return out
}
