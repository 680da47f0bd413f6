package lineart

import "iter"

// SplitAtJumps interprets line segments longer than distance as
// discontinuities and splits the polyline there, omitting the jump segments.
//
// The result is a partition of the input: every vertex appears in exactly one
// output segment, in input order, and within each segment consecutive
// vertices are at most distance apart. A distance ≤ 0 disables splitting and
// yields the whole polyline as one segment.
//
// The returned sequence is finite and single-use.
func SplitAtJumps(line Polyline, distance float64) iter.Seq[Polyline] {
	return func(yield func(Polyline) bool) {
		if distance <= 0 {
			if len(line) > 0 {
				yield(line)
			}
			return
		}
		var group Polyline
		for i, pt := range line {
			if len(group) > 0 && pt.DistanceSquared(line[i-1]) > distance*distance {
				if !yield(group) {
					return
				}
				group = Polyline{pt}
				continue
			}
			group = append(group, pt)
		}
		if len(group) > 0 {
			yield(group)
		}
	}
}
