package lineart

import "iter"

// DefaultChunkSize is the default batch size of [Chunks], matching the usual
// number of coordinate pairs per emitted output line.
const DefaultChunkSize = 4

// Chunks groups a sequence into batches of the given size. The last batch
// may be shorter. A size ≤ 0 selects [DefaultChunkSize].
func Chunks[T any](seq iter.Seq[T], size int) iter.Seq[[]T] {
	if size <= 0 {
		size = DefaultChunkSize
	}
	return func(yield func([]T) bool) {
		var group []T
		for v := range seq {
			group = append(group, v)
			if len(group) == size {
				if !yield(group) {
					return
				}
				group = nil
			}
		}
		if len(group) > 0 {
			yield(group)
		}
	}
}

// Islands yields the maximal contiguous runs of indices in [0, n) that
// satisfy pred. With join set, all satisfying indices are concatenated into
// a single run, skipping the gaps.
func Islands(n int, pred func(int) bool, join bool) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		var island []int
		for i := 0; i < n; i++ {
			if pred(i) {
				island = append(island, i)
			} else if len(island) > 0 && !join {
				if !yield(island) {
					return
				}
				island = nil
			}
		}
		if len(island) > 0 {
			yield(island)
		}
	}
}
