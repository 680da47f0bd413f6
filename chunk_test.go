package lineart

import (
	"slices"
	"testing"
)

func TestChunks(t *testing.T) {
	seq := slices.Values([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	got := slices.Collect(Chunks(seq, 4))
	diff(t, [][]int{{1, 2, 3, 4}, {5, 6, 7, 8}, {9}}, got)
}

func TestChunksDefaultSize(t *testing.T) {
	seq := slices.Values(make([]int, 10))
	got := slices.Collect(Chunks(seq, 0))
	if len(got) != 3 || len(got[0]) != DefaultChunkSize {
		t.Errorf("unexpected chunking %v", got)
	}
}

func TestChunksEmpty(t *testing.T) {
	if got := slices.Collect(Chunks(slices.Values[[]int](nil), 4)); len(got) != 0 {
		t.Errorf("expected no chunks, got %v", got)
	}
}

func TestIslands(t *testing.T) {
	sel := []bool{true, true, false, true, false, false, true, true, true}
	pred := func(i int) bool { return sel[i] }

	got := slices.Collect(Islands(len(sel), pred, false))
	diff(t, [][]int{{0, 1}, {3}, {6, 7, 8}}, got)

	joined := slices.Collect(Islands(len(sel), pred, true))
	diff(t, [][]int{{0, 1, 3, 6, 7, 8}}, joined)
}

func TestIslandsNone(t *testing.T) {
	got := slices.Collect(Islands(5, func(int) bool { return false }, false))
	if len(got) != 0 {
		t.Errorf("expected no islands, got %v", got)
	}
}
