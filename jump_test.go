package lineart

import (
	"slices"
	"testing"
)

func TestSplitAtJumps(t *testing.T) {
	line := Polyline{Pt(0, 0), Pt(0, 1), Pt(0, 3)}
	got := slices.Collect(SplitAtJumps(line, 1.5))
	diff(t, []Polyline{{Pt(0, 0), Pt(0, 1)}, {Pt(0, 3)}}, got)
}

func TestSplitAtJumpsDisabled(t *testing.T) {
	line := Polyline{Pt(0, 0), Pt(0, 100), Pt(0, 300)}
	got := slices.Collect(SplitAtJumps(line, 0))
	diff(t, []Polyline{line}, got)
}

func TestSplitAtJumpsPartition(t *testing.T) {
	line := Polyline{Pt(0, 0), Pt(1, 0), Pt(5, 0), Pt(6, 0), Pt(6, 1), Pt(0, 1)}
	var joined Polyline
	for _, seg := range slices.Collect(SplitAtJumps(line, 2)) {
		joined = append(joined, seg...)
	}
	// No points dropped, added, or reordered.
	diff(t, line, joined)
}

func TestSplitAtJumpsDegenerate(t *testing.T) {
	if got := slices.Collect(SplitAtJumps(nil, 1)); len(got) != 0 {
		t.Errorf("expected no segments for empty input, got %v", got)
	}
	got := slices.Collect(SplitAtJumps(Polyline{Pt(1, 2)}, 1))
	diff(t, []Polyline{{Pt(1, 2)}}, got)
}
