package lineart_test

import (
	"fmt"
	"slices"

	"github.com/plotpath/lineart"
)

func ExampleSimplify() {
	line := lineart.Polyline{
		lineart.Pt(0, 0),
		lineart.Pt(1, 0),
		lineart.Pt(2, 0),
		lineart.Pt(2, 1),
	}
	for pt := range lineart.Simplify(line, lineart.DefaultTolerance) {
		fmt.Println(pt)
	}
	// Output:
	// (0, 0)
	// (2, 0)
	// (2, 1)
}

func ExampleClip() {
	line := lineart.Polyline{lineart.Pt(-1, 0), lineart.Pt(1, 0)}
	r := lineart.Rect{X0: 0, Y0: -1, X1: 2, Y1: 1}
	for seg := range lineart.Clip(line, r, false) {
		fmt.Println(seg)
	}
	// Output:
	// [(0, 0) (1, 0)]
}

func ExampleSplitAtJumps() {
	line := lineart.Polyline{lineart.Pt(0, 0), lineart.Pt(0, 1), lineart.Pt(0, 3)}
	for seg := range lineart.SplitAtJumps(line, 1.5) {
		fmt.Println(seg)
	}
	// Output:
	// [(0, 0) (0, 1)]
	// [(0, 3)]
}

func ExampleChunks() {
	points := lineart.Polyline{
		lineart.Pt(0, 0),
		lineart.Pt(1, 0),
		lineart.Pt(2, 0),
		lineart.Pt(3, 0),
		lineart.Pt(4, 0),
		lineart.Pt(5, 0),
	}
	for group := range lineart.Chunks(slices.Values(points), 4) {
		fmt.Println(group)
	}
	// Output:
	// [(0, 0) (1, 0) (2, 0) (3, 0)]
	// [(4, 0) (5, 0)]
}
