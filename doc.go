// Package lineart turns ordered point data into a minimal, visually faithful
// and correctly bounded set of polylines and polygons, ready for a
// drawing-command emitter. It is the geometry engine of a line plot: the
// input is a vertex chain in an already-scaled Cartesian coordinate space
// (centimeters or equivalent), optionally carrying per-vertex thickness and
// lateral offset; the output is sequences of 2D points grouped into
// segments.
//
// # Pipeline
//
// The engine processes one polyline at a time. Every stage is optional,
// stateless across lines and a pure transformation:
//
//   - [SplitAtJumps] splits a vertex chain into segments at discontinuities.
//   - [Fatband] and [MiterButt] expand a centerline with per-vertex weights
//     and shifts into a closed outline polygon, with averaged-normal or
//     mitered joins respectively.
//   - [Clip] cuts segments to an axis-aligned rectangle, optionally
//     rejoining the pieces for filled shapes; [ClipPoints] is the analogue
//     for isolated marks.
//   - [Simplify] drops vertices that do not visibly change the rendered
//     path.
//   - [Shortcut] removes small self-intersection loops.
//   - [Chunks] groups the final points into fixed-size batches for output
//     formatting.
//
// [Bonds] and [SelfBonds] additionally construct connecting lines between
// point sets, as used for bond drawings.
//
// # Iterators
//
// Stages that can produce their output one piece at a time return an
// iter.Seq. These sequences are finite and intended for a single traversal.
// Use [slices.Collect] to materialize them.
//
// # Degenerate inputs
//
// Inputs that are too short for a stage to act on (fewer than 2 points to
// outline, fewer than 3 to simplify, fewer than 4 to shortcut) pass through
// unchanged. Coincident consecutive vertices and parallel offset lines are
// handled by fallbacks; no NaN ever propagates into the output. The engine
// has no recoverable errors: every input satisfying the documented
// preconditions produces a well-defined result, and precondition violations
// (such as mismatched per-vertex value lengths) panic.
//
// The package logs nothing by default; see [SetLogger] to surface the loop
// shortcutter's diagnostics.
package lineart
