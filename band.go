package lineart

import "math"

// BandStyle describes how a centerline is expanded into the closed outline of
// a band of varying thickness.
type BandStyle struct {
	// Width is the overall scale factor applied to weights and shifts.
	Width float64
	// Weights is the per-vertex thickness of the band.
	Weights Values
	// Shifts is the per-vertex lateral displacement of the band's
	// centerline from the polyline, in the weight direction. Shifts allow
	// stacking several bands side by side along one polyline.
	Shifts Values

	nib    float64
	hasNib bool
}

// WithNib returns a copy of the style with the pen held at the fixed angle,
// in radians, instead of following the direction of the polyline.
func (s BandStyle) WithNib(angle float64) BandStyle {
	s.nib, s.hasNib = angle, true
	return s
}

// Fatband expands a centerline into the closed outline of a band whose local
// thickness is Width times the vertex's weight.
//
// At each interior vertex the pen direction is the angular bisector of the
// two adjacent segment directions; if the two directions differ by more than
// π, the bisector is flipped so that it points to the correct side. End
// vertices use the direction of their single segment. The vertex's outline
// points are the vertex displaced along the pen direction by
// Width·(shift ± weight/2).
//
// For an input of n ≥ 2 vertices the result has exactly 2n points: the
// forward side in input order followed by the backward side in reverse order,
// forming a closed ring. Inputs with fewer than 2 points are returned
// unchanged.
//
// See [MiterButt] for the equivalent routine with miter line joins.
func Fatband(line Polyline, style BandStyle) Polyline {
	n := len(line)
	if n < 2 {
		return line
	}
	weights := style.Weights.resolve(n)
	shifts := style.Shifts.resolve(n)

	// Pen angle of every segment. Coincident vertices yield a zero-length
	// segment whose angle defaults to atan2(0, 0) = 0; no NaN can arise.
	alpha := make([]float64, n-1)
	for i := range alpha {
		if style.hasNib {
			alpha[i] = style.nib
		} else {
			alpha[i] = mod2pi(math.Pi/2 + line[i+1].Sub(line[i]).Angle())
		}
	}

	// Pen angle of every vertex: ends take their single segment's angle,
	// interior vertices the corrected bisector.
	phi := make([]float64, n)
	phi[0] = alpha[0]
	for i := 0; i < n-2; i++ {
		phi[i+1] = (alpha[i] + alpha[i+1]) / 2
		if math.Abs(alpha[i+1]-alpha[i]) > math.Pi {
			phi[i+1] += math.Pi
		}
	}
	phi[n-1] = alpha[n-2]

	out := make(Polyline, 0, 2*n)
	for i := 0; i < n; i++ {
		d := style.Width * (shifts[i] + weights[i]/2)
		out = append(out, line[i].Translate(VecFromAngle(phi[i]).Mul(d)))
	}
	for i := n - 1; i >= 0; i-- {
		d := style.Width * (shifts[i] - weights[i]/2)
		out = append(out, line[i].Translate(VecFromAngle(phi[i]).Mul(d)))
	}
	return out
}

// MiterButt expands a centerline into the closed outline of a band whose
// local thickness is Width times the vertex's weight, like [Fatband], but
// joins segments with miter joints.
//
// Each segment contributes two offset lines at ±Width/2 along its normal.
// Consecutive offset lines are joined at their exact crossing point; where
// they are parallel, the join falls back to the raw start point of the
// second offset segment instead of producing a miter spike. The first and
// last outline points are the unmitered segment endpoints. The two joined
// chains are then blended per vertex with affine coefficients derived from
// the shift and weight, realizing the asymmetric, weight-varying overall
// thickness.
//
// The output contract matches [Fatband]: exactly 2n points forming a closed
// ring for n ≥ 2 input vertices, shorter inputs returned unchanged.
func MiterButt(line Polyline, style BandStyle) Polyline {
	n := len(line)
	if n < 2 {
		return line
	}
	weights := style.Weights.resolve(n)
	shifts := style.Shifts.resolve(n)

	upper := make([]Line, n-1)
	lower := make([]Line, n-1)
	for i := range upper {
		var alpha float64
		if style.hasNib {
			alpha = style.nib
		} else {
			alpha = line[i+1].Sub(line[i]).Angle() + math.Pi/2
		}
		off := VecFromAngle(alpha).Mul(style.Width / 2)
		upper[i] = Line{line[i].Translate(off), line[i+1].Translate(off)}
		lower[i] = Line{line[i].Translate(off.Negate()), line[i+1].Translate(off.Negate())}
	}

	up := joinChain(upper)
	lo := joinChain(lower)

	out := make(Polyline, 2*n)
	for i := 0; i < n; i++ {
		a1 := 0.5 + shifts[i] - weights[i]/2
		a2 := 0.5 - shifts[i] + weights[i]/2
		b1 := 0.5 + shifts[i] + weights[i]/2
		b2 := 0.5 - shifts[i] - weights[i]/2
		out[i] = Point{
			X: a1*up[i].X + a2*lo[i].X,
			Y: a1*up[i].Y + a2*lo[i].Y,
		}
		out[2*n-1-i] = Point{
			X: b1*up[i].X + b2*lo[i].X,
			Y: b1*up[i].Y + b2*lo[i].Y,
		}
	}
	return out
}

// joinChain connects a chain of offset segments into a single polyline,
// joining consecutive segments at the crossing point of their infinite
// extensions. Parallel neighbors fall back to the second segment's start
// point.
func joinChain(segs []Line) []Point {
	pts := make([]Point, 0, len(segs)+1)
	pts = append(pts, segs[0].P0)
	for i := 1; i < len(segs); i++ {
		if pt, ok := segs[i-1].CrossingPoint(segs[i]); ok {
			pts = append(pts, pt)
		} else {
			pts = append(pts, segs[i].P0)
		}
	}
	pts = append(pts, segs[len(segs)-1].P1)
	return pts
}
