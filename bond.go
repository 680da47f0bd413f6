package lineart

// BondOptions controls which point pairs [Bonds] connects and how the
// connecting lines are shortened at their ends.
type BondOptions struct {
	// Shorten1, Shorten2 cut the line back from its two endpoints by the
	// given distance along the connecting direction.
	Shorten1 float64
	Shorten2 float64
	// MinLength and MaxLength bound the point distance (exclusively) for a
	// pair to be connected.
	MinLength float64
	MaxLength float64
}

var DefaultBondOptions = BondOptions{MinLength: 0.1, MaxLength: 5}

// Bonds returns the lines connecting every point of r1 with every point of
// r2 whose distance lies strictly between MinLength and MaxLength. Use
// [SelfBonds] to connect points within a single set.
func Bonds(r1, r2 []Point, opts BondOptions) []Line {
	var bonds []Line
	for _, p1 := range r1 {
		for _, p2 := range r2 {
			if l, ok := bond(p1, p2, opts); ok {
				bonds = append(bonds, l)
			}
		}
	}
	return bonds
}

// SelfBonds returns the lines connecting every unordered pair of distinct
// points whose distance lies strictly between MinLength and MaxLength.
func SelfBonds(points []Point, opts BondOptions) []Line {
	var bonds []Line
	for i, p1 := range points {
		for _, p2 := range points[i+1:] {
			if l, ok := bond(p1, p2, opts); ok {
				bonds = append(bonds, l)
			}
		}
	}
	return bonds
}

func bond(p1, p2 Point, opts BondOptions) (Line, bool) {
	d := p1.Distance(p2)
	if d <= opts.MinLength || d >= opts.MaxLength {
		return Line{}, false
	}
	return Line{
		P0: p1.Lerp(p2, opts.Shorten1/d),
		P1: p2.Lerp(p1, opts.Shorten2/d),
	}, true
}
