package lineart

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineCrossingPoint(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	pt, ok := hLine.CrossingPoint(vLine)
	if !ok {
		t.Fatal("expected a crossing point")
	}
	diff(t, Pt(10.0, 0.0), pt, cmpopts.EquateApprox(0, 1e-9))

	// The crossing point of the infinite extensions is reported even if the
	// segments themselves do not touch.
	vLine = Line{Pt(10.0, 10.0), Pt(10.0, 20.0)}
	pt, ok = hLine.CrossingPoint(vLine)
	if !ok {
		t.Fatal("expected a crossing point")
	}
	diff(t, Pt(10.0, 0.0), pt, cmpopts.EquateApprox(0, 1e-9))

	par := Line{Pt(0.0, 1.0), Pt(100.0, 1.0)}
	if pt, ok := hLine.CrossingPoint(par); ok {
		t.Errorf("expected no crossing point for parallel lines, got %v", pt)
	}
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(2.0, 0.0)}

	distSq, tt := l.Nearest(Pt(1.0, 1.0))
	if distSq != 1.0 || tt != 0.5 {
		t.Errorf("got (%g, %g), want (1, 0.5)", distSq, tt)
	}

	distSq, tt = l.Nearest(Pt(-1.0, 0.0))
	if distSq != 1.0 || tt != 0.0 {
		t.Errorf("got (%g, %g), want (1, 0)", distSq, tt)
	}

	distSq, tt = l.Nearest(Pt(3.0, 0.0))
	if distSq != 1.0 || tt != 1.0 {
		t.Errorf("got (%g, %g), want (1, 1)", distSq, tt)
	}
}

func TestLineLength(t *testing.T) {
	l := Line{Pt(0.0, 0.0), Pt(1.0, 1.0)}
	if d := math.Abs(l.Length() - math.Sqrt2); d > 1e-12 {
		t.Errorf("length off by %g", d)
	}
}
