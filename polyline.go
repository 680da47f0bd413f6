package lineart

// Polyline is an ordered sequence of vertices connected by straight
// segments. Order defines the path direction. Duplicate vertices are allowed;
// the zero-length segments they form are degenerate but harmless.
type Polyline []Point

// Length returns the total arc length of the polyline.
func (p Polyline) Length() float64 {
	var total float64
	for i := 1; i < len(p); i++ {
		total += p[i].Distance(p[i-1])
	}
	return total
}

// cumdist returns the cumulative arc length at every vertex. The first entry
// is 0 and the last is the total length.
func (p Polyline) cumdist() []float64 {
	dist := make([]float64, len(p))
	for i := 1; i < len(p); i++ {
		dist[i] = dist[i-1] + p[i].Distance(p[i-1])
	}
	return dist
}

// deltas returns the displacement of every segment.
func (p Polyline) deltas() []Vec2 {
	if len(p) == 0 {
		return nil
	}
	d := make([]Vec2, len(p)-1)
	for i := range d {
		d[i] = p[i+1].Sub(p[i])
	}
	return d
}
