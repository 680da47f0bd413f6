package lineart

import "fmt"

// Values describes a per-vertex scalar quantity, such as the weights or
// lateral shifts of a band. It is either a single value broadcast to all
// vertices ([Constant]) or an explicit per-vertex slice ([PerVertex]).
//
// The zero value is Constant(0).
type Values struct {
	vs     []float64
	scalar float64
}

// Constant returns values that broadcast v to every vertex.
func Constant(v float64) Values {
	return Values{scalar: v}
}

// PerVertex returns values with one entry per vertex. The slice length must
// equal the vertex count of the polyline the values accompany; this is
// checked when the values are resolved, and a mismatch panics.
func PerVertex(vs []float64) Values {
	return Values{vs: vs}
}

// resolve returns the values as a slice of length n, materializing a
// broadcast scalar if necessary. The result must not be modified.
func (v Values) resolve(n int) []float64 {
	if v.vs == nil {
		out := make([]float64, n)
		for i := range out {
			out[i] = v.scalar
		}
		return out
	}
	if len(v.vs) != n {
		panic(fmt.Sprintf("lineart: got %d per-vertex values for %d vertices", len(v.vs), n))
	}
	return v.vs
}
