package verify

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultTolerance is the absolute and relative tolerance Check falls back to.
const DefaultTolerance = 1e-6

// ErrLengthMismatch is returned when the two vectors differ in length.
var ErrLengthMismatch = errors.New("verify: distance vectors differ in length")

// Mismatch records one vertex where the vectors disagree.
type Mismatch struct {
	Vertex int
	Got    float64
	Want   float64
}

// Report summarises a comparison.
type Report struct {
	Vertices   int
	Reachable  int     // vertices finite in want
	MaxAbsDiff float64 // over vertices finite on both sides
	Mismatches []Mismatch
}

// OK reports whether no vertex disagreed.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

func (r Report) String() string {
	return fmt.Sprintf("vertices=%d reachable=%d max_abs_diff=%.3g mismatches=%d",
		r.Vertices, r.Reachable, r.MaxAbsDiff, len(r.Mismatches))
}

// Compare checks got against want. Two finite values agree when they are
// equal within tol, absolutely or relatively; +Inf agrees only with +Inf.
func Compare(got, want []float64, tol float64) (Report, error) {
	if len(got) != len(want) {
		return Report{}, fmt.Errorf("%w: got %d, want %d", ErrLengthMismatch, len(got), len(want))
	}

	r := Report{Vertices: len(want)}
	var gInf, wInf bool
	for v := range want {
		gInf, wInf = math.IsInf(got[v], 1), math.IsInf(want[v], 1)
		if !wInf {
			r.Reachable++
		}
		switch {
		case gInf && wInf:
			continue
		case gInf != wInf || math.IsNaN(got[v]) || math.IsNaN(want[v]):
			r.Mismatches = append(r.Mismatches, Mismatch{Vertex: v, Got: got[v], Want: want[v]})
			continue
		}
		if d := math.Abs(got[v] - want[v]); d > r.MaxAbsDiff {
			r.MaxAbsDiff = d
		}
		if !scalar.EqualWithinAbsOrRel(got[v], want[v], tol, tol) {
			r.Mismatches = append(r.Mismatches, Mismatch{Vertex: v, Got: got[v], Want: want[v]})
		}
	}

	return r, nil
}
