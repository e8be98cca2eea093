package interpolate

import (
	"gonum.org/v1/gonum/interp"
)

// GonumSpline is a natural cubic spline fitted by gonum's interp package. It
// computes the same curve as Spline, but solves the tridiagonal system with
// gonum's banded matrix routines and does its own interval search, so the
// Accel passed to EvalAt and DerivAt is unused.
type GonumSpline struct {
	nc     interp.NaturalCubic
	lo, hi float64
	n      int
}

// NewGonumSpline fits a gonum natural cubic spline to the given table. The
// table has the same requirements as the one given to NewSpline. An error is
// returned if gonum fails to solve for the second derivatives.
func NewGonumSpline(xs, ys []float64) (*GonumSpline, error) {
	checkTable("NewGonumSpline", xs, ys)

	gs := &GonumSpline{lo: xs[0], hi: xs[len(xs)-1], n: len(xs)}
	if err := gs.nc.Fit(xs, ys); err != nil {
		return nil, err
	}
	return gs, nil
}

// Eval computes the value of the spline at the given point.
func (gs *GonumSpline) Eval(x float64) float64 {
	return gs.EvalAt(x, nil)
}

// EvalAt computes the value of the spline at x.
func (gs *GonumSpline) EvalAt(x float64, _ *Accel) float64 {
	return gs.nc.Predict(x)
}

// DerivAt computes the first derivative of the spline at x.
func (gs *GonumSpline) DerivAt(x float64, _ *Accel) float64 {
	return gs.nc.PredictDerivative(x)
}

// EvalAll evaluates the spline at all the given x values. If an output
// array is given, the output is written to that array.
func (gs *GonumSpline) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = gs.nc.Predict(x)
	}
	return out[0]
}

// Range returns the first and last x values of the table.
func (gs *GonumSpline) Range() (lo, hi float64) { return gs.lo, gs.hi }

// Len returns the number of points in the table.
func (gs *GonumSpline) Len() int { return gs.n }
