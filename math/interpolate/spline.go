package interpolate

import (
	"fmt"
)

type splineCoeff struct {
	a, b, c, d float64
}

// Spline represents a 1D natural cubic spline which can be used to
// interpolate between points. The second derivative of a natural spline is
// zero at both ends of the table.
type Spline struct {
	xs, ys, y2s []float64
	coeffs      []splineCoeff

	// Usually the input data is uniform. This is our estimate of the point
	// spacing.
	dx float64
}

// NewSpline creates a spline based off a table of x and y values. The x
// values must be strictly increasing and there must be at least two of them.
// The table is copied, so xs and ys may be reused by the caller.
func NewSpline(xs, ys []float64) *Spline {
	checkTable("NewSpline", xs, ys)

	sp := new(Spline)
	sp.xs = append([]float64(nil), xs...)
	sp.ys = append([]float64(nil), ys...)
	sp.y2s = make([]float64, len(xs))
	sp.coeffs = make([]splineCoeff, len(xs)-1)

	sp.dx = (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
	sp.calcY2s()
	sp.calcCoeffs()
	return sp
}

// checkTable panics if xs and ys cannot describe a spline.
func checkTable(caller string, xs, ys []float64) {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("Table given to %s() has len(xs) = %d "+
			"but len(ys) = %d.", caller, len(xs), len(ys)))
	} else if len(xs) <= 1 {
		panic(fmt.Sprintf("Table given to %s() has "+
			"length of %d.", caller, len(xs)))
	}

	for i := 0; i < len(xs)-1; i++ {
		if !(xs[i+1] > xs[i]) {
			panic(fmt.Sprintf("Table given to %s() not strictly "+
				"increasing at index %d.", caller, i+1))
		}
	}
}

// Eval computes the value of the spline at the given point.
//
// x must be within the range of x values given to NewSpline().
func (sp *Spline) Eval(x float64) float64 {
	return sp.EvalAt(x, nil)
}

// EvalAt computes the value of the spline at x, using acc to speed up the
// interval lookup. acc may be nil.
func (sp *Spline) EvalAt(x float64, acc *Accel) float64 {
	sp.checkBounds("Spline.Eval", x)
	i := sp.find(x, acc)
	dx := x - sp.xs[i]
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	return ((a*dx+b)*dx+c)*dx + d
}

// EvalAll evaluates the spline at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
func (sp *Spline) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}

	acc := &Accel{}
	for i := range xs {
		out[0][i] = sp.EvalAt(xs[i], acc)
	}

	return out[0]
}

// DerivAt computes the first derivative of the spline at x, using acc to
// speed up the interval lookup. acc may be nil.
func (sp *Spline) DerivAt(x float64, acc *Accel) float64 {
	return sp.deriv(x, 1, acc)
}

// deriv computes the derivative of the spline at x to the specified order.
func (sp *Spline) deriv(x float64, order int, acc *Accel) float64 {
	sp.checkBounds("Spline.Deriv", x)
	i := sp.find(x, acc)
	dx := x - sp.xs[i]
	a, b, c, d := sp.coeffs[i].a, sp.coeffs[i].b, sp.coeffs[i].c, sp.coeffs[i].d
	switch order {
	case 0:
		return ((a*dx+b)*dx+c)*dx + d
	case 1:
		return (3*a*dx+2*b)*dx + c
	case 2:
		return 6*a*dx + 2*b
	case 3:
		return 6 * a
	default:
		return 0
	}
}

// Range returns the first and last x values of the table.
func (sp *Spline) Range() (lo, hi float64) {
	return sp.xs[0], sp.xs[len(sp.xs)-1]
}

// Len returns the number of points in the table.
func (sp *Spline) Len() int { return len(sp.xs) }

func (sp *Spline) checkBounds(caller string, x float64) {
	if x < sp.xs[0] || x > sp.xs[len(sp.xs)-1] {
		panic(fmt.Sprintf("Point %g given to %s() out of bounds "+
			"[%g, %g].", x, caller, sp.xs[0], sp.xs[len(sp.xs)-1]))
	}
}

func (sp *Spline) find(x float64, acc *Accel) int {
	if acc == nil {
		return guessSearch(sp.xs, sp.dx, x)
	}
	return acc.Find(sp.xs, x)
}

// calcY2s computes the second derivative at every point in the table
// given in NewSpline.
func (sp *Spline) calcY2s() {
	n := len(sp.xs)
	// Natural boundary conditions.
	sp.y2s[0], sp.y2s[n-1] = 0, 0
	if n == 2 {
		return
	}

	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	xs, ys := sp.xs, sp.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	TriDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

func (sp *Spline) calcCoeffs() {
	coeffs, xs, ys, y2s := sp.coeffs, sp.xs, sp.ys, sp.y2s
	for i := range coeffs {
		dx := xs[i+1] - xs[i]
		coeffs[i].a = (y2s[i+1] - y2s[i]) / (6 * dx)
		coeffs[i].b = y2s[i] / 2
		coeffs[i].c = (ys[i+1]-ys[i])/dx - dx*(2*y2s[i]+y2s[i+1])/6
		coeffs[i].d = ys[i]
	}
}

// TriDiagAt solves the system of equations
//
// | b0 c0 ..    |   | out0 |   | r0 |
// | a1 b1 c1 .. |   | out1 |   | r1 |
// | ..          | * | ..   | = | .. |
// | ..    an bn |   | outn |   | rn |
//
// For out0 .. outn in place in the given slice. as[0] and cs[n] are ignored.
func TriDiagAt(as, bs, cs, rs, out []float64) {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {

		panic("Length of arguments to TriDiagAt are unequal.")
	}
	if len(out) == 0 {
		return
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		panic("TriDiagAt cannot solve given system.")
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			panic("TriDiagAt cannot solve given system.")
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
}
