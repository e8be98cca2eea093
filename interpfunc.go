/*package interpfunc loads a tabulated 1D function from a text file and
evaluates a natural cubic spline through it.

Outside of the tabulated domain a Function is clamped to the value of the
nearest end point. A Function can also be initialized as the constant
f(x) = 1 over a given domain, which is useful when no table is available.
*/
package interpfunc

import (
	"fmt"
	"math"
	"sort"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/interpfunc/io"
	"github.com/phil-mansfield/interpfunc/math/interpolate"
)

const (
	// BoundaryEpsilon is the relative amount DomainMin and DomainMax move
	// the reported bounds by.
	BoundaryEpsilon = 1e-5
)

// noCopy makes go vet's copylocks check flag Functions copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Function is a tabulated 1D function.
//
// A Function is not safe for concurrent use, even by goroutines which only
// call Eval: every lookup updates the Function's interval cache. Use Clone
// to get an independent Function for each goroutine.
//
// Functions must not be copied by value after they are initialized.
type Function struct {
	noCopy noCopy

	opt Options

	model interpolate.Model
	acc   *interpolate.Accel

	xMin, xMax float64
	// Function values at the domain boundaries.
	yMin, yMax float64

	mode Mode
}

// New returns an uninitialized Function which will be loaded with the given
// options. A nil opt gives the default options. The zero Function is also
// usable and has the default options.
func New(opt *Options) *Function {
	f := &Function{}
	if opt != nil {
		f.opt = *opt
		f.opt.Columns = append([]int(nil), opt.Columns...)
	}
	return f
}

// Load initializes f with the table stored in fname. Any previous state is
// cleared first. If Load returns an error, f is left uninitialized.
func (f *Function) Load(fname string) error {
	f.Clear()

	var (
		xs, ys []float64
		err    error
	)
	if f.opt.Columns != nil {
		if len(f.opt.Columns) != 2 {
			return fmt.Errorf(
				"Options.Columns must hold 2 indices, but holds %d.",
				len(f.opt.Columns),
			)
		}
		xs, ys, err = io.ReadColumns(fname, f.opt.Columns[0], f.opt.Columns[1])
	} else {
		var dangling bool
		xs, ys, dangling, err = io.ReadPairs(fname)
		if dangling {
			log.WithField("file", fname).Debug("Dropped unpaired final value.")
		}
	}
	if err != nil {
		return err
	}

	if err = f.LoadTable(xs, ys); err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

// MustLoad is Load, except that it logs a fatal error naming fname and exits
// the process if the table cannot be loaded.
func (f *Function) MustLoad(fname string) {
	if err := f.Load(fname); err != nil {
		log.Fatalf(
			"Can not initialize interpolated function using file %s: %s",
			fname, err,
		)
	}
}

// LoadTable initializes f with the given table. The slices are copied. Any
// previous state is cleared first. If LoadTable returns an error, f is left
// uninitialized.
func (f *Function) LoadTable(xs, ys []float64) error {
	f.Clear()

	if len(xs) != len(ys) {
		return fmt.Errorf(
			"%w: len(xs) = %d, but len(ys) = %d", ErrMalformedInput,
			len(xs), len(ys),
		)
	} else if len(xs) < 2 {
		return fmt.Errorf(
			"%w: table has %d points, but at least 2 are needed",
			ErrTooFewPoints, len(xs),
		)
	} else if !allFinite(xs) || !allFinite(ys) {
		return fmt.Errorf("%w: table contains NaN or Inf", ErrMalformedInput)
	}

	xs = append([]float64(nil), xs...)
	ys = append([]float64(nil), ys...)
	if f.opt.Ordering == Sort {
		sort.Stable(&points{xs, ys})
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return fmt.Errorf(
				"%w: xs[%d] = %g, but xs[%d] = %g", ErrNotIncreasing,
				i-1, xs[i-1], i, xs[i],
			)
		}
	}

	model, err := f.opt.Engine.fit(xs, ys)
	if err != nil {
		return err
	}

	n := len(xs)
	f.model, f.acc = model, interpolate.NewAccel()
	f.xMin, f.xMax = model.Range()
	f.yMin, f.yMax = ys[0], ys[n-1]
	f.mode = Interpolating
	return nil
}

// InitUnity initializes f as f(x) = 1 on the domain [xMin, xMax]. Any
// previous state is cleared first.
func (f *Function) InitUnity(xMin, xMax float64) error {
	f.Clear()

	if math.IsNaN(xMin) || math.IsNaN(xMax) || xMin > xMax {
		return fmt.Errorf(
			"%w: [%g, %g]", ErrInvalidDomain, xMin, xMax,
		)
	}

	f.xMin, f.xMax = xMin, xMax
	f.yMin, f.yMax = 1, 1
	f.mode = Unity
	return nil
}

// Clear returns f to its uninitialized state. It is safe to call Clear any
// number of times.
func (f *Function) Clear() {
	f.model, f.acc = nil, nil
	f.xMin, f.xMax = 0, 0
	f.yMin, f.yMax = 0, 0
	f.mode = Uninitialized
}

// Mode returns the state of f.
func (f *Function) Mode() Mode { return f.mode }

// Initialized returns true if f can be evaluated.
func (f *Function) Initialized() bool { return f.mode != Uninitialized }

// Len returns the number of points in the table f was loaded from. It is
// zero for uninitialized and unity Functions.
func (f *Function) Len() int {
	if f.mode != Interpolating {
		return 0
	}
	return f.model.Len()
}

// DomainMin returns the lower bound of the domain, moved towards zero (or
// for a negative bound, away from zero) by a relative BoundaryEpsilon so
// that floating point error at the first point doesn't matter.
func (f *Function) DomainMin() float64 {
	f.checkInit()
	if f.xMin > 0 {
		return f.xMin * (1 - BoundaryEpsilon)
	}
	return f.xMin * (1 + BoundaryEpsilon)
}

// DomainMax returns the upper bound of the domain, scaled by a relative
// BoundaryEpsilon in the same way as DomainMin. Zero bounds are unchanged.
func (f *Function) DomainMax() float64 {
	f.checkInit()
	if f.xMax > 0 {
		return f.xMax * (1 + BoundaryEpsilon)
	}
	return f.xMax * (1 - BoundaryEpsilon)
}

// Eval returns the value of f at x. For x outside the domain, the value at
// the nearest domain boundary is returned. Unity Functions always return 1.
// Otherwise, NaN gives NaN.
//
// Eval panics with ErrNotInitialized if f is uninitialized.
func (f *Function) Eval(x float64) float64 {
	f.checkInit()

	switch {
	case f.mode == Unity:
		return 1
	case math.IsNaN(x):
		return x
	case x < f.xMin:
		return f.yMin
	case x > f.xMax:
		return f.yMax
	default:
		return f.model.EvalAt(x, f.acc)
	}
}

// EvalAll evaluates f at all the given x values. If an output array is
// given, the output is written to that array (the array is still returned
// as a convenience).
func (f *Function) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = f.Eval(x)
	}
	return out[0]
}

// Deriv returns the first derivative of f at x. It is consistent with Eval:
// outside the domain and for unity Functions it is zero.
func (f *Function) Deriv(x float64) float64 {
	f.checkInit()

	if f.mode == Unity || x < f.xMin || x > f.xMax {
		return 0
	} else if math.IsNaN(x) {
		return x
	}
	return f.model.DerivAt(x, f.acc)
}

// Resample evaluates f on n uniformly spaced points starting at DomainMin.
// The last point is one step short of DomainMax.
func (f *Function) Resample(n int) (xs, ys []float64) {
	f.checkInit()
	if n <= 0 {
		return []float64{}, []float64{}
	}

	xs = floats.Span(make([]float64, n+1), f.DomainMin(), f.DomainMax())[:n]
	return xs, f.EvalAll(xs)
}

// Clone returns a Function with the same state as f and a separate interval
// cache. The fitted spline is shared, so Clone is cheap.
func (f *Function) Clone() *Function {
	g := New(&f.opt)
	g.model = f.model
	if f.acc != nil {
		g.acc = interpolate.NewAccel()
	}
	g.xMin, g.xMax = f.xMin, f.xMax
	g.yMin, g.yMax = f.yMin, f.yMax
	g.mode = f.mode
	return g
}

func (f *Function) String() string {
	if f.mode == Uninitialized {
		return "Function{Uninitialized}"
	}
	return fmt.Sprintf(
		"Function{%s, [%g, %g], %d points}", f.mode, f.xMin, f.xMax, f.Len(),
	)
}

func (f *Function) checkInit() {
	if f.mode == Uninitialized {
		panic(ErrNotInitialized)
	}
}

func allFinite(xs []float64) bool {
	if floats.HasNaN(xs) {
		return false
	}
	for _, x := range xs {
		if math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// points sorts a table by x.
type points struct {
	xs, ys []float64
}

func (p *points) Len() int           { return len(p.xs) }
func (p *points) Less(i, j int) bool { return p.xs[i] < p.xs[j] }
func (p *points) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.ys[i], p.ys[j] = p.ys[j], p.ys[i]
}
