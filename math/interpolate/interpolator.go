/*package interpolate provides the numerical engines used to build smooth
analytic functions through tabulated 1D data.
*/
package interpolate

// Model is a fitted 1D interpolator which can share an Accel between
// successive lookups. A Model is never modified after it is built, so any
// number of goroutines may evaluate it as long as each one uses its own Accel.
//
// x must be within the range of the table the Model was built from.
type Model interface {
	EvalAt(x float64, acc *Accel) float64
	DerivAt(x float64, acc *Accel) float64
	Range() (lo, hi float64)
	Len() int
}

var (
	_ Model = &Spline{}
	_ Model = &GonumSpline{}
)
