package interpfunc

import (
	"fmt"
	"strings"

	"github.com/phil-mansfield/interpfunc/math/interpolate"
)

// Mode is the state of a Function.
type Mode int

const (
	Uninitialized Mode = iota
	Interpolating
	Unity
)

func (m Mode) String() string {
	switch m {
	case Uninitialized:
		return "Uninitialized"
	case Interpolating:
		return "Interpolating"
	case Unity:
		return "Unity"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Ordering decides what happens to a table whose x values are not strictly
// increasing.
type Ordering int

const (
	// Strict rejects the table with ErrNotIncreasing.
	Strict Ordering = iota
	// Sort sorts the points by x. Tables with repeated x values are still
	// rejected.
	Sort
	EndOrdering
)

func (o Ordering) String() string {
	switch o {
	case Strict:
		return "Strict"
	case Sort:
		return "Sort"
	}
	return fmt.Sprintf("Ordering(%d)", int(o))
}

// ParseOrdering returns the Ordering with the given (case-insensitive) name.
func ParseOrdering(name string) (Ordering, error) {
	for o := Strict; o < EndOrdering; o++ {
		if strings.EqualFold(o.String(), name) {
			return o, nil
		}
	}
	return 0, fmt.Errorf("Unrecognized ordering '%s'.", name)
}

// Engine selects the solver used to fit the natural cubic spline.
type Engine int

const (
	// Native uses interpolate.Spline, which supports an interval cache.
	Native Engine = iota
	// Gonum uses gonum's interp.NaturalCubic.
	Gonum
	EndEngine
)

func (e Engine) String() string {
	switch e {
	case Native:
		return "Native"
	case Gonum:
		return "Gonum"
	}
	return fmt.Sprintf("Engine(%d)", int(e))
}

// ParseEngine returns the Engine with the given (case-insensitive) name.
func ParseEngine(name string) (Engine, error) {
	for e := Native; e < EndEngine; e++ {
		if strings.EqualFold(e.String(), name) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("Unrecognized engine '%s'.", name)
}

func (e Engine) fit(xs, ys []float64) (interpolate.Model, error) {
	switch e {
	case Native:
		return interpolate.NewSpline(xs, ys), nil
	case Gonum:
		gs, err := interpolate.NewGonumSpline(xs, ys)
		if err != nil {
			return nil, err
		}
		return gs, nil
	}
	return nil, fmt.Errorf("Unknown engine %s.", e)
}

// Options control how a Function is loaded. The zero value reads (x, y)
// pairs, rejects unordered tables and uses the Native engine.
type Options struct {
	Ordering Ordering
	Engine   Engine
	// If non-nil, Columns must hold two column indices and Load reads x and
	// y from those columns of a multi-column table.
	Columns []int
}
