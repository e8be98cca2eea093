package interpfunc

import (
	"errors"

	"github.com/phil-mansfield/interpfunc/io"
)

var (
	// ErrFileNotFound is returned by Load when the table does not exist or
	// cannot be opened.
	ErrFileNotFound = io.ErrFileNotFound
	// ErrMalformedInput is returned by Load when the table contains a token
	// which is not a finite decimal number.
	ErrMalformedInput = io.ErrMalformedInput
	// ErrTooFewPoints is returned when a table has less than two points.
	ErrTooFewPoints = errors.New("too few points")
	// ErrNotIncreasing is returned when the x values of a table are not
	// strictly increasing after the Ordering policy has been applied.
	ErrNotIncreasing = errors.New("x values not strictly increasing")
	// ErrInvalidDomain is returned by InitUnity for an empty or NaN domain.
	ErrInvalidDomain = errors.New("invalid domain")
	// ErrNotInitialized is the panic value of every evaluation method called
	// on a Function which has not been initialized.
	ErrNotInitialized = errors.New("function not initialized")
)
