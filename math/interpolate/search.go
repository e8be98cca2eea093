package interpolate

// Accel remembers the most recently resolved table interval so that runs of
// nearby lookups skip the binary search. It is a pure optimization: the
// interval returned by Find does not depend on the cache contents.
//
// An Accel is not safe for concurrent use. The zero value is ready to use.
type Accel struct {
	cache        int
	hits, misses int
}

// NewAccel returns an empty accelerator.
func NewAccel() *Accel { return &Accel{} }

// Reset forgets the cached interval and the hit statistics.
func (acc *Accel) Reset() {
	acc.cache, acc.hits, acc.misses = 0, 0, 0
}

// Hits returns the number of lookups answered from the cache.
func (acc *Accel) Hits() int { return acc.hits }

// Misses returns the number of lookups which needed a binary search.
func (acc *Accel) Misses() int { return acc.misses }

// Find returns the index i of the interval [xs[i], xs[i+1]] containing x. xs
// must be strictly increasing and have at least two elements. Points at or
// beyond the last element map to the final interval, len(xs) - 2.
func (acc *Accel) Find(xs []float64, x float64) int {
	n := len(xs)
	// The Accel may have been used with a longer table before.
	if acc.cache > n-2 {
		acc.cache = 0
	}

	i := acc.cache
	switch {
	case x < xs[i]:
		acc.misses++
		acc.cache = bsearch(xs, x, 0, i)
	case x >= xs[i+1] && i+1 < n-1:
		acc.misses++
		acc.cache = bsearch(xs, x, i, n-1)
	default:
		acc.hits++
	}
	return acc.cache
}

// bsearch returns the index of the largest element of xs[lo:hi] which is
// smaller than or equal to x, or lo if there is none.
func bsearch(xs []float64, x float64, lo, hi int) int {
	for hi > lo+1 {
		mid := (lo + hi) / 2
		if xs[mid] > x {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo
}

// guessSearch finds the interval containing x without an Accel. It first
// guesses under the assumption of uniform spacing, which is usually right for
// tabulated data, then falls back to a binary search.
func guessSearch(xs []float64, dx, x float64) int {
	n := len(xs)
	guess := int((x - xs[0]) / dx)
	if guess >= 0 && guess < n-1 && xs[guess] <= x && x < xs[guess+1] {
		return guess
	}
	return bsearch(xs, x, 0, n-1)
}
