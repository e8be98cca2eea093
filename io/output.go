package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteTable writes xs and ys to fname as a two column text table, one
// "<x> <y>" line per point. Any existing file is truncated.
func WriteTable(fname string, xs, ys []float64) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	if err = FormatTable(f, xs, ys); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FormatTable is WriteTable for an arbitrary writer. Values are written
// with %g.
func FormatTable(w io.Writer, xs, ys []float64) error {
	if len(xs) != len(ys) {
		return fmt.Errorf(
			"len(xs) = %d, but len(ys) = %d", len(xs), len(ys),
		)
	}

	buf := bufio.NewWriter(w)
	for i := range xs {
		if _, err := fmt.Fprintf(buf, "%g %g\n", xs[i], ys[i]); err != nil {
			return err
		}
	}
	return buf.Flush()
}
