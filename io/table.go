package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/phil-mansfield/table"
)

var (
	// ErrFileNotFound is returned when an input table does not exist or
	// cannot be read.
	ErrFileNotFound = errors.New("file not found")
	// ErrMalformedInput is returned when an input table contains a token
	// which is not a decimal number.
	ErrMalformedInput = errors.New("malformed input")
)

// ReadPairs reads a tabulated function from fname. The file is a stream of
// whitespace-separated numbers which are read pairwise as (x, y) until the
// end of the file. Line breaks carry no meaning. If the stream ends with an
// x value that has no matching y, that value is dropped and dangling is set.
func ReadPairs(fname string) (xs, ys []float64, dangling bool, err error) {
	f, err := openTable(fname)
	if err != nil {
		return nil, nil, false, err
	}
	defer f.Close()

	xs, ys, dangling, err = ParsePairs(f)
	if errors.Is(err, ErrMalformedInput) {
		return nil, nil, false, fmt.Errorf("%s: %w", fname, err)
	} else if err != nil {
		return nil, nil, false, fmt.Errorf(
			"%w: %s: %w", ErrFileNotFound, fname, err,
		)
	}
	return xs, ys, dangling, nil
}

// openTable opens fname for reading. Directories are rejected here, since
// os.Open only fails on them once they are read.
func openTable(fname string) (*os.File, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, fname, err)
	} else if info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, fname)
	}
	return f, nil
}

// ParsePairs is ReadPairs for an already opened stream.
func ParsePairs(r io.Reader) (xs, ys []float64, dangling bool, err error) {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)

	var (
		x     float64
		haveX bool
		tok   int
	)
	for s.Scan() {
		tok++
		val, err := strconv.ParseFloat(s.Text(), 64)
		if err != nil {
			return nil, nil, false, fmt.Errorf(
				"%w: token %d, %q, is not a number", ErrMalformedInput,
				tok, s.Text(),
			)
		}

		if !haveX {
			x, haveX = val, true
			continue
		}
		xs, ys = append(xs, x), append(ys, val)
		haveX = false
	}
	if err := s.Err(); err != nil {
		return nil, nil, false, err
	}

	return xs, ys, haveX, nil
}

// ReadColumns reads the columns xCol and yCol (zero-indexed) of the
// whitespace-separated table in fname.
func ReadColumns(fname string, xCol, yCol int) (xs, ys []float64, err error) {
	if xCol < 0 || yCol < 0 {
		return nil, nil, fmt.Errorf(
			"column indices must be non-negative, but are %d and %d",
			xCol, yCol,
		)
	}
	f, err := openTable(fname)
	if err != nil {
		return nil, nil, err
	}
	f.Close()

	// fname is readable, so table errors come from its contents.
	cols, err := table.ReadTable(fname, []int{xCol, yCol}, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrMalformedInput, fname, err)
	}
	return cols[0], cols[1], nil
}
