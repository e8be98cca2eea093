package io

import (
	"fmt"
	"path/filepath"

	"gopkg.in/gcfg.v1"
)

const (
	// DefaultPoints is the number of points written by reint when Points is
	// not set.
	DefaultPoints = 300
	// OutputPrefix is prepended to the input file name when Output is not
	// set.
	OutputPrefix = "reint-"

	ExampleReintFile = `[Reint]

#######################
# Required Parameters #
#######################

# Two column text file containing the tabulated function. The file is read as
# a stream of whitespace separated x y pairs, so line breaks don't matter.
Input = path/to/table.dat

#######################
# Optional Parameters #
#######################

# File the resampled table is written to. Defaults to reint-<Input> in the
# same directory as Input.
# Output = path/to/output.dat

# Number of points in the resampled table. Default is 300.
# Points = 300

# What to do if the x values in Input are not strictly increasing. Must be
# one of [ Strict | Sort ]. Strict rejects the file, Sort sorts the points
# by x first. Default is Strict.
# Ordering = Strict

# Spline solver. Must be one of [ Native | Gonum ]. Both fit a natural cubic
# spline. Default is Native.
# Engine = Native

# Read x and y from these (zero-indexed) columns of a multi-column table
# instead of reading pairs. Both must be set.
# XColumn = 0
# YColumn = 3

# Resample the constant f(x) = 1 over [UnityMin, UnityMax] instead of reading
# Input. Output must be set when this is used.
# Unity = false
# UnityMin = 0
# UnityMax = 1

# Writes a plot of the input points and the resampled spline.
# PlotFile = reint.png

# LogLevel must be one of [ debug | info | warn | error ]. Default is info.
# LogLevel = info
# LogFile = log.out`
)

// ReintConfig holds the [Reint] section of a reint configuration file.
type ReintConfig struct {
	// Required
	Input string

	// Optional
	Output             string
	Points             int
	Ordering, Engine   string
	XColumn, YColumn   int
	Unity              bool
	UnityMin, UnityMax float64
	PlotFile           string
	LogFile, LogLevel  string
}

// ReintWrapper is the type gcfg reads config files into.
type ReintWrapper struct {
	Reint ReintConfig
}

// DefaultReintWrapper returns a wrapper with every optional value set to its
// default.
func DefaultReintWrapper() *ReintWrapper {
	con := ReintConfig{}
	con.Points = DefaultPoints
	con.Ordering = "Strict"
	con.Engine = "Native"
	con.XColumn, con.YColumn = -1, -1
	con.LogLevel = "info"
	return &ReintWrapper{con}
}

// ReadReintConfig reads the config file fname on top of the defaults.
func ReadReintConfig(fname string) (*ReintConfig, error) {
	wrap := DefaultReintWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Reint, nil
}

// ParseReintConfig is ReadReintConfig for a config held in memory.
func ParseReintConfig(str string) (*ReintConfig, error) {
	wrap := DefaultReintWrapper()
	if err := gcfg.ReadStringInto(wrap, str); err != nil {
		return nil, err
	}
	return &wrap.Reint, nil
}

func (con *ReintConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *ReintConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *ReintConfig) ValidPoints() bool {
	return con.Points > 0
}
func (con *ReintConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}
func (con *ReintConfig) ValidUnityDomain() bool {
	return con.UnityMin <= con.UnityMax
}
func (con *ReintConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}
func (con *ReintConfig) ValidLogFile() bool {
	return con.LogFile != ""
}

// UsesColumns returns true if either column index has been set.
func (con *ReintConfig) UsesColumns() bool {
	return con.XColumn >= 0 || con.YColumn >= 0
}

// CheckInit returns a descriptive error if con cannot be run.
func (con *ReintConfig) CheckInit() error {
	switch {
	case con.Unity && !con.ValidOutput():
		return fmt.Errorf("'Output' must be set when 'Unity' is true.")
	case con.Unity && !con.ValidUnityDomain():
		return fmt.Errorf(
			"'UnityMin' = %g is larger than 'UnityMax' = %g.",
			con.UnityMin, con.UnityMax,
		)
	case !con.Unity && !con.ValidInput():
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	case !con.ValidPoints():
		return fmt.Errorf("'Points' must be positive, but is %d.", con.Points)
	case con.UsesColumns() && !con.ValidColumns():
		return fmt.Errorf(
			"'XColumn' = %d and 'YColumn' = %d must both be set to "+
				"different non-negative values.", con.XColumn, con.YColumn,
		)
	}
	return nil
}

// OutputFile returns the file the resampled table is written to.
func (con *ReintConfig) OutputFile() string {
	if con.ValidOutput() {
		return con.Output
	}
	return OutputName(con.Input)
}

// OutputName returns the default output file for the input table fname: the
// same file name with OutputPrefix prepended, in the same directory.
func OutputName(fname string) string {
	dir, base := filepath.Split(fname)
	return filepath.Join(dir, OutputPrefix+base)
}
