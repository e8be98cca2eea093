package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	plt "github.com/phil-mansfield/pyplot"
	log "github.com/sirupsen/logrus"

	"github.com/phil-mansfield/interpfunc"
	"github.com/phil-mansfield/interpfunc/io"
)

const (
	// Table read when reint is run without any flags.
	defaultInput = "Xpol_src_ls_flux-wl.dat"
)

// FileGroup contains utility files for logging.
type FileGroup struct {
	log *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		log.SetOutput(os.Stderr)
		if err := fg.log.Close(); err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		reintStr, fileStr string
		exampleConfig     string
	)
	vars := map[string]*string{
		"Reint":         &reintStr,
		"File":          &fileStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&reintStr, "Reint", "",
		"Configuration file for [Reint] mode.",
	)
	flag.StringVar(
		&fileStr, "File", "",
		"Two column table to resample with the default [Reint] settings. "+
			"The output is written to reint-<File>.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. The only accepted argument is 'Reint'.",
	)

	flag.Parse()

	// Figure out the mode and fail with a descriptive error if the user gave
	// incorrect flags.
	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	var con *io.ReintConfig
	switch modeName {
	case "Reint":
		con, err = io.ReadReintConfig(reintStr)
		if err != nil {
			log.Fatal(err.Error())
		}
	case "File", "":
		con = &io.DefaultReintWrapper().Reint
		con.Input = fileStr
		if modeName == "" {
			con.Input = defaultInput
		}
	case "ExampleConfig":
		switch exampleConfig {
		case "Reint":
			fmt.Println(io.ExampleReintFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only " +
					"recognized argument is 'Reint'.",
			)
		}
		return
	default:
		panic("Impossible")
	}

	if err = con.CheckInit(); err != nil {
		log.Fatal(err.Error())
	}
	opt, err := options(con)
	if err != nil {
		log.Fatal(err.Error())
	}

	fg, err := setupLogging(con)
	if err != nil {
		log.Fatal(err.Error())
	}
	defer fg.Close()

	if err = reintMain(con, opt); err != nil {
		log.Fatal(err.Error())
	}
}

// getModeName returns the name of the mode and fails with a descriptive error
// if the user provided more than one mode flag. If no flag was set, the empty
// string is returned.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", nil
	}

	if len(setNames) > 1 {
		sort.Strings(setNames)
		return "", fmt.Errorf(
			"The following flags were set: %s, but reint "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// options converts the string-valued parts of con into Options.
func options(con *io.ReintConfig) (*interpfunc.Options, error) {
	ordering, err := interpfunc.ParseOrdering(con.Ordering)
	if err != nil {
		return nil, err
	}
	engine, err := interpfunc.ParseEngine(con.Engine)
	if err != nil {
		return nil, err
	}

	opt := &interpfunc.Options{Ordering: ordering, Engine: engine}
	if con.UsesColumns() {
		opt.Columns = []int{con.XColumn, con.YColumn}
	}
	return opt, nil
}

func setupLogging(con *io.ReintConfig) (*FileGroup, error) {
	fg := &FileGroup{}

	level, err := log.ParseLevel(con.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			return nil, err
		}
		log.SetOutput(fg.log)
	}
	return fg, nil
}

// reintMain loads the table described by con, resamples it onto con.Points
// uniformly spaced points and writes the result.
func reintMain(con *io.ReintConfig, opt *interpfunc.Options) error {
	f := interpfunc.New(opt)
	if con.Unity {
		if err := f.InitUnity(con.UnityMin, con.UnityMax); err != nil {
			return err
		}
	} else if err := f.Load(con.Input); err != nil {
		return fmt.Errorf(
			"Can not initialize interpolated function using file %s: %w",
			con.Input, err,
		)
	}

	out := con.OutputFile()
	log.WithFields(log.Fields{
		"function": f.String(),
		"points":   con.Points,
		"engine":   opt.Engine,
		"output":   out,
	}).Info("Resampling.")

	xs, ys := f.Resample(con.Points)
	if err := io.WriteTable(out, xs, ys); err != nil {
		return err
	}

	if con.ValidPlotFile() {
		plotResample(con, xs, ys)
		log.WithField("plot", con.PlotFile).Info("Wrote plot.")
	}
	return nil
}

func plotResample(con *io.ReintConfig, xs, ys []float64) {
	name := con.Input
	if con.Unity {
		name = "f(x) = 1"
	}

	plt.Figure()
	plt.Plot(xs, ys, "b", plt.LW(2))
	plt.Title(fmt.Sprintf("%s, %d points", name, len(xs)))
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$f(x)$`, plt.FontSize(16))
	plt.SaveFig(con.PlotFile)
	plt.Execute()
}
