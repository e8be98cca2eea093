package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/interpfunc"
	"github.com/phil-mansfield/interpfunc/io"
)

func TestGetModeName(t *testing.T) {
	a, b, c := "", "", ""
	vars := map[string]*string{"Reint": &a, "File": &b, "ExampleConfig": &c}

	mode, err := getModeName(vars)
	require.NoError(t, err)
	assert.Equal(t, "", mode)

	b = "table.dat"
	mode, err = getModeName(vars)
	require.NoError(t, err)
	assert.Equal(t, "File", mode)

	a = "reint.ini"
	_, err = getModeName(vars)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "File, Reint")
}

func TestOptions(t *testing.T) {
	con := &io.DefaultReintWrapper().Reint
	opt, err := options(con)
	require.NoError(t, err)
	assert.Equal(t, interpfunc.Strict, opt.Ordering)
	assert.Equal(t, interpfunc.Native, opt.Engine)
	assert.Nil(t, opt.Columns)

	con.Ordering, con.Engine = "sort", "gonum"
	con.XColumn, con.YColumn = 1, 2
	opt, err = options(con)
	require.NoError(t, err)
	assert.Equal(t, interpfunc.Sort, opt.Ordering)
	assert.Equal(t, interpfunc.Gonum, opt.Engine)
	assert.Equal(t, []int{1, 2}, opt.Columns)

	con.Engine = "gsl"
	_, err = options(con)
	assert.Error(t, err)
}

func TestReintMain(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "flux.dat")
	require.NoError(t, os.WriteFile(input, []byte("0 0\n1 1\n2 4\n"), 0644))

	con := &io.DefaultReintWrapper().Reint
	con.Input = input
	con.Points = 10
	opt, err := options(con)
	require.NoError(t, err)
	require.NoError(t, reintMain(con, opt))

	xs, ys, dangling, err := io.ReadPairs(filepath.Join(dir, "reint-flux.dat"))
	require.NoError(t, err)
	assert.False(t, dangling)
	require.Len(t, xs, 10)
	require.Len(t, ys, 10)
	assert.Equal(t, 0.0, xs[0])
	assert.Equal(t, 0.0, ys[0])
	assert.InDelta(t, 2.00002*0.9, xs[9], 1e-6)
}

func TestReintMainUnity(t *testing.T) {
	out := filepath.Join(t.TempDir(), "unity.dat")

	con := &io.DefaultReintWrapper().Reint
	con.Unity, con.UnityMin, con.UnityMax = true, -1, 1
	con.Output = out
	con.Points = 4
	require.NoError(t, con.CheckInit())
	opt, err := options(con)
	require.NoError(t, err)
	require.NoError(t, reintMain(con, opt))

	_, ys, _, err := io.ReadPairs(out)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1}, ys)
}

func TestReintMainMissingInput(t *testing.T) {
	input := filepath.Join(t.TempDir(), "missing.dat")

	con := &io.DefaultReintWrapper().Reint
	con.Input = input
	opt, err := options(con)
	require.NoError(t, err)

	err = reintMain(con, opt)
	require.Error(t, err)
	assert.True(t, errors.Is(err, interpfunc.ErrFileNotFound))
	assert.Contains(t, err.Error(), input)

	_, err = os.Stat(io.OutputName(input))
	assert.True(t, os.IsNotExist(err))
}
