package io

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReintConfigDefaults(t *testing.T) {
	con, err := ParseReintConfig("[Reint]\nInput = data/flux.dat\n")
	require.NoError(t, err)

	assert.Equal(t, "data/flux.dat", con.Input)
	assert.Equal(t, DefaultPoints, con.Points)
	assert.Equal(t, "Strict", con.Ordering)
	assert.Equal(t, "Native", con.Engine)
	assert.Equal(t, "info", con.LogLevel)
	assert.False(t, con.UsesColumns())
	assert.False(t, con.ValidPlotFile())
	assert.NoError(t, con.CheckInit())
	assert.Equal(t, filepath.Join("data", "reint-flux.dat"), con.OutputFile())
}

func TestParseReintConfigAll(t *testing.T) {
	con, err := ParseReintConfig(`[Reint]
Input = in.dat
Output = out.dat
Points = 50
Ordering = Sort
Engine = Gonum
XColumn = 0
YColumn = 3
PlotFile = plot.png
LogFile = log.out
LogLevel = debug
`)
	require.NoError(t, err)

	assert.Equal(t, "out.dat", con.OutputFile())
	assert.Equal(t, 50, con.Points)
	assert.Equal(t, "Sort", con.Ordering)
	assert.Equal(t, "Gonum", con.Engine)
	assert.True(t, con.UsesColumns())
	assert.True(t, con.ValidColumns())
	assert.True(t, con.ValidPlotFile())
	assert.True(t, con.ValidLogFile())
	assert.NoError(t, con.CheckInit())
}

func TestParseReintConfigUnity(t *testing.T) {
	con, err := ParseReintConfig(
		"[Reint]\nUnity = true\nUnityMin = -2\nUnityMax = 3.5\nOutput = o.dat\n",
	)
	require.NoError(t, err)
	assert.True(t, con.Unity)
	assert.Equal(t, -2.0, con.UnityMin)
	assert.Equal(t, 3.5, con.UnityMax)
	assert.NoError(t, con.CheckInit())
}

func TestReintConfigCheckInit(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no input", "[Reint]\nPoints = 10\n"},
		{"bad points", "[Reint]\nInput = a.dat\nPoints = 0\n"},
		{"one column", "[Reint]\nInput = a.dat\nXColumn = 1\n"},
		{"same columns", "[Reint]\nInput = a.dat\nXColumn = 1\nYColumn = 1\n"},
		{"unity no output", "[Reint]\nUnity = true\n"},
		{"unity domain", "[Reint]\nUnity = true\nOutput = o\nUnityMin = 2\nUnityMax = 1\n"},
	}

	for _, test := range tests {
		con, err := ParseReintConfig(test.body)
		require.NoError(t, err, test.name)
		assert.Error(t, con.CheckInit(), test.name)
	}
}

func TestExampleReintFile(t *testing.T) {
	con, err := ParseReintConfig(ExampleReintFile)
	require.NoError(t, err)
	assert.Equal(t, "path/to/table.dat", con.Input)
	assert.NoError(t, con.CheckInit())
}

func TestParseReintConfigUnknownKey(t *testing.T) {
	_, err := ParseReintConfig("[Reint]\nInput = a\nNoSuchKey = 1\n")
	assert.Error(t, err)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "reint-flux.dat", OutputName("flux.dat"))
	assert.Equal(t, filepath.Join("/a/b", "reint-c.txt"), OutputName("/a/b/c.txt"))
}
