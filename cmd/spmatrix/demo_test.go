package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/katalvlaran/spmatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuildDemo_Diagonals(t *testing.T) {
	m, err := buildDemo(10, 0)
	require.NoError(t, err)

	// m[0][0]=0 and m[9][0]=0 equal the default and are not stored
	assert.Equal(t, 18, m.Len())
	for i := 0; i < 10; i++ {
		assert.Equal(t, i, m.At(i).At(i).Get())
		assert.Equal(t, 9-i, m.At(i).At(9-i).Get())
	}
	assert.Equal(t, 0, m.At(4).At(6).Get())
}

func TestWriteDemo_Table(t *testing.T) {
	var buf bytes.Buffer
	err := writeDemo(&buf, demoConfig{Size: 10, Default: 0, From: 0, To: 9, Format: formatTable})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 10+1+18)

	assert.Equal(t, "0 0 0 0 0 0 0 0 0 9", lines[0])
	assert.Equal(t, "0 1 0 0 0 0 0 0 8 0", lines[1])
	assert.Equal(t, "0 0 0 0 4 5 0 0 0 0", lines[4])
	assert.Equal(t, "0 0 0 0 0 0 0 0 0 9", lines[9])
	assert.Equal(t, "18", lines[10])
	assert.Equal(t, "0 9 9", lines[11])
	assert.Equal(t, "1 1 1", lines[12])
	assert.Equal(t, "1 8 8", lines[13])
	assert.Equal(t, "9 9 9", lines[len(lines)-1])
}

func TestWriteDemo_Window(t *testing.T) {
	var buf bytes.Buffer
	err := writeDemo(&buf, demoConfig{Size: 10, Default: -1, From: 3, To: 4, Format: formatTable})
	require.NoError(t, err)

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "3 -1", lines[0])
	assert.Equal(t, "-1 4", lines[1])
	// with default -1 every diagonal cell is stored: 10 + 10
	assert.Equal(t, "20", lines[2])
}

func TestWriteDemo_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := writeDemo(&buf, demoConfig{Size: 4, Default: 0, From: 0, To: 3, Format: formatJSON})
	require.NoError(t, err)

	var got demoReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 6, got.Size)
	assert.Equal(t, []int{0, 0, 0, 3}, got.Window[0])
	require.Len(t, got.Cells, 6)
	assert.Equal(t, matrix.Cell[int]{Coord: matrix.Coord{0, 3}, Value: 3}, got.Cells[0])
}

func TestWriteDemo_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := writeDemo(&buf, demoConfig{Size: 4, Default: 0, From: 0, To: 3, Format: formatYAML})
	require.NoError(t, err)

	var got demoReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 6, got.Size)
	require.Len(t, got.Window, 4)
	assert.Equal(t, matrix.Coord{3, 3}, got.Cells[len(got.Cells)-1].Coord)
}

func TestWriteDemo_RejectsBadConfig(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, writeDemo(&buf, demoConfig{Size: 0, To: 0, Format: formatTable}))
	require.ErrorIs(t, writeDemo(&buf, demoConfig{Size: 5, From: 3, To: 2, Format: formatTable}), errBadWindow)
	require.ErrorIs(t, writeDemo(&buf, demoConfig{Size: 5, From: -1, To: 2, Format: formatTable}), errBadWindow)
	assert.Empty(t, buf.String())
}

func TestRootCmd_Demo(t *testing.T) {
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"demo", "--size", "3", "--log-level", "debug"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "0 0 2\n0 1 0\n0 0 2\n3\n0 2 2\n1 1 1\n2 2 2\n", out.String())
	assert.Contains(t, errOut.String(), "demo matrix built")
}

func TestInitLogging_UnknownLevel(t *testing.T) {
	require.Error(t, initLogging(&bytes.Buffer{}, "verbose"))
	require.NoError(t, initLogging(&bytes.Buffer{}, "INFO"))
}
