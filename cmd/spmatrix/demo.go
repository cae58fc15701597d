package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/spmatrix/matrix"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	demoSize    int
	demoDefault int
	demoFrom    int
	demoTo      int
)

var errBadWindow = errors.New("window must satisfy 0 <= from <= to")

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Fill the diagonals of an NxN matrix and print it",
	Long: `Build a 2-D matrix and, for every i in [0,N), write m[i][i] = i and
m[i][N-i-1] = N-i-1. Cells equal to the default are never stored.

Prints the [from..to]x[from..to] window, the number of stored cells and
every stored cell as "row col value".`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVarP(&demoSize, "size", "n", 10, "matrix side N")
	demoCmd.Flags().IntVar(&demoDefault, "default", 0, "default (empty) cell value")
	demoCmd.Flags().IntVar(&demoFrom, "from", 0, "first row/column of the printed window")
	demoCmd.Flags().IntVar(&demoTo, "to", -1, "last row/column of the printed window (default N-1)")
}

// demoConfig is the resolved set of demo parameters.
type demoConfig struct {
	Size    int
	Default int
	From    int
	To      int
	Format  string
}

// demoReport is the json/yaml shape of the demo output.
type demoReport struct {
	Window [][]int            `json:"window" yaml:"window"`
	Size   int                `json:"size" yaml:"size"`
	Cells  []matrix.Cell[int] `json:"cells" yaml:"cells"`
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg := demoConfig{
		Size:    demoSize,
		Default: demoDefault,
		From:    demoFrom,
		To:      demoTo,
		Format:  format,
	}
	if cfg.To < 0 {
		cfg.To = cfg.Size - 1
	}

	return writeDemo(cmd.OutOrStdout(), cfg)
}

// buildDemo fills both diagonals of an n×n matrix.
func buildDemo(n, def int) (*matrix.Matrix[int], error) {
	m := matrix.New(def, matrix.DefaultDims, matrix.WithCapacity(2*n))
	for i := 0; i < n; i++ {
		if _, err := m.At(i).At(i).Set(i); err != nil {
			return nil, fmt.Errorf("diagonal %d: %w", i, err)
		}
		if _, err := m.At(i).At(n - i - 1).Set(n - i - 1); err != nil {
			return nil, fmt.Errorf("anti-diagonal %d: %w", i, err)
		}
	}
	logger.Debug("demo matrix built", "n", n, "default", def, "cells", m.Len())

	return m, nil
}

// window reads the square [from..to]×[from..to] through the accessor chain.
func window(m *matrix.Matrix[int], from, to int) [][]int {
	rows := make([][]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		row := m.At(i)
		vals := make([]int, 0, to-from+1)
		for j := from; j <= to; j++ {
			vals = append(vals, row.At(j).Get())
		}
		rows = append(rows, vals)
	}

	return rows
}

// writeDemo renders the demo matrix to w in cfg.Format.
func writeDemo(w io.Writer, cfg demoConfig) error {
	if cfg.Size < 1 {
		return fmt.Errorf("size must be positive, got %d", cfg.Size)
	}
	if cfg.From < 0 || cfg.From > cfg.To {
		return fmt.Errorf("from=%d to=%d: %w", cfg.From, cfg.To, errBadWindow)
	}

	m, err := buildDemo(cfg.Size, cfg.Default)
	if err != nil {
		return err
	}
	report := demoReport{
		Window: window(m, cfg.From, cfg.To),
		Size:   m.Len(),
		Cells:  m.Cells(),
	}
	logger.Info("rendering demo", "format", cfg.Format, "from", cfg.From, "to", cfg.To)

	switch cfg.Format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return writeTable(w, report)
	}
}

// writeTable prints the window rows, the size and one "coord... value" line per cell.
func writeTable(w io.Writer, r demoReport) error {
	var sb strings.Builder
	for _, row := range r.Window {
		for j, v := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintln(&sb, r.Size)
	for _, cell := range r.Cells {
		for _, i := range cell.Coord {
			fmt.Fprintf(&sb, "%d ", i)
		}
		fmt.Fprintln(&sb, cell.Value)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
