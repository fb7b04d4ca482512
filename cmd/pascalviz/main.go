// Command pascalviz renders the first rows of an arithmetic (Pascal's)
// triangle to the terminal, highlighting boundary columns, and prints the
// last rendered row's sum. It doubles as a smoke test for the triangle
// package's lookup, sum and enumeration surfaces.
//
// Usage:
//
//	pascalviz -rows 12 -base 1
//	pascalviz -rows 16 -verbose   # zap diagnostics: timing, cache size
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/katalvlaran/pascal/triangle"
)

func main() {
	rows := flag.Int("rows", 10, "number of rows to render (≥ 1)")
	base := flag.Int("base", 1, "base element occupying every row's edges")
	verbose := flag.Bool("verbose", false, "log render diagnostics with zap")
	noColor := flag.Bool("no-color", false, "disable ANSI colors")
	flag.Parse()

	if *rows < 1 {
		fmt.Fprintln(os.Stderr, "pascalviz: -rows must be at least 1")
		os.Exit(2)
	}
	if *noColor {
		color.NoColor = true
	}

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "pascalviz:", err)
			os.Exit(1)
		}
		logger = dev
		defer func() { _ = logger.Sync() }()
	}

	t := triangle.NewInt(*base)
	start := time.Now()

	// The widest cell sits at the middle of the deepest row.
	last := *rows - 1
	widest, err := t.Value(last, last/2)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pascalviz:", err)
		os.Exit(1)
	}
	cell := len(fmt.Sprintf("%d", widest)) + 1

	edge := color.New(color.FgCyan, color.Bold)
	inner := color.New(color.FgHiWhite)

	var line strings.Builder
	for idx, v := range t.Indexed() {
		if idx.Row > last {
			break
		}
		if idx.Col == 0 {
			line.Reset()
			line.WriteString(strings.Repeat(" ", (last-idx.Row)*cell/2))
		}
		paint := inner
		if idx.IsBoundaryColumn() {
			paint = edge
		}
		line.WriteString(paint.Sprintf("%*d", cell, v))
		if idx.Col == idx.Row {
			fmt.Println(line.String())
		}
	}

	sum, err := t.SumOfRow(last)
	if err != nil {
		fmt.Fprintln(os.Stderr, "pascalviz:", err)
		os.Exit(1)
	}
	fmt.Printf("sum of row %d = %d\n", last, sum)

	logger.Info("rendered",
		zap.Int("rows", *rows),
		zap.Int("base", *base),
		zap.Int("cached_entries", t.CacheSize()),
		zap.Duration("elapsed", time.Since(start)),
	)
}
