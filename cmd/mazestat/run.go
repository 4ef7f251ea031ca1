package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/quality"
)

// errTooShort is returned when no attempt reached MinLength.
var errTooShort = errors.New("no maze reached the requested longest path")

// config is the resolved command-line configuration.
type config struct {
	Rows, Columns         int
	Algorithm             string
	Seed                  int64
	StartRow, StartColumn int
	MinLength, Attempts   int
	JSON, WithPath, Debug bool
}

// result is what mazestat prints.
type result struct {
	Algorithm string `json:"algorithm"`
	Seed      int64  `json:"seed"`
	Attempts  int    `json:"attempts"`
	quality.Report
}

// run generates, analyzes and prints one maze, retrying successive seeds
// while the longest path is shorter than cfg.MinLength.
func run(w io.Writer, cfg config) error {
	kind, err := carve.ParseKind(cfg.Algorithm)
	if err != nil {
		return err
	}
	attempts := cfg.Attempts
	if cfg.MinLength <= 0 || attempts < 1 {
		attempts = 1
	}

	var res result
	for i := 0; i < attempts; i++ {
		seed := cfg.Seed + int64(i)
		g, err := carve.Generate(cfg.Rows, cfg.Columns, kind, seed)
		if err != nil {
			return err
		}
		start, ok := g.CellAt(cfg.StartRow, cfg.StartColumn)
		if !ok {
			return fmt.Errorf("start (%d,%d): %w", cfg.StartRow, cfg.StartColumn, grid.ErrCellOutOfRange)
		}
		rep, err := quality.Analyze(g, start)
		if err != nil {
			return err
		}
		res = result{Algorithm: kind.String(), Seed: seed, Attempts: i + 1, Report: rep}
		if cfg.Debug {
			log.Printf("attempt %d seed=%d longest=%d", i+1, seed, rep.Length)
		}
		if rep.Length >= cfg.MinLength {
			break
		}
	}
	if !cfg.WithPath {
		res.Path = nil
	}

	if cfg.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err = enc.Encode(res); err != nil {
			return err
		}
	} else {
		printText(w, res)
	}

	if res.Length < cfg.MinLength {
		return fmt.Errorf("%w: best %d < %d after %d attempts", errTooShort, res.Length, cfg.MinLength, res.Attempts)
	}
	return nil
}

func printText(w io.Writer, res result) {
	fmt.Fprintf(w, "Algorithm: %s\n", res.Algorithm)
	fmt.Fprintf(w, "Seed: %d (attempts: %d)\n", res.Seed, res.Attempts)
	fmt.Fprintf(w, "Size: %d x %d\n", res.Rows, res.Columns)
	fmt.Fprintf(w, "Passages: %d\n", res.Links)
	fmt.Fprintf(w, "Dead ends: %d\n", res.DeadEnds)
	fmt.Fprintf(w, "Walled cells: %d\n", res.Walled)
	fmt.Fprintf(w, "Perfect: %t\n", res.Perfect)
	fmt.Fprintf(w, "Connected: %t\n", res.Connected)
	fmt.Fprintf(w, "Reachable from (%d,%d): %d\n", res.Start.Row, res.Start.Column, res.Reachable)
	fmt.Fprintf(w, "Longest path: (%d,%d) -> (%d,%d), length %d (first pass %d)\n",
		res.From.Row, res.From.Column, res.To.Row, res.To.Column, res.Length, res.FirstPass)
	if len(res.Path) > 0 {
		fmt.Fprint(w, "Path:")
		for _, p := range res.Path {
			fmt.Fprintf(w, " (%d,%d)", p.Row, p.Column)
		}
		fmt.Fprintln(w)
	}
}
