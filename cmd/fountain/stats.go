package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fwojciec/fountain"
	"github.com/fwojciec/fountain/jsonl"
)

// StatsRunner summarizes classify output by category.
type StatsRunner struct {
	Input  io.Reader
	Output io.Writer
}

// Run reads JSONL classified lines and writes per-category line counts.
// Blank lines are counted separately from action.
func (s *StatsRunner) Run() error {
	lines, err := jsonl.Decode(s.Input)
	if err != nil {
		return err
	}

	counts := make(map[fountain.Category]int)
	files := make(map[string]struct{})
	blank := 0
	for _, line := range lines {
		files[line.File] = struct{}{}
		if line.Blank {
			blank++
			continue
		}
		counts[line.Category]++
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("CATEGORY", "LINES").
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if col == 1 {
				style = style.Align(lipgloss.Right)
			}
			return style
		})
	for _, c := range fountain.Categories() {
		if counts[c] == 0 {
			continue
		}
		t.Row(string(c), strconv.Itoa(counts[c]))
	}
	t.Row("blank", strconv.Itoa(blank))
	t.Row("total", strconv.Itoa(len(lines)))

	if _, err := fmt.Fprintf(s.Output, "%d files, %d lines\n", len(files), len(lines)); err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.Output, t.Render())
	return err
}

func runStats(args []string) error {
	flags := flag.NewFlagSet("stats", flag.ContinueOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() > 1 {
		return errors.New("usage: fountain stats [file.jsonl]")
	}

	var input io.Reader = os.Stdin
	if path := flags.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	}

	runner := &StatsRunner{Input: input, Output: os.Stdout}
	return runner.Run()
}
