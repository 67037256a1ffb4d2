package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fwojciec/fountain"
	"github.com/fwojciec/fountain/fs"
	"github.com/fwojciec/fountain/jsonl"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the default number of files classified in parallel.
const DefaultWorkers = 4

// ClassifyRunner classifies screenplay files and writes their lines in input order.
type ClassifyRunner struct {
	Loader fountain.Loader
	Writer fountain.ClassificationWriter
	Paths  []string
	// Workers sets the number of parallel workers. Values below 1 mean 1.
	Workers int
}

// Run classifies every file, each with its own classifier state.
// Nothing is written if any file fails to load.
func (c *ClassifyRunner) Run(ctx context.Context) error {
	// Collect results indexed by original position
	results := make([][]fountain.ClassifiedLine, len(c.Paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Workers, 1))

	for i, path := range c.Paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := c.Loader.Load(path)
			if err != nil {
				return fmt.Errorf("load %s: %w", path, err)
			}
			lines := fountain.NewClassifier().ClassifyDocument(doc.Text)
			results[i] = fountain.NewClassifiedLines(path, lines)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Write results in order
	for _, lines := range results {
		if err := c.Writer.Write(lines); err != nil {
			return err
		}
	}
	return nil
}

func runClassify(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("classify", flag.ContinueOnError)
	workers := flags.Int("workers", DefaultWorkers, "Number of files classified in parallel")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() < 1 {
		return errors.New("usage: fountain classify [-workers N] file...")
	}

	runner := &ClassifyRunner{
		Loader:  &fs.Loader{Strict: true},
		Writer:  jsonl.NewEncoder(os.Stdout),
		Paths:   flags.Args(),
		Workers: *workers,
	}
	return runner.Run(ctx)
}
