package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	iofs "io/fs"
	"os"

	"github.com/fwojciec/fountain/config"
)

// ErrConfigExists is returned when initializing over an existing config file.
var ErrConfigExists = errors.New("config file already exists")

// ConfigRunner prints the effective configuration or writes the defaults.
type ConfigRunner struct {
	Path   string
	Init   bool
	Output io.Writer
}

// Run prints the configuration loaded from Path, or with Init writes the
// default configuration to Path.
func (c *ConfigRunner) Run() error {
	if !c.Init {
		cfg, err := config.Load(c.Path)
		if err != nil {
			return err
		}
		return config.Write(c.Output, cfg)
	}

	if _, err := os.Stat(c.Path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, c.Path)
	} else if !errors.Is(err, iofs.ErrNotExist) {
		return err
	}
	if err := config.Save(c.Path, config.Defaults()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(c.Output, "wrote %s\n", c.Path)
	return err
}

func runConfig(args []string) error {
	flags := flag.NewFlagSet("config", flag.ContinueOnError)
	path := flags.String("config", config.DefaultPath(), "Path to the config file")
	initFile := flags.Bool("init", false, "Write the default config file")

	if err := flags.Parse(args); err != nil {
		return err
	}

	runner := &ConfigRunner{Path: *path, Init: *initFile, Output: os.Stdout}
	return runner.Run()
}
