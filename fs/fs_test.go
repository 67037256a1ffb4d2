package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/fountain/fs"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigDir_UsesXDGIfSet(t *testing.T) {
	// Can't use t.Parallel with t.Setenv
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	dir := fs.DefaultConfigDir()

	assert.Equal(t, "/custom/config/fountain", dir)
}

func TestDefaultConfigDir_FallsBackToHomeConfig(t *testing.T) {
	// Can't use t.Parallel with t.Setenv
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := fs.DefaultConfigDir()

	home, _ := os.UserHomeDir()
	assert.Equal(t, filepath.Join(home, ".config", "fountain"), dir)
}

func TestDefaultSaveDir_UsesWorkingDirectory(t *testing.T) {
	t.Parallel()

	wd, err := os.Getwd()
	if err != nil {
		t.Skip("working directory unavailable")
	}

	assert.Equal(t, wd, fs.DefaultSaveDir())
}
