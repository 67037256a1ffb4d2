package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/fountain"
)

// Compile-time interface verification.
var _ fountain.Loader = (*Loader)(nil)

// Loader reads screenplays from disk.
type Loader struct {
	// Strict makes a missing file an error instead of a new document.
	Strict bool
}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path. Unless the loader is strict, a missing file
// yields an empty document named after path, so new screenplays can be
// started by name.
func (l *Loader) Load(path string) (*fountain.Document, error) {
	if path == "" {
		return fountain.NewDocument("", ""), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !l.Strict {
		return fountain.NewDocument(path, ""), nil
	}
	if err != nil {
		return nil, err
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return fountain.NewDocument(path, string(data)), nil
}
