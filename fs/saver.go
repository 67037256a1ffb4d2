package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/fountain"
)

// Compile-time interface verification.
var _ fountain.Saver = (*Saver)(nil)

// Saver writes documents to a directory as .fountain files.
type Saver struct {
	dir string
}

// NewSaver creates a Saver writing into dir. An empty dir uses DefaultSaveDir.
func NewSaver(dir string) *Saver {
	if dir == "" {
		dir = DefaultSaveDir()
	}
	return &Saver{dir: dir}
}

// Dir returns the directory documents are written to.
func (s *Saver) Dir() string {
	return s.dir
}

// Save writes the document text byte-for-byte and returns the file path.
// Empty documents are refused with fountain.ErrEmptyDocument.
func (s *Saver) Save(doc *fountain.Document) (string, error) {
	if doc == nil || doc.Text == "" {
		return "", fountain.ErrEmptyDocument
	}

	path := s.Path(doc)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc.Text), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Path returns where doc would be saved. Absolute document names are kept;
// relative names are placed in the save directory.
func (s *Saver) Path(doc *fountain.Document) string {
	name := fountain.EnsureExtension(doc.Name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(s.dir, name)
}
