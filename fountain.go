// Package fountain provides domain types for classifying and editing
// screenplays written in the Fountain markup format.
package fountain

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
)

// Document file conventions.
const (
	Extension       = ".fountain"
	DefaultFilename = "screenplay" + Extension
	ContentType     = "text/plain"
)

// Errors surfaced by the save path.
var (
	ErrEmptyDocument        = errors.New("document is empty")
	ErrEditorNotInitialized = errors.New("editor is not initialized")
	ErrUnknownTheme         = errors.New("unknown theme")
)

// Category is the semantic role of a single screenplay line.
// The names are a public contract consumed by the highlighting layer.
type Category string

// Line categories.
const (
	SceneHeading  Category = "scene_heading"
	Character     Category = "character"
	Dialogue      Category = "dialogue"
	Parenthetical Category = "parenthetical"
	Transition    Category = "transition"
	Synopsis      Category = "synopsis"
	Action        Category = "action"

	// Centered and PageBreak are valid categories with no enabled rule.
	Centered  Category = "centered"
	PageBreak Category = "page_break"
)

var categories = []Category{
	SceneHeading,
	Character,
	Dialogue,
	Parenthetical,
	Transition,
	Synopsis,
	Action,
	Centered,
	PageBreak,
}

// Categories returns every valid category in declaration order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is one of the declared categories.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a category name to a Category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.TrimSpace(s))
	if !c.Valid() {
		return "", false
	}
	return c, true
}

// Document is a screenplay held in memory.
type Document struct {
	Name string // File name, e.g. "screenplay.fountain"
	Text string // Raw document text, saved verbatim
}

// NewDocument creates a document, defaulting the name to DefaultFilename.
func NewDocument(name, text string) *Document {
	if name == "" {
		name = DefaultFilename
	}
	return &Document{Name: name, Text: text}
}

// EnsureExtension returns name with a .fountain extension.
// An empty name becomes DefaultFilename.
func EnsureExtension(name string) string {
	if name == "" {
		return DefaultFilename
	}
	if strings.EqualFold(filepath.Ext(name), Extension) {
		return name
	}
	return name + Extension
}

// Saver offers a document to the user as a file.
type Saver interface {
	// Save persists the document text unchanged and returns where it went.
	// Returns ErrEmptyDocument when there is nothing to save.
	Save(doc *Document) (string, error)
}

// Loader reads a document from storage.
type Loader interface {
	Load(path string) (*Document, error)
}

// Clipboard copies text to the system clipboard.
type Clipboard interface {
	Copy(content string) error
}

// Editor lets the user edit a document interactively.
type Editor interface {
	// Edit blocks until the user exits the editor.
	Edit(ctx context.Context, doc *Document) error
}
