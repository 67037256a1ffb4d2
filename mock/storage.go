// Package mock provides test doubles for fountain interfaces.
package mock

import "github.com/fwojciec/fountain"

// Compile-time interface verification.
var (
	_ fountain.Saver  = (*Saver)(nil)
	_ fountain.Loader = (*Loader)(nil)
)

// Saver is a mock implementation of fountain.Saver.
type Saver struct {
	SaveFn func(doc *fountain.Document) (string, error)
}

func (s *Saver) Save(doc *fountain.Document) (string, error) {
	return s.SaveFn(doc)
}

// Loader is a mock implementation of fountain.Loader.
type Loader struct {
	LoadFn func(path string) (*fountain.Document, error)
}

func (l *Loader) Load(path string) (*fountain.Document, error) {
	return l.LoadFn(path)
}
