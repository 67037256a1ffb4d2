package mock

import (
	"context"

	"github.com/fwojciec/fountain"
)

// Compile-time interface verification.
var _ fountain.Editor = (*Editor)(nil)

// Editor is a mock implementation of fountain.Editor.
type Editor struct {
	EditFn func(ctx context.Context, doc *fountain.Document) error
}

func (e *Editor) Edit(ctx context.Context, doc *fountain.Document) error {
	return e.EditFn(ctx, doc)
}
