package mock

import "github.com/fwojciec/fountain"

// Compile-time interface verification.
var _ fountain.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of fountain.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
