package mock

import "github.com/fwojciec/fountain"

// Compile-time interface verification.
var _ fountain.ClassificationWriter = (*ClassificationWriter)(nil)

// ClassificationWriter is a mock implementation of fountain.ClassificationWriter.
type ClassificationWriter struct {
	WriteFn func(lines []fountain.ClassifiedLine) error
}

func (w *ClassificationWriter) Write(lines []fountain.ClassifiedLine) error {
	return w.WriteFn(lines)
}
