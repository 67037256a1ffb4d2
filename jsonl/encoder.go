// Package jsonl provides JSONL encoding for classified screenplay lines.
package jsonl

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/fwojciec/fountain"
)

// Compile-time interface verification.
var _ fountain.ClassificationWriter = (*Encoder)(nil)

// Encoder writes one JSON object per classified line.
// Write is safe for concurrent use; each call's lines stay contiguous.
type Encoder struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

// Write encodes lines in order.
func (e *Encoder) Write(lines []fountain.ClassifiedLine) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, line := range lines {
		if err := e.enc.Encode(line); err != nil {
			return err
		}
	}
	return nil
}
