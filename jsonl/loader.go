package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/fountain"
)

// maxLineSize is the maximum size for a single JSONL line (1MB).
const maxLineSize = 1024 * 1024

// Decode reads classified lines from a JSONL stream.
// Blank input lines are skipped; unknown categories are an error.
func Decode(r io.Reader) ([]fountain.ClassifiedLine, error) {
	var lines []fountain.ClassifiedLine
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}

		var l fountain.ClassifiedLine
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if !l.Category.Valid() {
			return nil, fmt.Errorf("line %d: unknown category %q", lineNum, l.Category)
		}
		lines = append(lines, l)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
