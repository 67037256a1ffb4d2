package bubbletea_test

import (
	"testing"

	"github.com/fwojciec/fountain/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		startCol int
		expected string
	}{
		{"empty string", "", 0, ""},
		{"no tabs", "INT. KITCHEN - DAY", 0, "INT. KITCHEN - DAY"},
		{"leading tab expands to a full stop", "\tJOHN", 0, "        JOHN"},
		{"tab after text fills to the stop", "ab\tc", 0, "ab      c"},
		{"tab exactly at a stop", "12345678\tx", 0, "12345678        x"},
		{"start column shifts the first stop", "\tx", 3, "     x"},
		{"wide runes count two cells", "日本\tx", 0, "日本    x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, bubbletea.ExpandTabs(tt.input, tt.startCol))
		})
	}
}
