package clipboard_test

import (
	"os/exec"
	"testing"

	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/fountain/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBCopy_Copy(t *testing.T) {
	t.Parallel()

	// Skip if pbcopy is not available (non-macOS systems)
	if _, err := exec.LookPath("pbcopy"); err != nil {
		t.Skip("pbcopy not available, skipping clipboard test")
	}

	cb := clipboard.NewPBCopy()
	testContent := "INT. KITCHEN - DAY\n\nJOHN\nHello there."

	err := cb.Copy(testContent)
	require.NoError(t, err)

	// Verify by reading back with pbpaste
	if _, err := exec.LookPath("pbpaste"); err != nil {
		t.Skip("pbpaste not available, cannot verify clipboard content")
	}

	out, err := exec.Command("pbpaste").Output()
	require.NoError(t, err)
	assert.Equal(t, testContent, string(out))
}

func TestSystem_Copy(t *testing.T) {
	cb := clipboard.NewSystem()
	if !cb.Available() {
		t.Skip("no clipboard backend available")
	}

	testContent := "CUT TO:"
	if err := cb.Copy(testContent); err != nil {
		// Headless sessions have the tools but no display to talk to.
		t.Skipf("clipboard not usable: %v", err)
	}

	got, err := atotto.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, testContent, got)
}
