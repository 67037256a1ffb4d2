package chroma_test

import (
	"testing"

	"github.com/fwojciec/fountain/chroma"
	"github.com/stretchr/testify/assert"
)

func TestDetector_DetectFromPath(t *testing.T) {
	t.Parallel()

	t.Run("detects Fountain from .fountain files", func(t *testing.T) {
		t.Parallel()

		detector := chroma.NewDetector()

		assert.Equal(t, "Fountain", detector.DetectFromPath("scripts/pilot.fountain"))
	})

	t.Run("detects Fountain from .spmd files", func(t *testing.T) {
		t.Parallel()

		detector := chroma.NewDetector()

		assert.Equal(t, "Fountain", detector.DetectFromPath("draft.spmd"))
	})

	t.Run("detects other languages", func(t *testing.T) {
		t.Parallel()

		detector := chroma.NewDetector()

		assert.Equal(t, "Go", detector.DetectFromPath("main.go"))
	})

	t.Run("returns empty string for unknown extensions", func(t *testing.T) {
		t.Parallel()

		detector := chroma.NewDetector()

		assert.Empty(t, detector.DetectFromPath("file.unknownext"))
	})
}
