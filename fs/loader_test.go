package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/fountain/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("reads an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "pilot.fountain")
		require.NoError(t, os.WriteFile(path, []byte("FADE IN:\n"), 0o644))

		doc, err := fs.NewLoader().Load(path)

		require.NoError(t, err)
		assert.Equal(t, path, doc.Name)
		assert.Equal(t, "FADE IN:\n", doc.Text)
	})

	t.Run("missing file starts an empty document", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "new.fountain")

		doc, err := fs.NewLoader().Load(path)

		require.NoError(t, err)
		assert.Equal(t, path, doc.Name)
		assert.Empty(t, doc.Text)
	})

	t.Run("strict loader rejects a missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.fountain")
		loader := &fs.Loader{Strict: true}

		_, err := loader.Load(path)

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty path uses the default name", func(t *testing.T) {
		t.Parallel()

		doc, err := fs.NewLoader().Load("")

		require.NoError(t, err)
		assert.Equal(t, "screenplay.fountain", doc.Name)
	})

	t.Run("directories are an error", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewLoader().Load(t.TempDir())

		require.Error(t, err)
	})
}
