package fountain_test

import (
	"testing"

	"github.com/fwojciec/fountain"
	"github.com/stretchr/testify/assert"
)

func TestCategories(t *testing.T) {
	t.Parallel()

	t.Run("lists all categories in declaration order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []fountain.Category{
			fountain.SceneHeading,
			fountain.Character,
			fountain.Dialogue,
			fountain.Parenthetical,
			fountain.Transition,
			fountain.Synopsis,
			fountain.Action,
			fountain.Centered,
			fountain.PageBreak,
		}, fountain.Categories())
	})

	t.Run("returns a copy", func(t *testing.T) {
		t.Parallel()

		cats := fountain.Categories()
		cats[0] = "mutated"

		assert.Equal(t, fountain.SceneHeading, fountain.Categories()[0])
	})

	t.Run("uses the public category names", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "scene_heading", fountain.SceneHeading.String())
		assert.Equal(t, "page_break", fountain.PageBreak.String())
	})
}

func TestCategory_Valid(t *testing.T) {
	t.Parallel()

	for _, c := range fountain.Categories() {
		assert.True(t, c.Valid(), "category %q", c)
	}
	assert.False(t, fountain.Category("scene-heading").Valid())
	assert.False(t, fountain.Category("").Valid())
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	c, ok := fountain.ParseCategory(" centered ")
	assert.True(t, ok)
	assert.Equal(t, fountain.Centered, c)

	_, ok = fountain.ParseCategory("heading")
	assert.False(t, ok)
}

func TestNewDocument(t *testing.T) {
	t.Parallel()

	t.Run("defaults the name", func(t *testing.T) {
		t.Parallel()

		doc := fountain.NewDocument("", "FADE IN:")

		assert.Equal(t, "screenplay.fountain", doc.Name)
		assert.Equal(t, "FADE IN:", doc.Text)
	})

	t.Run("keeps an explicit name", func(t *testing.T) {
		t.Parallel()

		doc := fountain.NewDocument("pilot.fountain", "")

		assert.Equal(t, "pilot.fountain", doc.Name)
	})
}

func TestEnsureExtension(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want string
	}{
		{"", "screenplay.fountain"},
		{"pilot", "pilot.fountain"},
		{"pilot.fountain", "pilot.fountain"},
		{"PILOT.FOUNTAIN", "PILOT.FOUNTAIN"},
		{"notes.txt", "notes.txt.fountain"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, fountain.EnsureExtension(tc.name), "name: %q", tc.name)
	}
}
