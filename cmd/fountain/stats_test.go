package main_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	main "github.com/fwojciec/fountain/cmd/fountain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRunner_Run(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		`{"file":"a.fountain","line":1,"category":"scene_heading","text":"INT. KITCHEN - DAY"}`,
		`{"file":"a.fountain","line":2,"category":"action","text":"","blank":true}`,
		`{"file":"a.fountain","line":3,"category":"character","text":"JOHN"}`,
		`{"file":"a.fountain","line":4,"category":"dialogue","text":"Hello."}`,
		`{"file":"b.fountain","line":1,"category":"dialogue","text":"Still here."}`,
	}, "\n")

	var out bytes.Buffer
	runner := &main.StatsRunner{Input: strings.NewReader(input), Output: &out}

	require.NoError(t, runner.Run())

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "2 files, 5 lines\n"))
	assertRow(t, got, "scene_heading", "1")
	assertRow(t, got, "character", "1")
	assertRow(t, got, "dialogue", "2")
	assertRow(t, got, "blank", "1")
	assertRow(t, got, "total", "5")
	assert.NotContains(t, got, "transition", "categories without lines are omitted")
	assert.NotRegexp(t, `action\s`, got, "blank lines are not counted as action")
}

func TestStatsRunner_InvalidInput(t *testing.T) {
	t.Parallel()

	runner := &main.StatsRunner{
		Input:  strings.NewReader(`{"line":1,"category":"montage","text":"x"}`),
		Output: &bytes.Buffer{},
	}

	assert.Error(t, runner.Run())
}

func assertRow(t *testing.T, out, category, count string) {
	t.Helper()
	pattern := regexp.MustCompile(regexp.QuoteMeta(category) + `\s+│\s+` + count + `\s+│`)
	assert.Regexp(t, pattern, out)
}
