package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hperssn/drill/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	all := c.List("")
	require.Len(t, all, 8)

	warmup, err := c.Lookup("1")
	require.NoError(t, err)
	assert.Equal(t, 120, warmup.DurationSeconds)
	assert.Equal(t, 10, warmup.Points)
	assert.Equal(t, domain.CategoryWarmup, warmup.Category)
	assert.Len(t, warmup.Steps(), 4)
}

func TestLookupMissing(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Lookup("404")
	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestListByCategory(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	agility := c.List(domain.CategoryAgility)
	require.Len(t, agility, 2)
	for _, ex := range agility {
		assert.Equal(t, domain.CategoryAgility, ex.Category)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `exercises:
  - id: juggle
    title: Juggling
    instructions: Keep the ball up. Count touches
    duration_seconds: 60
    difficulty: easy
    category: skill
    points: 5
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	ex, err := c.Lookup("juggle")
	require.NoError(t, err)
	assert.Equal(t, []string{"Keep the ball up.", "Count touches."}, ex.Steps())
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed", data: "exercises: [::"},
		{name: "negative duration", data: "exercises:\n  - id: a\n    duration_seconds: -5\n"},
		{name: "duplicate id", data: "exercises:\n  - id: a\n  - id: a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Len(t, c.List(""), 8)
}
