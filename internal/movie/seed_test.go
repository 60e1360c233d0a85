package movie

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeed_EmptyPathUsesDefault(t *testing.T) {
	movies, err := LoadSeed("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSeed(), movies)
}

func TestLoadSeed_File(t *testing.T) {
	path := writeSeed(t, `movies:
  - id: 5
    title: "  Alien "
  - id: 9
    title: Heat
`)
	movies, err := LoadSeed(path)
	require.NoError(t, err)
	assert.Equal(t, []Movie{{5, "Alien"}, {9, "Heat"}}, movies)

	// New IDs continue past the largest seeded ID.
	s := NewState(movies)
	assert.Equal(t, 9, s.HighWater)
}

func TestLoadSeed_EmptyList(t *testing.T) {
	movies, err := LoadSeed(writeSeed(t, "movies: []\n"))
	require.NoError(t, err)
	assert.Empty(t, movies)
}

func TestLoadSeed_Invalid(t *testing.T) {
	cases := map[string]string{
		"duplicate id": "movies:\n  - {id: 1, title: a}\n  - {id: 1, title: b}\n",
		"zero id":      "movies:\n  - {id: 0, title: a}\n",
		"blank title":  "movies:\n  - {id: 1, title: '  '}\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadSeed(writeSeed(t, content))
			assert.ErrorIs(t, err, ErrInvalidSeed)
		})
	}
}

func TestLoadSeed_Errors(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadSeed(writeSeed(t, "movies: [oops"))
	assert.Error(t, err)
}
