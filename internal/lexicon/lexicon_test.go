package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealstack/internal/coordinate"
	"sealstack/internal/pattern"
)

func TestEmbedded_LoadsCleanly(t *testing.T) {
	patterns, err := Embedded()
	require.NoError(t, err)
	require.NotEmpty(t, patterns)

	// The corpus must feed the store without duplicate coordinates.
	store, err := pattern.Load(patterns)
	require.NoError(t, err)
	assert.Equal(t, len(patterns), store.Len())
}

func TestEmbedded_CoversAllLayers(t *testing.T) {
	patterns, err := Embedded()
	require.NoError(t, err)

	seen := make(map[coordinate.SealLayer]bool)
	for _, p := range patterns {
		seen[p.Coordinate.Layer] = true
	}
	for _, layer := range coordinate.Layers() {
		assert.True(t, seen[layer], "no embedded pattern at layer %d", layer)
	}
}

func TestEmbedded_RecordHygiene(t *testing.T) {
	patterns, err := Embedded()
	require.NoError(t, err)

	for _, p := range patterns {
		coord := p.Coordinate.String()
		assert.NotEmpty(t, p.Title, coord)
		assert.NotEmpty(t, p.Body, coord)
		assert.NotEmpty(t, p.Tags, coord)
		assert.NotEmpty(t, p.Language, coord)
		for _, tag := range p.Tags {
			assert.Equal(t, strings.ToLower(tag), tag, "%s: tag %q not lower-case", coord, tag)
		}
	}
}

func TestEmbedded_Deterministic(t *testing.T) {
	first, err := Embedded()
	require.NoError(t, err)
	second, err := Embedded()
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.True(t, first[i].Coordinate.Equal(second[i].Coordinate), "order differs at %d", i)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
patterns:
  - coordinate: L1.Q1.CUSTOM.WIDGET[C2]
    title: Widget
    language: go
    tags: [Widget, gadget]
    body: |
      type {Entity}Widget struct{}
`), 0o644))

	patterns, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	assert.Equal(t, "L1.Q1.CUSTOM.WIDGET[C2]", patterns[0].Coordinate.String())
	assert.Equal(t, []string{"widget", "gadget"}, patterns[0].Tags, "tags normalize to lower case")
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("bad coordinate", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
patterns:
  - coordinate: bogus
    title: x
    body: y
`), 0o644))
		_, err := LoadFile(path)
		assert.ErrorIs(t, err, coordinate.ErrMalformed)
	})

	t.Run("missing body", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
patterns:
  - coordinate: L1.Q1.TECH.X[C1]
    title: x
`), 0o644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

func TestLoadPaths_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.yaml")
	b := filepath.Join(dir, "b.yaml")
	require.NoError(t, os.WriteFile(a, []byte("patterns:\n  - coordinate: L1.Q1.X.A[C1]\n    title: a\n    body: a\n"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("patterns:\n  - coordinate: L1.Q1.X.B[C1]\n    title: b\n    body: b\n"), 0o644))

	patterns, err := LoadPaths([]string{b, a})
	require.NoError(t, err)
	require.Len(t, patterns, 2)
	assert.Equal(t, "L1.Q1.X.B[C1]", patterns[0].Coordinate.String())
	assert.Equal(t, "L1.Q1.X.A[C1]", patterns[1].Coordinate.String())
}
