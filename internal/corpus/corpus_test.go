package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"midosis/internal/testutils"
)

func TestBuild(t *testing.T) {
	b := NewBuilder(testutils.MustLexicon(t))

	seeds := []string{
		"agregar paracetamol de 500 mg cada 8 horas",
		"eliminar ibuprofeno",
		"buenos días", // not decomposable, skipped
	}
	c := b.Build(seeds, 20)

	assert.NotEmpty(t, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, 20, c.Cap)
	require.Len(t, c.Entries, 2)
	assert.Equal(t, seeds[0], c.Entries[0].Seed)
	for _, e := range c.Entries {
		assert.NotEmpty(t, e.Variations)
		assert.LessOrEqual(t, len(e.Variations), 20)
	}
}

func TestWriteAndReload(t *testing.T) {
	b := NewBuilder(testutils.MustLexicon(t))
	c := b.Build([]string{"agregar paracetamol de 500 mg"}, 10)

	path := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, b.Write(c, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Corpus
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, c.ID, got.ID)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, c.Entries[0].Variations, got.Entries[0].Variations)
}

func TestReadSeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeds.txt")
	content := "# comment\n\nagregar paracetamol\n  eliminar ibuprofeno  \n\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	seeds, err := ReadSeeds(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"agregar paracetamol", "eliminar ibuprofeno"}, seeds)
}

func TestReadSeedsMissingFile(t *testing.T) {
	_, err := ReadSeeds(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}
