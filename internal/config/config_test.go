package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "midosis.env")
	content := "MIDOSIS_LOG_LEVEL=debug\nMIDOSIS_LEXICON=/etc/midosis/lexicon.yaml\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/etc/midosis/lexicon.yaml", cfg.LexiconPath)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadEnvironmentWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "midosis.env")
	require.NoError(t, os.WriteFile(path, []byte("MIDOSIS_LOG_LEVEL=debug\n"), 0644))

	t.Setenv("MIDOSIS_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}
