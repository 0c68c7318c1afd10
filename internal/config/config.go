// Package config loads engine settings from an optional env-style file and
// the process environment. Real environment variables win over file entries,
// and CLI flags (bound by the command layer) win over both.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is looked up in the working directory when no file is
// given explicitly.
const DefaultEnvFile = ".midosis.env"

// Config holds the engine's ambient settings.
type Config struct {
	LexiconPath string
	LogLevel    string
	LogFile     string
}

// Load reads the env file at path (optional: a missing file is not an
// error) and overlays the process environment.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultEnvFile
	}

	fileVars := map[string]string{}
	if data, err := os.ReadFile(path); err == nil {
		fileVars, err = godotenv.Unmarshal(string(data))
		if err != nil {
			return Config{}, fmt.Errorf("parse env file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read env file %s: %w", path, err)
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileVars[key]
	}

	return Config{
		LexiconPath: lookup("MIDOSIS_LEXICON"),
		LogLevel:    lookup("MIDOSIS_LOG_LEVEL"),
		LogFile:     lookup("MIDOSIS_LOG_FILE"),
	}, nil
}
