// Package corpus builds offline training/evaluation corpora from the
// variation generator. A corpus is a YAML document tying each seed sentence
// to its generated paraphrases, tagged with a build ID so downstream
// evaluation runs can reference the exact corpus they trained against.
package corpus

import (
	"fmt"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"midosis/internal/lexicon"
	"midosis/internal/logger"
	"midosis/internal/variations"
)

// Entry pairs one seed sentence with its paraphrases.
type Entry struct {
	Seed       string   `yaml:"seed"`
	Variations []string `yaml:"variations"`
}

// Corpus is one complete corpus build.
type Corpus struct {
	ID        string    `yaml:"id"`
	CreatedAt time.Time `yaml:"createdAt"`
	Cap       int       `yaml:"cap"`
	Entries   []Entry   `yaml:"entries"`
}

// Builder generates corpora. Safe for concurrent use.
type Builder struct {
	gen *variations.Generator
	log *charmlog.Logger
}

// NewBuilder creates a Builder over the given lexicon.
func NewBuilder(lex *lexicon.Lexicon) *Builder {
	return &Builder{
		gen: variations.New(lex),
		log: logger.NewStyledLogger("corpus"),
	}
}

// Build expands every seed with the per-seed cap. Seeds that cannot be
// decomposed are skipped with a warning rather than failing the build.
func (b *Builder) Build(seeds []string, cap int) Corpus {
	c := Corpus{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Cap:       cap,
	}
	for _, seed := range seeds {
		vars := b.gen.Generate(seed, cap)
		if len(vars) == 0 {
			b.log.Warn("seed not decomposable, skipping", "seed", seed)
			continue
		}
		c.Entries = append(c.Entries, Entry{Seed: seed, Variations: vars})
	}
	return c
}

// Write serializes the corpus as YAML to path.
func (b *Builder) Write(c Corpus, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal corpus: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write corpus: %w", err)
	}
	return nil
}

// ReadSeeds loads seed sentences from a plain text file, one per line.
// Blank lines and '#' comment lines are skipped.
func ReadSeeds(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seeds: %w", err)
	}
	var seeds []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seeds = append(seeds, line)
	}
	return seeds, nil
}
