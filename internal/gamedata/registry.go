package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/samdwyer/hangman/internal/engine"
)

// WordRegistry holds a normalized, deduplicated list of mystery words.
type WordRegistry struct {
	words []string
	index map[string]int
}

// NewWordRegistry creates a registry from raw words. Words are trimmed and
// upper-cased; entries that are not made only of letters are dropped.
func NewWordRegistry(words []string) (*WordRegistry, error) {
	registry := &WordRegistry{
		words: make([]string, 0, len(words)),
		index: make(map[string]int, len(words)),
	}
	for _, w := range words {
		norm, err := engine.Normalize(strings.TrimSpace(w))
		if err != nil {
			continue
		}
		if _, dup := registry.index[norm]; dup {
			continue
		}
		registry.index[norm] = len(registry.words)
		registry.words = append(registry.words, norm)
	}
	if len(registry.words) == 0 {
		return nil, errors.New("word list has no usable words")
	}
	return registry, nil
}

// LoadWordRegistry loads and creates a registry from the embedded words.yaml.
func LoadWordRegistry() (*WordRegistry, error) {
	words, err := LoadWords()
	if err != nil {
		return nil, err
	}
	return NewWordRegistry(words)
}

// LoadWordFileRegistry creates a registry from a word file on disk.
func LoadWordFileRegistry(path string) (*WordRegistry, error) {
	words, err := ReadWordFile(path)
	if err != nil {
		return nil, err
	}
	registry, err := NewWordRegistry(words)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return registry, nil
}

// Random selects a word uniformly using rng.
func (r *WordRegistry) Random(rng *rand.Rand) string {
	return r.words[rng.Intn(len(r.words))]
}

// Daily returns the word for the UTC calendar day containing t.
// Every caller using the same salt gets the same word on the same day.
func (r *WordRegistry) Daily(t time.Time, salt string) string {
	return r.words[DailyIndex(t, salt, len(r.words))]
}

// Contains reports whether word (in any case) is in the registry.
func (r *WordRegistry) Contains(word string) bool {
	norm, err := engine.Normalize(strings.TrimSpace(word))
	if err != nil {
		return false
	}
	_, ok := r.index[norm]
	return ok
}

// All returns all words in load order.
func (r *WordRegistry) All() []string {
	return r.words
}

// Count returns the number of words in the registry.
func (r *WordRegistry) Count() int {
	return len(r.words)
}

// DateKey returns YYYY-MM-DD for t in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyIndex returns a deterministic index in [0, n) for the day containing t.
func DailyIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	sum := xxhash.Sum64String(salt + ":" + DateKey(t))
	return int(sum % uint64(n))
}

// =============================================================================
// GallowsRegistry
// =============================================================================

// GallowsRegistry holds one gallows frame per visual stage identifier.
type GallowsRegistry struct {
	frames map[string]*GallowsFrame
	all    []GallowsFrame
}

// NewGallowsRegistry creates a registry from frames. It fails unless every
// identifier returned by engine.StageVisual has a frame.
func NewGallowsRegistry(frames []GallowsFrame) (*GallowsRegistry, error) {
	registry := &GallowsRegistry{
		frames: make(map[string]*GallowsFrame),
		all:    frames,
	}
	for i := range frames {
		registry.frames[frames[i].ID] = &frames[i]
	}
	for _, id := range engine.StageVisuals() {
		if registry.frames[id] == nil {
			return nil, fmt.Errorf("no gallows frame for %s", id)
		}
	}
	return registry, nil
}

// LoadGallowsRegistry loads and creates a registry from the embedded gallows.yaml.
func LoadGallowsRegistry() (*GallowsRegistry, error) {
	frames, err := LoadGallows()
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, errors.New("no frames loaded from gallows.yaml")
	}
	return NewGallowsRegistry(frames)
}

// MustLoadGallowsRegistry loads a registry, panicking on error.
func MustLoadGallowsRegistry() *GallowsRegistry {
	registry, err := LoadGallowsRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the frame with the given identifier, or nil if not found.
func (r *GallowsRegistry) GetByID(id string) *GallowsFrame {
	return r.frames[id]
}

// Height returns the number of lines in the tallest frame.
func (r *GallowsRegistry) Height() int {
	h := 0
	for i := range r.all {
		if n := len(r.all[i].Art); n > h {
			h = n
		}
	}
	return h
}

// Count returns the number of frames in the registry.
func (r *GallowsRegistry) Count() int {
	return len(r.all)
}
