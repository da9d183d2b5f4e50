package game

import (
	"math/rand"
	"time"

	"github.com/samdwyer/hangman/internal/gamedata"
)

// WordSource supplies the mystery word at the start of each round.
type WordSource interface {
	NextWord() (string, error)
}

// WordSourceFunc adapts a function to WordSource.
type WordSourceFunc func() (string, error)

// NextWord calls f.
func (f WordSourceFunc) NextWord() (string, error) {
	return f()
}

// NewWordSource picks the word source described by cfg: a fixed word,
// the daily word, or a seeded random pick from registry. now is consulted
// on every round so a session left open past midnight moves on.
func NewWordSource(cfg Config, registry *gamedata.WordRegistry, now func() time.Time) WordSource {
	switch {
	case cfg.Word != "":
		word := cfg.Word
		return WordSourceFunc(func() (string, error) { return word, nil })

	case cfg.Daily:
		return WordSourceFunc(func() (string, error) {
			return registry.Daily(now(), cfg.DailySalt), nil
		})

	default:
		seed := cfg.Seed
		if seed == 0 {
			seed = now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		return WordSourceFunc(func() (string, error) {
			return registry.Random(rng), nil
		})
	}
}
