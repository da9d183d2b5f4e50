package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/samdwyer/hangman/internal/engine"
)

// DefaultRevealDelay is how long a finished round stays on screen.
const DefaultRevealDelay = 2 * time.Second

// Config holds game configuration options.
type Config struct {
	// Seed for random word selection. A seed of 0 means a random seed will be generated.
	Seed int64

	// Word, when set, is used as the mystery word for every round.
	Word string

	// WordsFile is a word list on disk. Empty means the embedded list.
	WordsFile string

	// Daily picks the same word for everyone on a given UTC day.
	Daily bool

	// DailySalt varies the daily sequence between installations.
	DailySalt string

	// RevealDelay is how long the result is shown before returning to the title.
	RevealDelay time.Duration
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		DailySalt:   "hangman",
		RevealDelay: DefaultRevealDelay,
	}
}

// Validate checks option values and combinations.
func (c Config) Validate() error {
	if c.RevealDelay < 0 {
		return fmt.Errorf("reveal delay must not be negative: %s", c.RevealDelay)
	}
	if c.Word != "" {
		if _, err := engine.Normalize(c.Word); err != nil {
			return fmt.Errorf("word: %w", err)
		}
		if c.Daily {
			return errors.New("word and daily are mutually exclusive")
		}
	}
	return nil
}
