// Package engine implements the hangman round state machine.
package engine

import (
	"errors"
	"fmt"
	"unicode"
)

// Placeholder marks an unrevealed position in the pattern.
const Placeholder = '_'

const (
	letterPenalty = 1
	wordPenalty   = 2
)

var (
	// ErrInvalidWord is returned by New and Normalize for empty or non-letter words.
	ErrInvalidWord = errors.New("invalid mystery word")
	// ErrInvalidGuess is returned by Submit for input that fails Validate.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrRoundOver is returned by Submit once the round is won or lost.
	ErrRoundOver = errors.New("round is over")
)

// Engine tracks a single round: the mystery word, the reveal pattern,
// the letters guessed so far and the failure stage.
//
// An Engine is owned by one caller and is not safe for concurrent use.
// Start a new round by creating a new Engine.
type Engine struct {
	word    []rune
	pattern []rune
	used    []rune
	seen    map[rune]struct{}
	stage   int
}

// New creates an Engine for word. The word is upper-cased internally.
func New(word string) (*Engine, error) {
	norm, err := Normalize(word)
	if err != nil {
		return nil, err
	}

	w := []rune(norm)
	pattern := make([]rune, len(w))
	for i := range pattern {
		pattern[i] = Placeholder
	}

	return &Engine{
		word:    w,
		pattern: pattern,
		used:    make([]rune, 0, 8),
		seen:    make(map[rune]struct{}),
	}, nil
}

// Normalize returns word in canonical upper case.
// It fails if word is empty or contains anything but letters.
func Normalize(word string) (string, error) {
	if word == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	out := make([]rune, 0, len(word))
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return "", fmt.Errorf("%w: %q contains %q", ErrInvalidWord, word, r)
		}
		out = append(out, unicode.ToUpper(r))
	}
	return string(out), nil
}

// Validate reports whether input may be submitted. It has no side effects.
func (e *Engine) Validate(input string) bool {
	return e.check(input) == nil
}

// check returns the reason input is not a valid guess, or nil.
func (e *Engine) check(input string) error {
	runes := []rune(input)
	if len(runes) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidGuess)
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) {
			return fmt.Errorf("%w: %q is not a letter", ErrInvalidGuess, r)
		}
	}
	if len(runes) == 1 {
		if _, ok := e.seen[unicode.ToUpper(runes[0])]; ok {
			return fmt.Errorf("%w: %q already used", ErrInvalidGuess, unicode.ToUpper(runes[0]))
		}
	}
	return nil
}

// Submit applies a guess. A single rune is a letter guess; anything longer
// is a whole-word guess. Invalid input and guesses after the round has
// ended return an error and leave the state unchanged.
func (e *Engine) Submit(input string) error {
	if e.Status().Finished() {
		return ErrRoundOver
	}
	if err := e.check(input); err != nil {
		return err
	}

	runes := []rune(input)
	if len(runes) == 1 {
		e.guessLetter(unicode.ToUpper(runes[0]))
	} else {
		e.guessWord(runes)
	}
	return nil
}

func (e *Engine) guessLetter(letter rune) {
	e.used = append(e.used, letter)
	e.seen[letter] = struct{}{}

	hit := false
	for i, r := range e.word {
		if r == letter {
			e.pattern[i] = letter
			hit = true
		}
	}
	if !hit {
		e.penalize(letterPenalty)
	}
}

func (e *Engine) guessWord(guess []rune) {
	if len(guess) == len(e.word) {
		match := true
		for i, r := range guess {
			if unicode.ToUpper(r) != e.word[i] {
				match = false
				break
			}
		}
		if match {
			copy(e.pattern, e.word)
			return
		}
	}
	e.penalize(wordPenalty)
}

// penalize raises the failure stage, saturating at MaxStage.
func (e *Engine) penalize(n int) {
	e.stage += n
	if e.stage > MaxStage {
		e.stage = MaxStage
	}
}

// Pattern returns the reveal pattern, with Placeholder for hidden letters.
func (e *Engine) Pattern() string {
	return string(e.pattern)
}

// UsedGuesses returns the letters guessed so far, in submission order.
func (e *Engine) UsedGuesses() []string {
	out := make([]string, len(e.used))
	for i, r := range e.used {
		out[i] = string(r)
	}
	return out
}

// FailureStage returns the current failure stage in [0, MaxStage].
func (e *Engine) FailureStage() int {
	return e.stage
}

// Word returns the mystery word in canonical case.
func (e *Engine) Word() string {
	return string(e.word)
}

// Status derives the round status from the pattern and failure stage.
// A fully revealed pattern wins even if the stage is also at MaxStage.
func (e *Engine) Status() Status {
	if e.revealed() {
		return StatusWon
	}
	if e.stage >= MaxStage {
		return StatusLost
	}
	return StatusStarted
}

func (e *Engine) revealed() bool {
	for i, r := range e.pattern {
		if r != e.word[i] {
			return false
		}
	}
	return true
}
