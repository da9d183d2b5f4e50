package engine

import (
	"errors"
	"strings"
	"testing"
)

func mustNew(t *testing.T, word string) *Engine {
	t.Helper()
	e, err := New(word)
	if err != nil {
		t.Fatalf("New(%q) error: %v", word, err)
	}
	return e
}

func submitAll(t *testing.T, e *Engine, guesses ...string) {
	t.Helper()
	for _, g := range guesses {
		if err := e.Submit(g); err != nil {
			t.Fatalf("Submit(%q) error: %v", g, err)
		}
	}
}

func TestNew(t *testing.T) {
	e := mustNew(t, "Cat")

	if got := e.Word(); got != "CAT" {
		t.Errorf("Word() = %q, want %q", got, "CAT")
	}
	if got := e.Pattern(); got != "___" {
		t.Errorf("Pattern() = %q, want %q", got, "___")
	}
	if got := len(e.UsedGuesses()); got != 0 {
		t.Errorf("len(UsedGuesses()) = %d, want 0", got)
	}
	if got := e.FailureStage(); got != 0 {
		t.Errorf("FailureStage() = %d, want 0", got)
	}
	if got := e.Status(); got != StatusStarted {
		t.Errorf("Status() = %v, want %v", got, StatusStarted)
	}
}

func TestNewRejectsInvalidWords(t *testing.T) {
	for _, word := range []string{"", "CAT1", "ICE CREAM", "A-B", "_"} {
		if _, err := New(word); !errors.Is(err, ErrInvalidWord) {
			t.Errorf("New(%q) error = %v, want ErrInvalidWord", word, err)
		}
	}
}

func TestNewDoesNotMutateCallerWord(t *testing.T) {
	word := "dog"
	e := mustNew(t, word)
	submitAll(t, e, "d")

	if word != "dog" {
		t.Errorf("caller word changed to %q", word)
	}
}

func TestValidate(t *testing.T) {
	e := mustNew(t, "CAT")
	submitAll(t, e, "A", "Q")

	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"1a", false},
		{"1", false},
		{"C A", false},
		{"A", false},
		{"a", false},
		{"q", false},
		{"C", true},
		{"c", true},
		{"DOG", true},
		{"cat", true},
		{"É", true},
	}

	for _, tt := range tests {
		if got := e.Validate(tt.input); got != tt.want {
			t.Errorf("Validate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidateAllowsRepeatedWordGuess(t *testing.T) {
	e := mustNew(t, "CAT")
	submitAll(t, e, "DOG")

	if !e.Validate("DOG") {
		t.Error("Validate(\"DOG\") after guessing DOG = false, want true")
	}
}

func TestValidateUsesMembershipNotSubstring(t *testing.T) {
	e := mustNew(t, "BANANA")
	submitAll(t, e, "N")

	// Word guesses are never recorded, so their letters do not count as used.
	submitAll(t, e, "BANDANA")
	if !e.Validate("A") {
		t.Error("Validate(\"A\") = false after only N and a word guess, want true")
	}
}

func TestSubmitLetterRevealsEveryOccurrence(t *testing.T) {
	e := mustNew(t, "BANANA")
	submitAll(t, e, "a")

	if got := e.Pattern(); got != "_A_A_A" {
		t.Errorf("Pattern() = %q, want %q", got, "_A_A_A")
	}
	if got := e.FailureStage(); got != 0 {
		t.Errorf("FailureStage() = %d, want 0", got)
	}

	submitAll(t, e, "N")
	if got := e.Pattern(); got != "_ANANA" {
		t.Errorf("Pattern() = %q, want %q", got, "_ANANA")
	}
}

func TestSubmitRecordsUsedLettersInOrder(t *testing.T) {
	e := mustNew(t, "CAT")
	submitAll(t, e, "z", "C", "WORD", "a")

	want := []string{"Z", "C", "A"}
	got := e.UsedGuesses()
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("UsedGuesses() = %v, want %v", got, want)
	}
}

func TestUsedGuessesIsSnapshot(t *testing.T) {
	e := mustNew(t, "CAT")
	submitAll(t, e, "C")

	used := e.UsedGuesses()
	used[0] = "X"
	if got := e.UsedGuesses()[0]; got != "C" {
		t.Errorf("UsedGuesses()[0] = %q after caller mutation, want %q", got, "C")
	}
}

func TestSubmitRejectsInvalidInput(t *testing.T) {
	e := mustNew(t, "CAT")
	submitAll(t, e, "Z")

	for _, input := range []string{"", "1", "C4T", "z", "Z"} {
		err := e.Submit(input)
		if !errors.Is(err, ErrInvalidGuess) {
			t.Errorf("Submit(%q) error = %v, want ErrInvalidGuess", input, err)
		}
	}

	if got := e.FailureStage(); got != 1 {
		t.Errorf("FailureStage() = %d, want 1 (rejected input must not penalize)", got)
	}
	if got := len(e.UsedGuesses()); got != 1 {
		t.Errorf("len(UsedGuesses()) = %d, want 1", got)
	}
}

func TestSubmitAfterRoundOver(t *testing.T) {
	won := mustNew(t, "CAT")
	submitAll(t, won, "CAT")
	if err := won.Submit("Z"); !errors.Is(err, ErrRoundOver) {
		t.Errorf("Submit after win error = %v, want ErrRoundOver", err)
	}
	if got := won.FailureStage(); got != 0 {
		t.Errorf("FailureStage() after rejected post-win guess = %d, want 0", got)
	}
	if got := len(won.UsedGuesses()); got != 0 {
		t.Errorf("len(UsedGuesses()) after rejected post-win guess = %d, want 0", got)
	}

	lost := mustNew(t, "DOG")
	submitAll(t, lost, "AAA", "BBB", "CCC", "EEE", "Q")
	if lost.Status() != StatusLost {
		t.Fatalf("Status() = %v, want %v", lost.Status(), StatusLost)
	}
	if err := lost.Submit("D"); !errors.Is(err, ErrRoundOver) {
		t.Errorf("Submit after loss error = %v, want ErrRoundOver", err)
	}
	if got := lost.Pattern(); got != "___" {
		t.Errorf("Pattern() after rejected post-loss guess = %q, want %q", got, "___")
	}
}

func TestScenarioCat(t *testing.T) {
	e := mustNew(t, "CAT")

	steps := []struct {
		guess   string
		pattern string
		stage   int
		status  Status
	}{
		{"C", "C__", 0, StatusStarted},
		{"Z", "C__", 1, StatusStarted},
		{"CAT", "CAT", 1, StatusWon},
	}

	for _, step := range steps {
		submitAll(t, e, step.guess)
		if got := e.Pattern(); got != step.pattern {
			t.Errorf("after %q: Pattern() = %q, want %q", step.guess, got, step.pattern)
		}
		if got := e.FailureStage(); got != step.stage {
			t.Errorf("after %q: FailureStage() = %d, want %d", step.guess, got, step.stage)
		}
		if got := e.Status(); got != step.status {
			t.Errorf("after %q: Status() = %v, want %v", step.guess, got, step.status)
		}
	}
}

func TestScenarioDogLost(t *testing.T) {
	e := mustNew(t, "DOG")
	wrong := []string{"Q", "X", "Z", "B", "F", "J", "K", "V", "W"}

	for i, g := range wrong {
		submitAll(t, e, g)
		if got := e.FailureStage(); got != i+1 {
			t.Errorf("after %q: FailureStage() = %d, want %d", g, got, i+1)
		}
		if i < len(wrong)-1 && e.Status() != StatusStarted {
			t.Errorf("after %q: Status() = %v, want %v", g, e.Status(), StatusStarted)
		}
	}

	if got := e.Status(); got != StatusLost {
		t.Errorf("Status() = %v, want %v", got, StatusLost)
	}
	if got := e.Pattern(); got != "___" {
		t.Errorf("Pattern() = %q, want %q", got, "___")
	}
}

func TestWrongWordGuessesCostTwo(t *testing.T) {
	e := mustNew(t, "DOG")

	submitAll(t, e, "CAT")
	if got := e.FailureStage(); got != 2 {
		t.Errorf("FailureStage() = %d, want 2", got)
	}
	submitAll(t, e, "COW")
	if got := e.FailureStage(); got != 4 {
		t.Errorf("FailureStage() = %d, want 4", got)
	}
	if got := e.Status(); got != StatusStarted {
		t.Errorf("Status() = %v, want %v", got, StatusStarted)
	}
	if got := len(e.UsedGuesses()); got != 0 {
		t.Errorf("len(UsedGuesses()) = %d, want 0", got)
	}
}

func TestWrongWordGuessOfDifferentLength(t *testing.T) {
	e := mustNew(t, "DOG")
	submitAll(t, e, "DOGS")

	if got := e.FailureStage(); got != 2 {
		t.Errorf("FailureStage() = %d, want 2", got)
	}
	if got := e.Pattern(); got != "___" {
		t.Errorf("Pattern() = %q, want %q", got, "___")
	}
}

func TestStageSaturates(t *testing.T) {
	e := mustNew(t, "DOG")

	// 2+2+2+2 = 8, then a wrong word would reach 10.
	submitAll(t, e, "AAA", "BBB", "CCC", "EEE", "FFF")

	if got := e.FailureStage(); got != MaxStage {
		t.Errorf("FailureStage() = %d, want %d", got, MaxStage)
	}
	if got := e.Status(); got != StatusLost {
		t.Errorf("Status() = %v, want %v", got, StatusLost)
	}
}

func TestWordGuessWinsAfterPartialProgress(t *testing.T) {
	e := mustNew(t, "HANGMAN")
	submitAll(t, e, "A", "X", "N")

	if got := e.Pattern(); got != "_AN__AN" {
		t.Fatalf("Pattern() = %q, want %q", got, "_AN__AN")
	}

	submitAll(t, e, "hangman")
	if got := e.Pattern(); got != "HANGMAN" {
		t.Errorf("Pattern() = %q, want %q", got, "HANGMAN")
	}
	if got := e.Status(); got != StatusWon {
		t.Errorf("Status() = %v, want %v", got, StatusWon)
	}
}

func TestWinByLetters(t *testing.T) {
	e := mustNew(t, "NOON")
	submitAll(t, e, "N")
	if e.Status() != StatusStarted {
		t.Fatalf("Status() = %v, want %v", e.Status(), StatusStarted)
	}
	submitAll(t, e, "o")
	if got := e.Status(); got != StatusWon {
		t.Errorf("Status() = %v, want %v", got, StatusWon)
	}
}

func TestWonTakesPrecedenceOverLost(t *testing.T) {
	e := mustNew(t, "AB")
	submitAll(t, e, "A", "B")
	e.stage = MaxStage

	if got := e.Status(); got != StatusWon {
		t.Errorf("Status() = %v, want %v", got, StatusWon)
	}
}

func TestPatternLengthInvariant(t *testing.T) {
	words := []string{"A", "CAT", "MISSISSIPPI", "ÉTÉ", "ŻÓŁW"}
	guesses := []string{"S", "Q", "I", "WRONG", "É", "T", "ż", "P", "M"}

	for _, word := range words {
		e := mustNew(t, word)
		want := len([]rune(word))
		for _, g := range guesses {
			_ = e.Submit(g)
			if got := len([]rune(e.Pattern())); got != want {
				t.Errorf("%s after %q: pattern length = %d, want %d", word, g, got, want)
			}
		}
	}
}

func TestRevealedLettersNeverRevert(t *testing.T) {
	e := mustNew(t, "LETTER")
	submitAll(t, e, "T")
	before := e.Pattern()

	submitAll(t, e, "LATTER", "Q", "E")
	after := []rune(e.Pattern())
	for i, r := range before {
		if r != Placeholder && after[i] != r {
			t.Errorf("position %d reverted from %q to %q", i, r, after[i])
		}
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status   Status
		expected string
	}{
		{StatusNotStarted, "not_started"},
		{StatusStarted, "started"},
		{StatusWon, "won"},
		{StatusLost, "lost"},
		{Status(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.expected {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.expected)
		}
	}
}

func TestStatusFinished(t *testing.T) {
	if StatusNotStarted.Finished() || StatusStarted.Finished() {
		t.Error("non-terminal status reported Finished")
	}
	if !StatusWon.Finished() || !StatusLost.Finished() {
		t.Error("terminal status did not report Finished")
	}
}
