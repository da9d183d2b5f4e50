package game

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/hangman/internal/engine"
	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/ui"
)

// maxInput bounds the input line; no mystery word needs more.
const maxInput = 32

// ErrWrongState is returned when an action does not apply to the current state.
var ErrWrongState = errors.New("action not allowed in current state")

// Session is the presenter state between the terminal and the engine.
// It owns at most one round at a time and is driven from the UI goroutine.
type Session struct {
	ctx    context.Context
	words  WordSource
	tracer trace.Tracer

	state   State
	round   *engine.Engine
	roundID string
	span    trace.Span
	input   []rune
	message string
}

// NewSession creates a session on the title screen.
func NewSession(ctx context.Context, words WordSource, tracer trace.Tracer) *Session {
	return &Session{
		ctx:    ctx,
		words:  words,
		tracer: tracer,
		state:  StateTitle,
	}
}

// State returns the current screen state.
func (s *Session) State() State {
	return s.state
}

// RoundID returns the identifier of the current or last round.
func (s *Session) RoundID() string {
	return s.roundID
}

// Status returns the engine status, or StatusNotStarted when no round is shown.
func (s *Session) Status() engine.Status {
	if s.state == StateTitle || s.round == nil {
		return engine.StatusNotStarted
	}
	return s.round.Status()
}

// Start discards any previous round and begins a new one with a fresh word.
func (s *Session) Start() error {
	if s.state != StateTitle {
		return ErrWrongState
	}

	word, err := s.words.NextWord()
	if err != nil {
		s.message = "No word available"
		return fmt.Errorf("next word: %w", err)
	}
	round, err := engine.New(word)
	if err != nil {
		s.message = "No word available"
		return fmt.Errorf("start round: %w", err)
	}

	s.round = round
	s.roundID = uuid.NewString()
	s.input = s.input[:0]
	s.message = ""
	s.state = StateRound

	wordLen := len([]rune(round.Word()))
	_, s.span = s.tracer.Start(s.ctx, "round",
		trace.WithAttributes(
			telemetry.RoundIDKey.String(s.roundID),
			telemetry.WordLengthKey.Int(wordLen),
		),
	)

	log.Info().Str("round", s.roundID).Int("length", wordLen).Msg("round started")
	return nil
}

// Type appends r, upper-cased, to the input line.
func (s *Session) Type(r rune) {
	if s.state != StateRound || len(s.input) >= maxInput || !unicode.IsPrint(r) {
		return
	}
	s.input = append(s.input, unicode.ToUpper(r))
	s.message = ""
}

// Backspace removes the last rune of the input line.
func (s *Session) Backspace() {
	if s.state != StateRound || len(s.input) == 0 {
		return
	}
	s.input = s.input[:len(s.input)-1]
	s.message = ""
}

// Input returns the current input line.
func (s *Session) Input() string {
	return string(s.input)
}

// InputValid reports whether the input line could be submitted now.
func (s *Session) InputValid() bool {
	return s.state == StateRound && s.round.Validate(s.Input())
}

// Submit sends the input line to the engine. Empty input is ignored.
// Rejected input stays on the line with a message; accepted input is
// cleared. When the guess ends the round the session moves to
// StateRoundOver.
func (s *Session) Submit() error {
	if s.state != StateRound {
		return ErrWrongState
	}
	if len(s.input) == 0 {
		return nil
	}

	guess := s.Input()
	before := s.round.FailureStage()
	if err := s.round.Submit(guess); err != nil {
		s.message = rejectMessage(err)
		return err
	}
	s.input = s.input[:0]
	s.message = ""

	kind := "letter"
	if len([]rune(guess)) > 1 {
		kind = "word"
	}
	hit := s.round.FailureStage() == before
	stage := s.round.FailureStage()

	s.span.AddEvent("guess", trace.WithAttributes(
		telemetry.GuessKindKey.String(kind),
		telemetry.GuessHitKey.Bool(hit),
		telemetry.StageKey.Int(stage),
	))
	log.Debug().Str("round", s.roundID).Str("kind", kind).Bool("hit", hit).Int("stage", stage).Msg("guess")

	if status := s.round.Status(); status.Finished() {
		s.finish(status.String())
		s.state = StateRoundOver
	}
	return nil
}

// Expire leaves StateRoundOver for the title screen. Calls for any round
// other than the current one are ignored, so a late timer cannot cut the
// next round short.
func (s *Session) Expire(roundID string) bool {
	if s.state != StateRoundOver || roundID != s.roundID {
		return false
	}
	s.state = StateTitle
	return true
}

// Close ends the span of a round abandoned mid-play.
func (s *Session) Close() {
	if s.state == StateRound {
		s.finish("abandoned")
		s.state = StateTitle
	}
}

func (s *Session) finish(outcome string) {
	stage := s.round.FailureStage()
	if s.span != nil {
		s.span.SetAttributes(
			telemetry.StatusKey.String(outcome),
			telemetry.StageKey.Int(stage),
		)
		s.span.End()
		s.span = nil
	}
	log.Info().Str("round", s.roundID).Str("outcome", outcome).Int("stage", stage).Msg("round finished")
}

// View builds the renderer snapshot, picking the gallows frame for the
// current failure stage from frames.
func (s *Session) View(frames *gamedata.GallowsRegistry) ui.View {
	v := ui.View{
		Title:    s.state == StateTitle,
		MaxStage: engine.MaxStage,
		Message:  s.message,
	}
	if v.Title || s.round == nil {
		return v
	}

	v.Pattern = s.round.Pattern()
	v.Used = s.round.UsedGuesses()
	v.Stage = s.round.FailureStage()
	v.Input = s.Input()
	v.InputValid = s.InputValid()

	if frames != nil {
		v.FrameRows = frames.Height()
	}
	if id, err := engine.StageVisual(v.Stage); err == nil && frames != nil {
		v.Frame = frames.GetByID(id)
	} else if err != nil {
		log.Error().Err(err).Str("round", s.roundID).Msg("no visual for stage")
	}

	if s.state == StateRoundOver {
		v.Result = s.round.Status().String()
		v.Word = s.round.Word()
	}
	return v
}

// rejectMessage turns an engine error into text for the input line.
func rejectMessage(err error) string {
	switch {
	case errors.Is(err, engine.ErrRoundOver):
		return "The round is over"
	case errors.Is(err, engine.ErrInvalidGuess):
		return "Letters only, and no letter twice"
	default:
		return err.Error()
	}
}
