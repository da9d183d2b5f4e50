package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/samdwyer/hangman/internal/gamedata"
	"github.com/samdwyer/hangman/internal/telemetry"
	"github.com/samdwyer/hangman/internal/ui"
)

// roundExpired is posted by the reveal timer of the round with the given ID.
type roundExpired struct {
	roundID string
}

// Game holds the terminal and the session it presents.
type Game struct {
	cfg      Config
	words    WordSource
	screen   *ui.Screen
	renderer *ui.Renderer
	gallows  *gamedata.GallowsRegistry
	session  *Session
	timer    *time.Timer
	running  bool
}

// New creates a new game instance on the terminal.
func New(cfg Config, words WordSource) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	g, err := NewWithScreen(cfg, words, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game on an already initialized screen.
func NewWithScreen(cfg Config, words WordSource, screen *ui.Screen) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	gallows, err := gamedata.LoadGallowsRegistry()
	if err != nil {
		return nil, fmt.Errorf("load gallows: %w", err)
	}

	return &Game{
		cfg:      cfg,
		words:    words,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		gallows:  gallows,
		session:  NewSession(context.Background(), words, telemetry.NoopTracer()),
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	g.session = NewSession(ctx, g.words, telemetry.Tracer("game"))
	log.Info().Msg("game loop started")

	for g.running {
		g.renderer.Render(g.session.View(g.gallows))
		g.handleInput()
	}

	// Cleanup
	g.session.Close()
	g.Close()
	log.Info().Msg("game loop stopped")
	return nil
}

// handleInput waits for and processes a single input event.
func (g *Game) handleInput() {
	g.handleEvent(g.screen.PollEvent())
}

// handleEvent dispatches one terminal event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventInterrupt:
		if exp, ok := ev.Data().(roundExpired); ok {
			g.session.Expire(exp.roundID)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	case nil:
		// Screen finalized.
		g.running = false
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false

	case tcell.KeyEnter:
		g.confirm()

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		g.session.Backspace()

	case tcell.KeyRune:
		if g.session.State() == StateTitle {
			switch ev.Rune() {
			case 'q', 'Q':
				g.running = false
			}
			return
		}
		g.session.Type(ev.Rune())
	}
}

// confirm starts a round from the title screen or submits the input line.
func (g *Game) confirm() {
	switch g.session.State() {
	case StateTitle:
		if err := g.session.Start(); err != nil {
			log.Error().Err(err).Msg("start round")
		}
	case StateRound:
		if err := g.session.Submit(); err != nil {
			log.Debug().Err(err).Str("round", g.session.RoundID()).Msg("guess rejected")
		}
		if g.session.State() == StateRoundOver {
			g.scheduleExpire(g.session.RoundID())
		}
	}
}

// scheduleExpire returns to the title screen after the reveal delay.
// The timer posts an event rather than touching the session, which is
// only used from the loop goroutine.
func (g *Game) scheduleExpire(roundID string) {
	if g.cfg.RevealDelay == 0 {
		g.session.Expire(roundID)
		return
	}
	if g.timer != nil {
		g.timer.Stop()
	}
	screen := g.screen
	g.timer = time.AfterFunc(g.cfg.RevealDelay, func() {
		if err := screen.PostEvent(tcell.NewEventInterrupt(roundExpired{roundID: roundID})); err != nil {
			log.Warn().Err(err).Str("round", roundID).Msg("post round expiry")
		}
	})
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.timer != nil {
		g.timer.Stop()
	}
	if g.screen != nil {
		g.screen.Close()
	}
}
