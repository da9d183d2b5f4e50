package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hangman/internal/gamedata"
)

const (
	marginX   = 2
	gallowsY  = 2
	titleText = "H A N G M A N"
)

// View is a snapshot of presenter state for one frame.
type View struct {
	Title      bool   // No round in progress; show the start prompt
	Pattern    string // Reveal pattern, placeholders included
	Used       []string
	Stage      int
	MaxStage   int
	Input      string
	InputValid bool
	Message    string
	Result     string // "won" or "lost" once the round has ended
	Word       string // Mystery word, shown with the result
	Frame      *gamedata.GallowsFrame
	FrameRows  int // Rows reserved for the gallows so the text below stays put
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the view to the screen.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	r.screen.DrawText(marginX, 0, titleText, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))

	if v.Title {
		r.screen.DrawText(marginX, gallowsY, "Press Enter to start, Esc to quit", tcell.StyleDefault)
		if v.Message != "" {
			r.screen.DrawText(marginX, gallowsY+2, v.Message, tcell.StyleDefault.Foreground(tcell.ColorRed))
		}
		r.screen.Show()
		return
	}

	if v.Frame != nil {
		style := tcell.StyleDefault.Foreground(v.Frame.TCellColor())
		for i, line := range v.Frame.Art {
			r.screen.DrawText(marginX, gallowsY+i, line, style)
		}
	}
	y := gallowsY + FrameRows(v) + 1

	r.screen.DrawText(marginX, y, SpacedPattern(v.Pattern), tcell.StyleDefault.Bold(true))
	y += 2

	r.screen.DrawText(marginX, y, fmt.Sprintf("Misses: %d/%d", v.Stage, v.MaxStage), tcell.StyleDefault)
	y++
	r.screen.DrawText(marginX, y, "Used: "+UsedLine(v.Used), tcell.StyleDefault.Foreground(tcell.ColorGray))
	y += 2

	inputStyle := tcell.StyleDefault
	if v.Input != "" && !v.InputValid {
		inputStyle = inputStyle.Foreground(tcell.ColorRed)
	}
	x := r.screen.DrawText(marginX, y, "> ", tcell.StyleDefault)
	r.screen.DrawText(x, y, v.Input, inputStyle)
	y++

	if v.Message != "" {
		r.screen.DrawText(marginX, y, v.Message, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}
	y += 2

	if banner := ResultBanner(v.Result, v.Word); banner != "" {
		r.screen.DrawText(marginX, y, banner, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))
	}

	r.screen.Show()
}

// FrameRows returns the rows the gallows area occupies in v.
func FrameRows(v View) int {
	rows := v.FrameRows
	if v.Frame != nil && len(v.Frame.Art) > rows {
		rows = len(v.Frame.Art)
	}
	return rows
}

// SpacedPattern separates pattern runes with spaces so placeholders stay distinct.
func SpacedPattern(pattern string) string {
	runes := []rune(pattern)
	parts := make([]string, len(runes))
	for i, ch := range runes {
		parts[i] = string(ch)
	}
	return strings.Join(parts, " ")
}

// UsedLine joins used letters for display.
func UsedLine(used []string) string {
	return strings.Join(used, ", ")
}

// ResultBanner returns the end-of-round text, or "" while a round is in progress.
func ResultBanner(result, word string) string {
	switch result {
	case "won":
		return fmt.Sprintf("You won! The word was %s.", word)
	case "lost":
		return fmt.Sprintf("You lost! The word was %s.", word)
	default:
		return ""
	}
}
