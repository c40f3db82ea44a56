// Package count implements the counting game: a numeral is shown, the child
// taps the button that many times, and the round ends in a celebration or an
// "oops, too many" before the next numeral appears.
package count

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tapcount/internal/config"
	"github.com/vovakirdan/tapcount/internal/core"
)

// Game adapts the round controller to the platform's Reset/Step/Render loop.
type Game struct {
	cfg  config.CountConfig
	cue  Cue
	ctrl *Controller
	tick time.Duration

	// Screen dimensions
	screenW int
	screenH int
}

// New creates a counting game. Reset must be called before Step or Render.
func New(cfg config.CountConfig, cue Cue) *Game {
	if cue == nil {
		cue = NopCue{}
	}
	return &Game{cfg: cfg, cue: cue}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Number Game"
}

// Reset initializes the game with a fresh random source and a first round.
func (g *Game) Reset(rc core.RuntimeConfig) {
	rng := rand.New(rand.NewSource(rc.ResolveSeed()))
	picker := NewPicker(g.cfg.Range.Min, g.cfg.Range.Max, rng)
	g.ctrl = NewController(picker, rng, g.cue, TimingFromConfig(g.cfg.Timing))
	g.tick = rc.TickInterval()
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize updates the drawing area without touching the round.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// Step advances the clock by one tick and then applies the taps collected
// since the last tick, in order. A round won during this tick starts its
// delay on the next one.
func (g *Game) Step(in core.InputFrame) RoundState {
	g.ctrl.Advance(g.tick)
	for _, a := range in.Actions {
		if a == core.ActionTap {
			g.ctrl.Tap()
		}
	}
	return g.ctrl.State()
}

// State returns the current round state.
func (g *Game) State() RoundState {
	return g.ctrl.State()
}

// Controller exposes the underlying round controller.
func (g *Game) Controller() *Controller {
	return g.ctrl
}
