package count

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tapcount/internal/config"
)

// Status is the phase of the current round.
type Status int

const (
	StatusPlaying Status = iota
	StatusSuccess        // tap count matched the target
	StatusTooMany        // one tap past the target
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusSuccess:
		return "success"
	case StatusTooMany:
		return "too-many"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round is over and waiting for the next one.
func (s Status) Terminal() bool {
	return s == StatusSuccess || s == StatusTooMany
}

// RoundState is the observable state of one round.
type RoundState struct {
	Target   int
	TapCount int
	Status   Status
}

// Cue plays the celebration when a round is won.
// Implementations must return immediately and swallow their own failures.
type Cue interface {
	Celebrate()
}

// NopCue is a Cue that does nothing.
type NopCue struct{}

// Celebrate implements Cue.
func (NopCue) Celebrate() {}

// Timing holds how long a finished round stays on screen.
type Timing struct {
	SuccessDelay   time.Duration
	OvershootDelay time.Duration
}

// TimingFromConfig converts the YAML timing block.
func TimingFromConfig(cfg config.TimingConfig) Timing {
	return Timing{
		SuccessDelay:   cfg.SuccessDelay,
		OvershootDelay: cfg.OvershootDelay,
	}
}

// Controller is the round state machine.
//
// It is not safe for concurrent use: the host calls Tap, NewRound and Advance
// from a single event loop, and each call runs to completion.
type Controller struct {
	picker *Picker
	rng    *rand.Rand
	cue    Cue
	timing Timing

	state    RoundState
	confetti []ConfettiPiece
	balloons []Balloon

	next    transition
	elapsed time.Duration // time spent in the current status
	rounds  int           // rounds started since creation
}

// NewController creates a controller and starts the first round.
// A nil cue is replaced with NopCue.
func NewController(picker *Picker, rng *rand.Rand, cue Cue, timing Timing) *Controller {
	if cue == nil {
		cue = NopCue{}
	}
	c := &Controller{
		picker: picker,
		rng:    rng,
		cue:    cue,
		timing: timing,
	}
	c.state = RoundState{Target: picker.PickInitial(), Status: StatusPlaying}
	c.rounds = 1
	return c
}

// Tap registers one press of the button and reports whether it counted.
// Taps after the round has ended are dropped.
func (c *Controller) Tap() bool {
	if c.state.Status.Terminal() {
		return false
	}

	c.state.TapCount++

	switch {
	case c.state.TapCount == c.state.Target:
		c.setStatus(StatusSuccess)
		c.confetti = GenerateConfetti(c.rng)
		c.balloons = GenerateBalloons(c.rng)
		c.cue.Celebrate()
		c.next.schedule(c.timing.SuccessDelay)
	case c.state.TapCount > c.state.Target:
		c.setStatus(StatusTooMany)
		c.next.schedule(c.timing.OvershootDelay)
	}
	return true
}

// NewRound starts a fresh round with a target different from the last one.
// Any pending automatic transition is cancelled, so calling it early is safe.
func (c *Controller) NewRound() {
	c.next.cancel()
	c.state = RoundState{
		Target: c.picker.PickNext(c.state.Target),
		Status: StatusPlaying,
	}
	c.confetti = nil
	c.balloons = nil
	c.elapsed = 0
	c.rounds++
}

// Advance moves the controller clock forward by dt, starting the next round
// when a scheduled transition comes due.
func (c *Controller) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	c.elapsed += dt
	if c.next.advance(dt) {
		c.NewRound()
	}
}

func (c *Controller) setStatus(s Status) {
	c.state.Status = s
	c.elapsed = 0
}

// State returns the current round state.
func (c *Controller) State() RoundState {
	return c.state
}

// Elapsed returns how long the round has been in its current status.
func (c *Controller) Elapsed() time.Duration {
	return c.elapsed
}

// Rounds returns how many rounds have been started, including the current one.
func (c *Controller) Rounds() int {
	return c.rounds
}

// PendingTransition returns the time left before the next round starts
// automatically, and whether one is scheduled.
func (c *Controller) PendingTransition() (time.Duration, bool) {
	return c.next.Pending()
}

// Confetti returns the confetti of the current success, or nil.
// The slice is shared; callers must not modify it.
func (c *Controller) Confetti() []ConfettiPiece {
	return c.confetti
}

// Balloons returns the balloons of the current success, or nil.
// The slice is shared; callers must not modify it.
func (c *Controller) Balloons() []Balloon {
	return c.balloons
}

// Stars returns the twinkling stars shown during a success, or nil.
func (c *Controller) Stars() []Star {
	if c.state.Status != StatusSuccess {
		return nil
	}
	return Stars()
}

// Dots returns one entry per counted item: true for apples already tapped.
func (c *Controller) Dots() []bool {
	dots := make([]bool, c.state.Target)
	filled := min(c.state.TapCount, c.state.Target)
	for i := 0; i < filled; i++ {
		dots[i] = true
	}
	return dots
}
