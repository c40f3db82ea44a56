package audio

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// ErrNoAudioDevice is returned when playback is requested without a device.
var ErrNoAudioDevice = errors.New("audio: no audio device available")

// Player plays the celebration on the local sound device.
// It satisfies the game's cue interface: Celebrate never blocks and never fails.
type Player struct {
	cfg    Config
	sr     beep.SampleRate
	logger *log.Logger

	ready atomic.Bool
	muted atomic.Bool
}

// NewPlayer opens the speaker. When audio is disabled or no device can be
// opened, the returned player is silent.
func NewPlayer(cfg Config, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Player{
		cfg:    cfg,
		sr:     beep.SampleRate(cfg.SampleRate),
		logger: logger,
	}

	if !cfg.Enabled {
		logger.Debug("audio disabled by configuration")
		return p
	}

	if err := speaker.Init(p.sr, p.sr.N(time.Second/10)); err != nil {
		logger.Debug("no audio device, celebration will be silent", "error", err)
		return p
	}
	p.ready.Store(true)
	logger.Debug("audio ready", "sample_rate", cfg.SampleRate, "volume", cfg.MasterVolume)
	return p
}

// Celebrate starts the celebration and returns immediately.
func (p *Player) Celebrate() {
	if !p.ready.Load() || p.muted.Load() {
		return
	}
	speaker.Play(NewCelebration(p.sr, p.cfg.Gain()))
}

// PlayAndWait plays the celebration and blocks until it finishes or ctx is done.
func (p *Player) PlayAndWait(ctx context.Context) error {
	if !p.ready.Load() {
		return ErrNoAudioDevice
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(NewCelebration(p.sr, p.cfg.Gain()), beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

// ToggleMute flips the mute state and reports whether sound is now on.
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

// IsMuted reports whether the player is muted.
func (p *Player) IsMuted() bool {
	return p.muted.Load()
}

// Available reports whether a sound device is open.
func (p *Player) Available() bool {
	return p.ready.Load()
}

// Close releases the sound device.
func (p *Player) Close() {
	if p.ready.CompareAndSwap(true, false) {
		speaker.Close()
	}
}

// Bell celebrates by ringing the terminal bell on w.
// It is the cue for remote sessions, where the server's speaker is useless.
type Bell struct {
	w     io.Writer
	muted atomic.Bool
}

// NewBell returns a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Celebrate rings the bell. Write errors are ignored.
func (b *Bell) Celebrate() {
	if b.muted.Load() {
		return
	}
	_, _ = io.WriteString(b.w, "\a")
}

// ToggleMute flips the mute state and reports whether the bell is now on.
func (b *Bell) ToggleMute() bool {
	muted := !b.muted.Load()
	b.muted.Store(muted)
	return !muted
}
