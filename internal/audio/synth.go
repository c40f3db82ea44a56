package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Waveform selects an oscillator shape.
type Waveform int

const (
	WaveTriangle Waveform = iota
	WaveSquare
)

// envelopeFloor is the near-silent level envelopes start from and decay to.
// Exponential ramps cannot start at zero.
const envelopeFloor = 0.0001

// Voice is one oscillator with an attack-decay envelope.
// All offsets are measured from the start of the celebration.
type Voice struct {
	Freq   float64
	Wave   Waveform
	Peak   float64
	Start  time.Duration
	Attack time.Duration // peak is reached at Start+Attack
	Decay  time.Duration // back to the floor at Start+Decay
	Stop   time.Duration // oscillator silenced at Start+Stop
}

// CelebrationVoices returns the "ta-dah": G4 C5 E5 G5 rising, then a C major chord.
func CelebrationVoices() []Voice {
	melody := []struct {
		freq float64
		at   time.Duration
	}{
		{392.00, 0},                      // G4
		{523.25, 220 * time.Millisecond}, // C5
		{659.25, 440 * time.Millisecond}, // E5
		{784.00, 660 * time.Millisecond}, // G5
	}

	voices := make([]Voice, 0, len(melody)+3)
	for i, n := range melody {
		wave := WaveTriangle
		if i == len(melody)-1 {
			wave = WaveSquare
		}
		voices = append(voices, Voice{
			Freq:   n.freq,
			Wave:   wave,
			Peak:   0.6,
			Start:  n.at,
			Attack: 70 * time.Millisecond,
			Decay:  450 * time.Millisecond,
			Stop:   600 * time.Millisecond,
		})
	}

	const chordStart = 950 * time.Millisecond
	for _, freq := range []float64{523.25, 659.25, 784.00} { // C5 E5 G5
		voices = append(voices, Voice{
			Freq:   freq,
			Wave:   WaveSquare,
			Peak:   0.5,
			Start:  chordStart,
			Attack: 60 * time.Millisecond,
			Decay:  600 * time.Millisecond,
			Stop:   700 * time.Millisecond,
		})
	}
	return voices
}

// End returns when the voice falls silent.
func (v Voice) End() time.Duration {
	return v.Start + v.Stop
}

// Amplitude returns the envelope level at time t.
func (v Voice) Amplitude(t time.Duration) float64 {
	if t < v.Start || t >= v.End() {
		return 0
	}
	local := (t - v.Start).Seconds()
	attack := v.Attack.Seconds()
	decay := v.Decay.Seconds()

	switch {
	case local < attack:
		return expRamp(envelopeFloor, v.Peak, local/attack)
	case local < decay:
		return expRamp(v.Peak, envelopeFloor, (local-attack)/(decay-attack))
	default:
		return envelopeFloor
	}
}

// expRamp interpolates exponentially from a to b as p goes from 0 to 1.
func expRamp(a, b, p float64) float64 {
	return a * math.Pow(b/a, p)
}

// sample returns the raw oscillator value at time t.
func (v Voice) sample(t time.Duration) float64 {
	phase := v.Freq * (t - v.Start).Seconds()
	phase -= math.Floor(phase)

	switch v.Wave {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	default:
		return 1 - 4*math.Abs(phase-0.5)
	}
}

// CelebrationDuration returns the length of the celebration.
func CelebrationDuration() time.Duration {
	var end time.Duration
	for _, v := range CelebrationVoices() {
		end = max(end, v.End())
	}
	return end
}

// Synth renders a set of voices as a finite beep.Streamer.
type Synth struct {
	voices []Voice
	sr     beep.SampleRate
	gain   float64
	pos    int
	total  int
}

// NewCelebration returns a streamer playing the celebration once at the given gain.
func NewCelebration(sr beep.SampleRate, gain float64) *Synth {
	return NewSynth(CelebrationVoices(), sr, gain)
}

// NewSynth returns a streamer mixing the voices until the last one stops.
func NewSynth(voices []Voice, sr beep.SampleRate, gain float64) *Synth {
	var end time.Duration
	for _, v := range voices {
		end = max(end, v.End())
	}
	return &Synth{
		voices: voices,
		sr:     sr,
		gain:   gain,
		total:  sr.N(end),
	}
}

// Stream implements beep.Streamer. Output is mono, duplicated to both channels.
func (s *Synth) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= s.total {
		return 0, false
	}
	for i := range samples {
		if s.pos >= s.total {
			break
		}
		t := s.sr.D(s.pos)
		var mix float64
		for _, v := range s.voices {
			if amp := v.Amplitude(t); amp > 0 {
				mix += amp * v.sample(t)
			}
		}
		mix = math.Max(-1, math.Min(1, mix*s.gain))
		samples[i][0] = mix
		samples[i][1] = mix
		s.pos++
		n++
	}
	return n, true
}

// Err implements beep.Streamer.
func (s *Synth) Err() error {
	return nil
}

// Len returns the total number of samples.
func (s *Synth) Len() int {
	return s.total
}
