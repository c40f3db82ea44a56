// Package audio synthesizes and plays the celebration sound.
//
// Playback is best effort: when no audio device can be opened the player
// stays silent and the game carries on.
package audio

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config controls celebration playback.
type Config struct {
	Enabled      bool `env:"TAPCOUNT_AUDIO_ENABLED" envDefault:"true"`
	MasterVolume int  `env:"TAPCOUNT_MASTER_VOLUME" envDefault:"80"`    // 0-100
	SampleRate   int  `env:"TAPCOUNT_SAMPLE_RATE"   envDefault:"44100"` // Hz
}

// DefaultConfig returns the configuration used when the environment is empty.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 80,
		SampleRate:   44100,
	}
}

// LoadConfig reads the configuration from environment variables.
// Volume is clamped to 0-100 and a non-positive sample rate falls back to
// the default. If a variable cannot be parsed, the defaults are returned
// along with the error so the caller can warn and carry on.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("audio: parse environment: %w", err)
	}
	if cfg.MasterVolume < 0 {
		cfg.MasterVolume = 0
	}
	if cfg.MasterVolume > 100 {
		cfg.MasterVolume = 100
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	return cfg, nil
}

// Gain returns the master volume as a linear factor in [0, 1].
func (c Config) Gain() float64 {
	return float64(c.MasterVolume) / 100
}
