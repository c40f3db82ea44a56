package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/count.yaml
var defaultCountYAML []byte

// DefaultCountConfig returns the default counting game configuration.
func DefaultCountConfig() CountConfig {
	return CountConfig{
		Range: RangeConfig{
			Min: 1,
			Max: 5,
		},
		Timing: TimingConfig{
			SuccessDelay:   1200 * time.Millisecond,
			OvershootDelay: 900 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCountYAML
}
