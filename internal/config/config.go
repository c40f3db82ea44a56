// Package config provides YAML-based configuration loading for the counting game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by Validate.
var (
	ErrRangeTooSmall = errors.New("config: range must contain at least two numbers")
	ErrInvalidRange  = errors.New("config: invalid range")
	ErrInvalidDelay  = errors.New("config: delays must be positive")
)

// CountConfig contains all configuration for the counting game.
type CountConfig struct {
	Range  RangeConfig  `yaml:"range"`
	Timing TimingConfig `yaml:"timing"`
}

// RangeConfig bounds the numerals the game picks from (inclusive).
type RangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Size returns how many distinct numerals the range holds.
func (r RangeConfig) Size() int {
	return r.Max - r.Min + 1
}

// TimingConfig defines how long a finished round stays on screen.
type TimingConfig struct {
	SuccessDelay   time.Duration `yaml:"success_delay"`
	OvershootDelay time.Duration `yaml:"overshoot_delay"`
}

// Validate checks the configuration for values the game cannot play with.
//
// A single-number range is rejected: every new round must show a different
// number than the one before it.
func (c CountConfig) Validate() error {
	if c.Range.Min < 1 {
		return fmt.Errorf("%w: min %d must be at least 1", ErrInvalidRange, c.Range.Min)
	}
	if c.Range.Max < c.Range.Min {
		return fmt.Errorf("%w: max %d is below min %d", ErrInvalidRange, c.Range.Max, c.Range.Min)
	}
	if c.Range.Size() < 2 {
		return fmt.Errorf("%w: got [%d, %d]", ErrRangeTooSmall, c.Range.Min, c.Range.Max)
	}
	if c.Timing.SuccessDelay <= 0 || c.Timing.OvershootDelay <= 0 {
		return fmt.Errorf("%w: success=%s overshoot=%s", ErrInvalidDelay, c.Timing.SuccessDelay, c.Timing.OvershootDelay)
	}
	return nil
}
