// Package config loads runtime settings from WORDRECOG_* environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration.
type Config struct {
	// DBPath overrides the default SQLite location. Empty means XDG default.
	DBPath string `env:"WORDRECOG_DB"`

	// LogPath overrides the log file location. Empty means next to the DB.
	LogPath string `env:"WORDRECOG_LOG"`

	// Debug enables debug-level logging.
	Debug bool `env:"WORDRECOG_DEBUG" envDefault:"false"`

	Timing Timing
}

// Timing controls presentation and response windows.
type Timing struct {
	// DisplayTime is how long each word stays on screen while memorizing.
	DisplayTime time.Duration `env:"WORDRECOG_DISPLAY_TIME" envDefault:"2s"`

	// AnswerTime is the response window for each test trial.
	AnswerTime time.Duration `env:"WORDRECOG_ANSWER_TIME" envDefault:"2s"`

	// Tick is the countdown decrement during a trial.
	Tick time.Duration `env:"WORDRECOG_TICK" envDefault:"100ms"`
}

// DefaultTiming returns the study timing: 2s per word, 2s per answer, 100ms ticks.
func DefaultTiming() Timing {
	return Timing{
		DisplayTime: 2 * time.Second,
		AnswerTime:  2 * time.Second,
		Tick:        100 * time.Millisecond,
	}
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Timing.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the countdown divides evenly into ticks.
func (t Timing) Validate() error {
	if t.DisplayTime <= 0 {
		return fmt.Errorf("WORDRECOG_DISPLAY_TIME must be positive, got %s", t.DisplayTime)
	}
	if t.AnswerTime <= 0 {
		return fmt.Errorf("WORDRECOG_ANSWER_TIME must be positive, got %s", t.AnswerTime)
	}
	if t.Tick <= 0 || t.Tick > t.AnswerTime {
		return fmt.Errorf("WORDRECOG_TICK must be in (0, %s], got %s", t.AnswerTime, t.Tick)
	}
	if t.AnswerTime%t.Tick != 0 {
		return fmt.Errorf("WORDRECOG_ANSWER_TIME (%s) must be a multiple of WORDRECOG_TICK (%s)", t.AnswerTime, t.Tick)
	}
	return nil
}
