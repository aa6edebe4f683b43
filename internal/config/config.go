// Package config provides YAML-based configuration loading for the
// Grid Agent engine: movement timing, anomaly behavior, and scoring.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GridAgentConfig contains all tunable constants of the Grid Agent engine.
type GridAgentConfig struct {
	Timing    TimingConfig  `yaml:"timing"`
	Anomalies AnomalyConfig `yaml:"anomalies"`
	Scoring   ScoringConfig `yaml:"scoring"`
	UI        UIConfig      `yaml:"ui"`
}

// TimingConfig defines the movement intervals and the level transition pause.
type TimingConfig struct {
	Player            IntervalSchedule `yaml:"player"`
	Anomaly           IntervalSchedule `yaml:"anomaly"`
	TransitionPauseMS int              `yaml:"transition_pause_ms"`
}

// AnomalyConfig defines the anomaly roster size and pursuit behavior.
type AnomalyConfig struct {
	BaseCount   int     `yaml:"base_count"`   // Anomalies at level 1; +1 every second level
	ChaseChance float64 `yaml:"chase_chance"` // Probability of steering toward the player each move
	RerollEvery int     `yaml:"reroll_every"` // Forced direction re-roll period in moves
}

// ScoringConfig defines points awarded per pickup.
type ScoringConfig struct {
	Pellet  int `yaml:"pellet"`
	Anomaly int `yaml:"anomaly"`
}

// UIConfig defines presentation timings.
type UIConfig struct {
	PulseMS int `yaml:"pulse_ms"` // Duration of the anomaly counter highlight
}

// TransitionPause returns the level transition pause as a duration.
func (c GridAgentConfig) TransitionPause() time.Duration {
	return time.Duration(c.Timing.TransitionPauseMS) * time.Millisecond
}

// Pulse returns the anomaly counter highlight duration.
func (c GridAgentConfig) Pulse() time.Duration {
	return time.Duration(c.UI.PulseMS) * time.Millisecond
}

// Validate reports every invalid field of the configuration.
func (c GridAgentConfig) Validate() error {
	var errs []error

	if err := c.Timing.Player.validate("timing.player"); err != nil {
		errs = append(errs, err)
	}
	if err := c.Timing.Anomaly.validate("timing.anomaly"); err != nil {
		errs = append(errs, err)
	}
	if c.Timing.TransitionPauseMS < 0 {
		errs = append(errs, fmt.Errorf("timing.transition_pause_ms must not be negative, got %d", c.Timing.TransitionPauseMS))
	}
	if c.Anomalies.BaseCount < 1 {
		errs = append(errs, fmt.Errorf("anomalies.base_count must be at least 1, got %d", c.Anomalies.BaseCount))
	}
	if c.Anomalies.ChaseChance < 0 || c.Anomalies.ChaseChance > 1 {
		errs = append(errs, fmt.Errorf("anomalies.chase_chance must be within [0, 1], got %g", c.Anomalies.ChaseChance))
	}
	if c.Anomalies.RerollEvery < 1 {
		errs = append(errs, fmt.Errorf("anomalies.reroll_every must be at least 1, got %d", c.Anomalies.RerollEvery))
	}
	if c.Scoring.Pellet < 0 || c.Scoring.Anomaly < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}
	if c.UI.PulseMS < 0 {
		errs = append(errs, fmt.Errorf("ui.pulse_ms must not be negative, got %d", c.UI.PulseMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid gridagent config: %w", errors.Join(errs...))
	}
	return nil
}
