package config

import (
	"fmt"
	"time"
)

// IntervalSchedule tightens a movement interval as levels advance:
// interval(level) = max(floor, base - step*(level-1)).
type IntervalSchedule struct {
	BaseMS  int `yaml:"base_ms"`
	FloorMS int `yaml:"floor_ms"`
	StepMS  int `yaml:"step_ms"`
}

// At returns the interval for the given 1-based level.
// Levels below 1 are treated as level 1.
func (s IntervalSchedule) At(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	ms := max(s.FloorMS, s.BaseMS-s.StepMS*(level-1))
	return time.Duration(ms) * time.Millisecond
}

func (s IntervalSchedule) validate(name string) error {
	switch {
	case s.FloorMS <= 0:
		return fmt.Errorf("%s.floor_ms must be positive, got %d", name, s.FloorMS)
	case s.BaseMS < s.FloorMS:
		return fmt.Errorf("%s.base_ms (%d) must not be below floor_ms (%d)", name, s.BaseMS, s.FloorMS)
	case s.StepMS < 0:
		return fmt.Errorf("%s.step_ms must not be negative, got %d", name, s.StepMS)
	}
	return nil
}
