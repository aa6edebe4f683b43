package config

import (
	_ "embed"
)

//go:embed defaults/gridagent.yaml
var defaultGridAgentYAML []byte

// DefaultGridAgentConfig returns the built-in Grid Agent configuration.
// It mirrors defaults/gridagent.yaml.
func DefaultGridAgentConfig() GridAgentConfig {
	return GridAgentConfig{
		Timing: TimingConfig{
			Player: IntervalSchedule{
				BaseMS:  100,
				FloorMS: 60,
				StepMS:  8,
			},
			Anomaly: IntervalSchedule{
				BaseMS:  180,
				FloorMS: 80,
				StepMS:  15,
			},
			TransitionPauseMS: 1500,
		},
		Anomalies: AnomalyConfig{
			BaseCount:   6,
			ChaseChance: 0.3,
			RerollEvery: 5,
		},
		Scoring: ScoringConfig{
			Pellet:  10,
			Anomaly: 100,
		},
		UI: UIConfig{
			PulseMS: 400,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGridAgentYAML
}
