package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML(), "embedded")
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultGridAgentConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultGridAgentConfig())
	}
}

func TestIntervalScheduleAt(t *testing.T) {
	player := DefaultGridAgentConfig().Timing.Player
	anomaly := DefaultGridAgentConfig().Timing.Anomaly

	tests := []struct {
		level           int
		player, anomaly time.Duration
	}{
		{0, 100 * time.Millisecond, 180 * time.Millisecond},
		{1, 100 * time.Millisecond, 180 * time.Millisecond},
		{2, 92 * time.Millisecond, 165 * time.Millisecond},
		{3, 84 * time.Millisecond, 150 * time.Millisecond},
		{6, 60 * time.Millisecond, 105 * time.Millisecond},
		{7, 60 * time.Millisecond, 90 * time.Millisecond},
		{8, 60 * time.Millisecond, 80 * time.Millisecond},
		{50, 60 * time.Millisecond, 80 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := player.At(tc.level); got != tc.player {
			t.Errorf("player.At(%d) = %v, expected %v", tc.level, got, tc.player)
		}
		if got := anomaly.At(tc.level); got != tc.anomaly {
			t.Errorf("anomaly.At(%d) = %v, expected %v", tc.level, got, tc.anomaly)
		}
	}
}

func TestParsePartialOverride(t *testing.T) {
	doc := []byte("anomalies:\n  base_count: 3\nscoring:\n  pellet: 5\n")

	cfg, err := Parse(doc, "partial")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Anomalies.BaseCount != 3 {
		t.Errorf("BaseCount = %d, expected 3", cfg.Anomalies.BaseCount)
	}
	if cfg.Scoring.Pellet != 5 {
		t.Errorf("Pellet = %d, expected 5", cfg.Scoring.Pellet)
	}
	// Untouched fields keep their defaults
	if cfg.Anomalies.ChaseChance != 0.3 || cfg.Scoring.Anomaly != 100 {
		t.Errorf("defaults not preserved: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GridAgentConfig)
		wantErr string
	}{
		{"defaults", func(*GridAgentConfig) {}, ""},
		{"floor above base", func(c *GridAgentConfig) { c.Timing.Player.FloorMS = 200 }, "timing.player.base_ms"},
		{"zero floor", func(c *GridAgentConfig) { c.Timing.Anomaly.FloorMS = 0 }, "timing.anomaly.floor_ms"},
		{"no anomalies", func(c *GridAgentConfig) { c.Anomalies.BaseCount = 0 }, "base_count"},
		{"chance above one", func(c *GridAgentConfig) { c.Anomalies.ChaseChance = 1.5 }, "chase_chance"},
		{"zero reroll", func(c *GridAgentConfig) { c.Anomalies.RerollEvery = 0 }, "reroll_every"},
		{"negative pause", func(c *GridAgentConfig) { c.Timing.TransitionPauseMS = -1 }, "transition_pause_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultGridAgentConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadGridAgentCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("timing:\n  transition_pause_ms: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGridAgent(path)
	if err != nil {
		t.Fatalf("LoadGridAgent() failed: %v", err)
	}
	if cfg.TransitionPause() != 500*time.Millisecond {
		t.Errorf("TransitionPause() = %v, expected 500ms", cfg.TransitionPause())
	}

	if _, err := LoadGridAgent(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadGridAgent should fail for a missing custom path")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("anomalies:\n  reroll_every: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGridAgent(bad); err == nil {
		t.Error("LoadGridAgent should reject an invalid config")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultGridAgentConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "chase_chance: 0.3") {
		t.Errorf("encoded YAML missing chase_chance:\n%s", data)
	}
	cfg, err := Parse(data, "marshalled")
	if err != nil {
		t.Fatalf("Parse(marshalled) failed: %v", err)
	}
	if cfg != DefaultGridAgentConfig() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}
