package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const gridAgentFile = "gridagent.yaml"

// LoadGridAgent loads the Grid Agent configuration.
// Search order: customPath -> ~/.gridagent/configs/gridagent.yaml -> ./configs/gridagent.yaml -> embedded default.
// Files are decoded over the defaults, so a file may override only some fields.
func LoadGridAgent(customPath string) (GridAgentConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GridAgentConfig{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return Parse(data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(gridAgentFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", gridAgentFile)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := Parse(data, localPath); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGridAgentYAML, "embedded default")
	if err != nil {
		return DefaultGridAgentConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes a YAML document over the defaults and validates the result.
// source names the document in error messages.
func Parse(data []byte, source string) (GridAgentConfig, error) {
	cfg := DefaultGridAgentConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GridAgentConfig{}, fmt.Errorf("config: cannot parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return GridAgentConfig{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg GridAgentConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridagent", "configs", filename)
}
