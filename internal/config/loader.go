package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultsSource is the source name reported for the embedded configuration.
const DefaultsSource = "embedded defaults"

// LoadInvaders loads the invaders configuration and reports where it came from.
// Search order: customPath -> ~/.invaders/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
//
// Fields missing from a file keep their default values. A custom path that cannot be
// read, parsed or validated is an error; the implicit locations are skipped silently.
func LoadInvaders(customPath string) (InvadersConfig, string, error) {
	if customPath != "" {
		cfg, err := loadInvadersFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		if cfg, err := loadInvadersFile(userCfgPath); err == nil {
			return cfg, userCfgPath, nil
		}
	}

	localPath := filepath.Join("configs", "invaders.yaml")
	if cfg, err := loadInvadersFile(localPath); err == nil {
		return cfg, localPath, nil
	}

	cfg := DefaultInvadersConfig()
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), DefaultsSource, nil // Fallback to hardcoded if embed fails
	}
	return cfg, DefaultsSource, nil
}

// loadInvadersFile reads one YAML file on top of the defaults and validates the result.
func loadInvadersFile(path string) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invaders", "configs", filename)
}
