package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "survival.yaml"

// Load loads the survival configuration.
// Search order: customPath -> ~/.survival/configs/survival.yaml -> ./configs/survival.yaml -> embedded default.
// Files are layered over the compiled-in defaults, so a file only needs the keys it changes.
func Load(customPath string) (SurvivalConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SurvivalConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return SurvivalConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSurvivalYAML)
	if err != nil {
		return DefaultSurvivalConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the compiled-in defaults and validates the result.
func Parse(data []byte) (SurvivalConfig, error) {
	cfg := DefaultSurvivalConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SurvivalConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SurvivalConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SurvivalConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate reports every out-of-range value in the configuration.
func (c SurvivalConfig) Validate() error {
	var errs []error
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field size must be positive, got %gx%g", c.Field.Width, c.Field.Height))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player speed must be positive, got %g", c.Player.Speed))
	}
	if c.Player.Health <= 0 {
		errs = append(errs, fmt.Errorf("player health must be positive, got %d", c.Player.Health))
	}
	if c.Enemies.BasicSpeed <= 0 || c.Enemies.FastSpeed <= 0 {
		errs = append(errs, errors.New("enemy speeds must be positive"))
	}
	if c.Enemies.FastProbability < 0 || c.Enemies.FastProbability > 1 {
		errs = append(errs, fmt.Errorf("fast_probability must be within [0, 1], got %g", c.Enemies.FastProbability))
	}
	if c.Combat.CollisionRadius <= 0 {
		errs = append(errs, fmt.Errorf("collision_radius must be positive, got %g", c.Combat.CollisionRadius))
	}
	if c.Combat.Damage < 0 {
		errs = append(errs, fmt.Errorf("damage must not be negative, got %d", c.Combat.Damage))
	}
	if c.Spawner.MinInterval <= 0 || c.Spawner.InitialInterval < c.Spawner.MinInterval {
		errs = append(errs, fmt.Errorf("spawner intervals must satisfy 0 < min_interval <= initial_interval, got %s and %s",
			c.Spawner.MinInterval, c.Spawner.InitialInterval))
	}
	if c.Spawner.Decrement < 0 {
		errs = append(errs, fmt.Errorf("spawner decrement must not be negative, got %s", c.Spawner.Decrement))
	}
	if c.Timing.TickInterval <= 0 || c.Timing.ScoreInterval <= 0 {
		errs = append(errs, errors.New("tick_interval and score_interval must be positive"))
	}
	if c.Input.HoldWindow <= 0 {
		errs = append(errs, fmt.Errorf("hold_window must be positive, got %s", c.Input.HoldWindow))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".survival", "configs", filename)
}
