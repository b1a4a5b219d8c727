// Package config provides YAML-based configuration loading for the
// survival game. Every value defaults to the compiled-in tuning; a YAML
// file may override any subset.
package config

import "time"

// SurvivalConfig contains all configuration for the survival game.
type SurvivalConfig struct {
	Field      FieldConfig     `yaml:"field"`
	Player     PlayerConfig    `yaml:"player"`
	Enemies    EnemiesConfig   `yaml:"enemies"`
	Combat     CombatConfig    `yaml:"combat"`
	Spawner    SpawnerConfig   `yaml:"spawner"`
	Timing     TimingConfig    `yaml:"timing"`
	Input      InputConfig     `yaml:"input"`
	StartHorde []StartPosition `yaml:"start_horde"`
}

// FieldConfig defines the playing field size in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player's starting state.
type PlayerConfig struct {
	Speed  float64 `yaml:"speed"` // units per second
	Health int     `yaml:"health"`
}

// EnemiesConfig defines per-variant enemy parameters.
type EnemiesConfig struct {
	BasicSpeed      float64 `yaml:"basic_speed"`
	FastSpeed       float64 `yaml:"fast_speed"`
	FastProbability float64 `yaml:"fast_probability"` // chance a spawn is the fast variant
}

// CombatConfig defines contact damage.
type CombatConfig struct {
	CollisionRadius float64 `yaml:"collision_radius"` // strict: distance < radius collides
	Damage          int     `yaml:"damage"`           // per colliding enemy per tick
}

// SpawnerConfig defines the spawn-rate ramp.
type SpawnerConfig struct {
	InitialInterval time.Duration `yaml:"initial_interval"`
	Decrement       time.Duration `yaml:"decrement"`
	MinInterval     time.Duration `yaml:"min_interval"`
}

// TimingConfig defines loop pacing and scoring cadence.
type TimingConfig struct {
	TickInterval  time.Duration `yaml:"tick_interval"`
	ScoreInterval time.Duration `yaml:"score_interval"`
}

// InputConfig defines terminal key handling.
type InputConfig struct {
	// HoldWindow is how long a key counts as held after its last press.
	// Terminals report presses and auto-repeat but never releases.
	HoldWindow time.Duration `yaml:"hold_window"`
}

// StartPosition is an enemy present when a run begins.
type StartPosition struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Fast bool    `yaml:"fast"`
}
