package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

// DefaultSurvivalConfig returns the compiled-in survival configuration.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Speed:  100,
			Health: 100,
		},
		Enemies: EnemiesConfig{
			BasicSpeed:      50,
			FastSpeed:       85,
			FastProbability: 0.2,
		},
		Combat: CombatConfig{
			CollisionRadius: 5,
			Damage:          10,
		},
		Spawner: SpawnerConfig{
			InitialInterval: 5 * time.Second,
			Decrement:       100 * time.Millisecond,
			MinInterval:     time.Second,
		},
		Timing: TimingConfig{
			TickInterval:  16 * time.Millisecond,
			ScoreInterval: time.Second,
		},
		Input: InputConfig{
			HoldWindow: 300 * time.Millisecond,
		},
		StartHorde: []StartPosition{
			{X: 100, Y: 100},
			{X: 700, Y: 500},
			{X: 200, Y: 400},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSurvivalYAML
}
