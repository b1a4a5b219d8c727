package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if !reflect.DeepEqual(cfg, DefaultSurvivalConfig()) {
		t.Errorf("embedded YAML differs from hardcoded defaults:\n got  %+v\n want %+v", cfg, DefaultSurvivalConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	data := []byte(`
spawner:
  initial_interval: 3s
start_horde: []
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Spawner.InitialInterval != 3*time.Second {
		t.Errorf("InitialInterval = %s, expected 3s", cfg.Spawner.InitialInterval)
	}
	// Untouched keys keep their defaults
	if cfg.Spawner.Decrement != 100*time.Millisecond {
		t.Errorf("Decrement = %s, expected default 100ms", cfg.Spawner.Decrement)
	}
	if cfg.Player.Speed != 100 {
		t.Errorf("Player.Speed = %g, expected default 100", cfg.Player.Speed)
	}
	if len(cfg.StartHorde) != 0 {
		t.Errorf("StartHorde should be emptied, got %d entries", len(cfg.StartHorde))
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"negative speed", "player: {speed: -1}", "player speed"},
		{"inverted spawn range", "spawner: {initial_interval: 500ms, min_interval: 1s}", "spawner intervals"},
		{"probability above one", "enemies: {fast_probability: 1.5}", "fast_probability"},
		{"zero radius", "combat: {collision_radius: 0}", "collision_radius"},
		{"malformed", "field: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("combat: {damage: 25}\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Combat.Damage != 25 {
		t.Errorf("Damage = %d, expected 25", cfg.Combat.Damage)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing custom path should fail")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultSurvivalConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "initial_interval: 5s") {
		t.Errorf("durations should encode as strings, got:\n%s", data)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSurvivalConfig()) {
		t.Error("marshalled defaults should parse back to the defaults")
	}
}
