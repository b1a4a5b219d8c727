package survival

import (
	"time"

	"github.com/vovakirdan/zombie-survival/internal/core"
)

// EnemyView is a zombie as a renderer sees it.
type EnemyView struct {
	Kind Kind
	Pos  core.Vec2
}

// Snapshot is the authoritative per-tick view of a run handed to renderers,
// and doubles as the comparison unit for determinism tests.
type Snapshot struct {
	Tick          uint64
	Elapsed       time.Duration
	Phase         Phase
	Field         core.Vec2 // width and height
	Player        core.Vec2
	Health        int
	Score         int
	Enemies       []EnemyView
	SpawnInterval time.Duration
}

// Snapshot captures the current state. The result shares nothing with the world.
func (w *World) Snapshot() Snapshot {
	enemies := make([]EnemyView, len(w.enemies))
	for i, e := range w.enemies {
		enemies[i] = EnemyView{Kind: e.Kind, Pos: e.Pos}
	}

	return Snapshot{
		Tick:          w.tick,
		Elapsed:       w.now,
		Phase:         w.phase,
		Field:         core.V(w.cfg.Field.Width, w.cfg.Field.Height),
		Player:        w.player.Pos,
		Health:        w.player.Health,
		Score:         w.score,
		Enemies:       enemies,
		SpawnInterval: w.spawner.Interval(),
	}
}

// GameOver reports whether the snapshot was taken after the run ended.
func (s Snapshot) GameOver() bool {
	return s.Phase == PhaseGameOver
}
