package survival

import (
	"fmt"
	"time"

	"github.com/vovakirdan/zombie-survival/internal/config"
	"github.com/vovakirdan/zombie-survival/internal/core"
)

// Phase is the lifecycle state of a run.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EventKind identifies what happened during a step.
type EventKind uint8

const (
	EventCollision EventKind = iota // a zombie touched the player
	EventSpawn                      // a zombie entered the field
	EventGameOver                   // health reached zero
)

// Event is a notable occurrence during one step, reported for logging.
type Event struct {
	Kind   EventKind
	Enemy  Kind      // variant involved, for collision and spawn
	Pos    core.Vec2 // where it happened
	Health int       // player health after the event
	Score  int
	At     time.Duration // simulated time
}

// Message implements core.Event.
func (e Event) Message() string {
	switch e.Kind {
	case EventCollision:
		return "player collided with a zombie"
	case EventSpawn:
		return "zombie spawned"
	case EventGameOver:
		return "game over"
	default:
		return "unknown event"
	}
}

// KeyVals implements core.Event.
func (e Event) KeyVals() []any {
	switch e.Kind {
	case EventCollision:
		return []any{"zombie", e.Enemy, "health", e.Health, "at", e.At}
	case EventSpawn:
		return []any{"zombie", e.Enemy, "pos", fmt.Sprintf("(%.0f,%.0f)", e.Pos.X, e.Pos.Y), "at", e.At}
	default:
		return []any{"score", e.Score, "at", e.At}
	}
}

// StepResult reports what a single step did.
type StepResult struct {
	Phase  Phase
	Events []Event // valid until the next Step
}

// World owns all simulation state for one run: the player, the horde,
// the spawner and every timer. It reads no clock; Step is handed the
// elapsed time explicitly.
type World struct {
	cfg       config.SurvivalConfig
	player    Player
	enemies   []Enemy
	spawner   *Spawner
	phase     Phase
	score     int
	now       time.Duration // simulated time since the run began
	lastScore time.Duration // simulated time of the last score increment
	tick      uint64
	events    []Event
}

// NewWorld starts a run with the player in the middle of the field and the
// configured starting horde.
func NewWorld(cfg config.SurvivalConfig, rng Rand) *World {
	w := &World{
		cfg: cfg,
		player: Player{
			Pos:    core.V(cfg.Field.Width/2, cfg.Field.Height/2),
			Speed:  cfg.Player.Speed,
			Health: cfg.Player.Health,
		},
		enemies: make([]Enemy, 0, len(cfg.StartHorde)+16),
		spawner: NewSpawner(cfg, rng),
		phase:   PhasePlaying,
	}
	for _, sp := range cfg.StartHorde {
		kind := KindBasic
		if sp.Fast {
			kind = KindFast
		}
		w.enemies = append(w.enemies, w.newEnemy(kind, core.V(sp.X, sp.Y)))
	}
	return w
}

func (w *World) newEnemy(kind Kind, pos core.Vec2) Enemy {
	speed := w.cfg.Enemies.BasicSpeed
	if kind == KindFast {
		speed = w.cfg.Enemies.FastSpeed
	}
	return Enemy{Kind: kind, Pos: pos, Speed: speed}
}

// Step advances the simulation by elapsed time with the given held keys.
// Once the run is over Step is a no-op.
func (w *World) Step(held core.Keys, elapsed time.Duration) StepResult {
	w.events = w.events[:0]
	if w.phase == PhaseGameOver {
		return StepResult{Phase: w.phase}
	}

	w.tick++
	w.now += elapsed

	w.player.Pos = MovePlayer(w.player.Pos, held, w.player.Speed, elapsed)

	target := w.player.Pos
	for i := range w.enemies {
		w.enemies[i].Pos = Advance(w.enemies[i].Pos, target, w.enemies[i].Speed, elapsed)
	}

	// Every zombie in contact bites once per tick.
	for _, e := range w.enemies {
		if Touching(w.player, e, w.cfg.Combat.CollisionRadius) {
			w.player.Health -= w.cfg.Combat.Damage
			w.emit(Event{Kind: EventCollision, Enemy: e.Kind, Pos: e.Pos})
		}
	}

	// The dying tick still scores and spawns; only later steps are inert.
	dead := w.player.Dead()
	if dead {
		w.phase = PhaseGameOver
	}

	if w.now-w.lastScore >= w.cfg.Timing.ScoreInterval {
		w.score++
		w.lastScore = w.now
	}

	if e, ok := w.spawner.MaybeSpawn(w.now); ok {
		w.enemies = append(w.enemies, e)
		w.emit(Event{Kind: EventSpawn, Enemy: e.Kind, Pos: e.Pos})
	}

	if dead {
		w.emit(Event{Kind: EventGameOver, Pos: w.player.Pos})
	}
	return StepResult{Phase: w.phase, Events: w.events}
}

func (w *World) emit(e Event) {
	e.Health = w.player.Health
	e.Score = w.score
	e.At = w.now
	w.events = append(w.events, e)
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Enemies returns the live horde. The slice must not be modified.
func (w *World) Enemies() []Enemy {
	return w.enemies
}

// Phase returns the lifecycle state.
func (w *World) Phase() Phase {
	return w.phase
}

// Score returns the number of score intervals survived.
func (w *World) Score() int {
	return w.score
}

// Now returns the simulated time since the run began.
func (w *World) Now() time.Duration {
	return w.now
}

// Tick returns the number of steps simulated.
func (w *World) Tick() uint64 {
	return w.tick
}

// Spawner exposes the spawn scheduler for inspection.
func (w *World) Spawner() *Spawner {
	return w.spawner
}
