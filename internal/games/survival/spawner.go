package survival

import (
	"time"

	"github.com/vovakirdan/zombie-survival/internal/config"
	"github.com/vovakirdan/zombie-survival/internal/core"
)

// Rand is the randomness the spawner draws from. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Edge is a side of the field that zombies enter from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight

	edgeCount = 4
)

// Spawner creates zombies at the field edges on a shrinking interval.
// Each spawn shortens the interval by a fixed decrement until it reaches
// the floor, where it stays for the rest of the run.
type Spawner struct {
	rng       Rand
	field     core.Vec2
	interval  time.Duration
	decrement time.Duration
	floor     time.Duration
	lastSpawn time.Duration
	spawned   int

	fastProbability float64
	basicSpeed      float64
	fastSpeed       float64
}

// NewSpawner creates a spawner whose clock starts at simulated time zero.
func NewSpawner(cfg config.SurvivalConfig, rng Rand) *Spawner {
	return &Spawner{
		rng:             rng,
		field:           core.V(cfg.Field.Width, cfg.Field.Height),
		interval:        cfg.Spawner.InitialInterval,
		decrement:       cfg.Spawner.Decrement,
		floor:           cfg.Spawner.MinInterval,
		fastProbability: cfg.Enemies.FastProbability,
		basicSpeed:      cfg.Enemies.BasicSpeed,
		fastSpeed:       cfg.Enemies.FastSpeed,
	}
}

// MaybeSpawn returns a new zombie if at least one interval has passed
// since the previous spawn. now is simulated time since the run started.
func (s *Spawner) MaybeSpawn(now time.Duration) (Enemy, bool) {
	if now-s.lastSpawn < s.interval {
		return Enemy{}, false
	}

	e := Enemy{Kind: KindBasic, Pos: s.edgePosition(), Speed: s.basicSpeed}
	if s.rng.Float64() < s.fastProbability {
		e.Kind = KindFast
		e.Speed = s.fastSpeed
	}

	s.lastSpawn = now
	s.spawned++
	s.interval -= s.decrement
	if s.interval < s.floor {
		s.interval = s.floor
	}
	return e, true
}

// edgePosition picks a uniformly random point on a uniformly random edge.
func (s *Spawner) edgePosition() core.Vec2 {
	switch Edge(s.rng.Intn(edgeCount)) {
	case EdgeTop:
		return core.V(s.rng.Float64()*s.field.X, 0)
	case EdgeBottom:
		return core.V(s.rng.Float64()*s.field.X, s.field.Y)
	case EdgeLeft:
		return core.V(0, s.rng.Float64()*s.field.Y)
	default: // EdgeRight
		return core.V(s.field.X, s.rng.Float64()*s.field.Y)
	}
}

// Interval returns the current wait between spawns.
func (s *Spawner) Interval() time.Duration {
	return s.interval
}

// LastSpawn returns the simulated time of the most recent spawn.
func (s *Spawner) LastSpawn() time.Duration {
	return s.lastSpawn
}

// Spawned returns how many zombies this spawner has created.
func (s *Spawner) Spawned() int {
	return s.spawned
}
