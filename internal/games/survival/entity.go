package survival

import "github.com/vovakirdan/zombie-survival/internal/core"

// Kind tags the enemy variant. Variants differ only in speed and color.
type Kind uint8

const (
	KindBasic Kind = iota
	KindFast
)

// String returns a human-readable name for the variant.
func (k Kind) String() string {
	switch k {
	case KindBasic:
		return "basic"
	case KindFast:
		return "fast"
	default:
		return "unknown"
	}
}

// Positioned is anything with a place on the field.
// It is all the collision detector and renderers need.
type Positioned interface {
	Position() core.Vec2
}

// Player is the entity controlled by the held movement keys.
type Player struct {
	Pos    core.Vec2
	Speed  float64 // units per second
	Health int
}

// Position implements Positioned.
func (p Player) Position() core.Vec2 {
	return p.Pos
}

// Dead reports whether health has dropped to zero or below.
func (p Player) Dead() bool {
	return p.Health <= 0
}

// Enemy is a zombie seeking the player.
type Enemy struct {
	Kind  Kind
	Pos   core.Vec2
	Speed float64 // units per second
}

// Position implements Positioned.
func (e Enemy) Position() core.Vec2 {
	return e.Pos
}

var (
	_ Positioned = Player{}
	_ Positioned = Enemy{}
)
