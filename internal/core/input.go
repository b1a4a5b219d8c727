package core

import "strings"

// Key is one of the four movement directions the player can hold.
type Key uint8

const (
	KeyUp Key = 1 << iota
	KeyDown
	KeyLeft
	KeyRight
)

// AllKeys lists the movement keys in a stable order.
var AllKeys = [...]Key{KeyUp, KeyDown, KeyLeft, KeyRight}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Keys is the set of movement keys held during one simulation tick.
// The zero value is the empty set.
type Keys uint8

// NewKeys builds a set from the given keys.
func NewKeys(keys ...Key) Keys {
	var s Keys
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// Has reports whether k is held.
func (s Keys) Has(k Key) bool {
	return s&Keys(k) != 0
}

// With returns the set with k added.
func (s Keys) With(k Key) Keys {
	return s | Keys(k)
}

// Without returns the set with k removed.
func (s Keys) Without(k Key) Keys {
	return s &^ Keys(k)
}

// Empty reports whether no key is held.
func (s Keys) Empty() bool {
	return s == 0
}

func (s Keys) String() string {
	if s.Empty() {
		return "none"
	}
	names := make([]string, 0, len(AllKeys))
	for _, k := range AllKeys {
		if s.Has(k) {
			names = append(names, k.String())
		}
	}
	return strings.Join(names, "+")
}
