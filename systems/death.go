package systems

import (
	"github.com/automoto/jumpingalien/components"
	"github.com/yohamta/donburi"
)

// Reason says why an entity left the world.
type Reason int

const (
	ReasonOutOfBounds Reason = iota
	ReasonNoHitpoints
	ReasonEaten
)

func (r Reason) String() string {
	switch r {
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonNoHitpoints:
		return "no hitpoints"
	case ReasonEaten:
		return "eaten"
	}
	return "unknown"
}

// Terminator detaches an entity from its world. Implementations must tolerate
// entries that are no longer valid.
type Terminator func(e *donburi.Entry, reason Reason)

// Remove takes e out of the collision space and the entity store.
func Remove(level *components.LevelData, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
		level.Space.Remove(obj.Object)
	}
	e.World.Remove(e.Entity())
}
