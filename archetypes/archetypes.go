package archetypes

import (
	"github.com/automoto/jumpingalien/components"
	"github.com/automoto/jumpingalien/tags"
	"github.com/yohamta/donburi"
)

var (
	Level = newArchetype(
		components.Level,
	)
	Player = newArchetype(
		tags.Player,
		components.Kind,
		components.Player,
		components.Object,
		components.Physics,
		components.Health,
		components.Exposure,
		components.Sprite,
	)
	Plant = newArchetype(
		tags.Creature,
		tags.Plant,
		components.Kind,
		components.Object,
		components.Physics,
		components.Health,
	)
	Shark = newArchetype(
		tags.Creature,
		tags.Shark,
		components.Kind,
		components.Object,
		components.Physics,
		components.Health,
	)
	Slime = newArchetype(
		tags.Creature,
		tags.Slime,
		components.Kind,
		components.Object,
		components.Physics,
		components.Health,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
