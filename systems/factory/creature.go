package factory

import (
	"fmt"

	"github.com/automoto/jumpingalien/archetypes"
	"github.com/automoto/jumpingalien/components"
	cfg "github.com/automoto/jumpingalien/config"
	"github.com/automoto/jumpingalien/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateCreature spawns a non-player body of the given kind at (x, y). Its
// size and speed cap come from config.Creature.
func CreateCreature(w donburi.World, level *components.LevelData, kind components.EntityKind, x, y float64) (*donburi.Entry, error) {
	typ, ok := cfg.Creature.Types[kind.String()]
	if !ok {
		return nil, fmt.Errorf("no creature type %q", kind)
	}

	var creature *donburi.Entry
	switch kind {
	case components.KindPlant:
		creature = archetypes.Plant.Spawn(w)
	case components.KindShark:
		creature = archetypes.Shark.Spawn(w)
	case components.KindSlime:
		creature = archetypes.Slime.Spawn(w)
	default:
		return nil, fmt.Errorf("%s is not a creature", kind)
	}

	width, height := float64(typ.Width), float64(typ.Height)
	obj := resolv.NewObject(x, y, width, height, tags.ResolvBody, tags.ResolvCreature)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = creature
	FitSpace(level, typ.Height)
	level.Space.Add(obj)
	components.Object.SetValue(creature, components.ObjectData{Object: obj})

	components.Kind.SetValue(creature, components.KindData{Kind: kind})
	components.Physics.SetValue(creature, components.PhysicsData{
		X:        x,
		Y:        y,
		MaxSpeed: typ.MaxSpeed,
	})
	components.Health.SetValue(creature, components.HealthData{
		Current: typ.Hitpoints,
		Max:     typ.Hitpoints,
	})

	return creature, nil
}
