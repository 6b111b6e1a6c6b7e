package factory

import (
	"image"

	"github.com/automoto/jumpingalien/archetypes"
	"github.com/automoto/jumpingalien/components"
	cfg "github.com/automoto/jumpingalien/config"
	"github.com/automoto/jumpingalien/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns a player standing at (x, y) with the given frame sizes.
// The caller validates frames; the body starts with the size of frame 0.
func CreatePlayer(w donburi.World, level *components.LevelData, x, y float64, frames []image.Point) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	tallest := 0
	for _, f := range frames {
		tallest = max(tallest, f.Y)
	}
	FitSpace(level, tallest)

	width, height := float64(frames[0].X), float64(frames[0].Y)
	obj := resolv.NewObject(x, y, width, height, tags.ResolvBody, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = player
	level.Space.Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Kind.SetValue(player, components.KindData{Kind: components.KindPlayer})
	components.Player.SetValue(player, components.PlayerData{})
	components.Physics.SetValue(player, components.PhysicsData{
		X:            x,
		Y:            y,
		InitialSpeed: cfg.Player.InitialSpeed,
		Acceleration: cfg.Player.Acceleration,
		MaxSpeed:     cfg.Player.MaxSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Hitpoints,
		Max:     cfg.Player.MaxHitpoints,
	})
	components.Exposure.SetValue(player, components.ExposureData{})
	components.Sprite.SetValue(player, components.SpriteData{
		Frames: append([]image.Point(nil), frames...),
	})

	return player
}
