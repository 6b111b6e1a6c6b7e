package systems

import (
	"github.com/automoto/jumpingalien/animation"
	"github.com/automoto/jumpingalien/components"
	"github.com/yohamta/donburi"
)

// AnimationState collects the fields frame selection reads from a player.
func AnimationState(e *donburi.Entry) animation.State {
	body := components.Physics.Get(e)
	player := components.Player.Get(e)
	sprite := components.Sprite.Get(e)
	return animation.State{
		SpeedX:        body.SpeedX,
		LastMove:      player.LastMove,
		Ducking:       player.Ducking,
		Airborne:      !player.Grounded,
		Clock:         player.AnimationClock,
		FramesPerSide: sprite.FramesPerSide(),
	}
}

// SyncSprite selects the current frame and resizes the body to match it.
func SyncSprite(e *donburi.Entry) {
	sprite := components.Sprite.Get(e)
	sprite.Current = animation.Select(AnimationState(e))

	body := components.Physics.Get(e)
	w, h := sprite.Size()
	components.Object.Get(e).Sync(body.X, body.Y, w, h)
}
