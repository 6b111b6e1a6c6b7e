package systems

import (
	"math"

	"github.com/automoto/jumpingalien/animation"
	"github.com/automoto/jumpingalien/collision"
	"github.com/automoto/jumpingalien/components"
	cfg "github.com/automoto/jumpingalien/config"
	"github.com/automoto/jumpingalien/shared/gamemath"
	"github.com/yohamta/donburi"
)

// StartMove starts running in direction dir (cfg.DirectionLeft or
// cfg.DirectionRight). A player already running at least as fast that way
// keeps its speed.
func StartMove(e *donburi.Entry, dir float64) {
	body := components.Physics.Get(e)
	player := components.Player.Get(e)

	if body.SpeedX*dir < body.InitialSpeed {
		body.SpeedX = dir * body.InitialSpeed
	}
	body.SetAccelX(dir * body.Acceleration)
	player.LastMove = dir
	player.AnimationClock = 0

	SyncSprite(e)
}

// EndMove stops horizontal movement.
func EndMove(e *donburi.Entry) {
	body := components.Physics.Get(e)
	body.SpeedX = 0
	body.SetAccelX(0)

	SyncSprite(e)
}

// EndMoveIn stops horizontal movement only if the player moves in direction dir.
func EndMoveIn(e *donburi.Entry, dir float64) {
	body := components.Physics.Get(e)
	if body.SpeedX*dir > 0 || body.AccelX*dir > 0 {
		EndMove(e)
	}
}

// StartJump launches the player if its feet are on ground.
func StartJump(level *components.LevelData, e *donburi.Entry) {
	player := components.Player.Get(e)
	contacts := collision.Probe(level, components.Object.Get(e))
	player.Grounded = contacts.OnGround()
	if !player.Grounded {
		return
	}

	body := components.Physics.Get(e)
	body.SetSpeedY(cfg.Player.JumpSpeed)
	body.SetAccelY(cfg.Physics.Gravity)
}

// EndJump cuts an upward jump short. It never changes a fall.
func EndJump(e *donburi.Entry) {
	body := components.Physics.Get(e)
	body.SetSpeedY(math.Min(body.SpeedY, 0))
}

// StartDuck lowers the speed cap and switches to a ducking frame.
func StartDuck(e *donburi.Entry) {
	components.Player.Get(e).Ducking = true
	components.Physics.Get(e).SetMaxSpeed(cfg.Player.DuckMaxSpeed)

	SyncSprite(e)
}

// EndDuck stands the player back up. It is refused, returning false, when
// the space the taller frame needs is obstructed.
func EndDuck(level *components.LevelData, e *donburi.Entry) bool {
	player := components.Player.Get(e)
	if !player.Ducking {
		return true
	}

	if collision.Obstructed(level, components.Object.Get(e), headroom(e)) {
		return false
	}

	player.Ducking = false
	components.Physics.Get(e).SetMaxSpeed(cfg.Player.MaxSpeed)

	SyncSprite(e)
	return true
}

// headroom is the region above the current box that the standing frame
// would additionally cover.
func headroom(e *donburi.Entry) gamemath.Box {
	box := components.Object.Get(e).Box()
	sprite := components.Sprite.Get(e)

	standing := AnimationState(e)
	standing.Ducking = false
	size := sprite.Frames[animation.Select(standing)]

	return gamemath.Box{
		X: box.X,
		Y: box.Top(),
		W: max(box.W, size.X),
		H: size.Y - box.H,
	}
}
