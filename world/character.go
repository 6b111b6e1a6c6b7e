package world

import (
	"fmt"
	"math"

	"github.com/automoto/jumpingalien/animation"
	"github.com/automoto/jumpingalien/components"
	cfg "github.com/automoto/jumpingalien/config"
	"github.com/automoto/jumpingalien/physics"
	"github.com/automoto/jumpingalien/systems"
	"github.com/yohamta/donburi"
)

// Character is the driver's handle on the player. Once the player is
// terminated the handle is detached: commands do nothing, AdvanceTime
// returns ErrTerminated and accessors report the last committed state.
type Character struct {
	world *World
	entry *donburi.Entry
	id    donburi.Entity

	final *playerSnapshot
}

type playerSnapshot struct {
	body   components.PhysicsData
	player components.PlayerData
	health components.HealthData
	sprite components.SpriteData
}

func (c *Character) attached() bool {
	return c.world != nil && c.entry.Valid() && c.entry.Entity() == c.id
}

func (c *Character) detach() {
	c.final = &playerSnapshot{
		body:   *components.Physics.Get(c.entry),
		player: *components.Player.Get(c.entry),
		health: *components.Health.Get(c.entry),
		sprite: *components.Sprite.Get(c.entry),
	}
	c.world = nil
}

// Terminated reports whether the player has left the world.
func (c *Character) Terminated() bool { return !c.attached() }

// Entity is the id the player was spawned with. It does not change after
// termination, even once the id is reused.
func (c *Character) Entity() donburi.Entity { return c.id }

func (c *Character) body() *components.PhysicsData {
	if c.attached() {
		return components.Physics.Get(c.entry)
	}
	return &c.final.body
}

func (c *Character) state() *components.PlayerData {
	if c.attached() {
		return components.Player.Get(c.entry)
	}
	return &c.final.player
}

func (c *Character) sprite() *components.SpriteData {
	if c.attached() {
		return components.Sprite.Get(c.entry)
	}
	return &c.final.sprite
}

// Commands

func (c *Character) StartMoveLeft() {
	if c.attached() {
		systems.StartMove(c.entry, cfg.DirectionLeft)
	}
}

func (c *Character) StartMoveRight() {
	if c.attached() {
		systems.StartMove(c.entry, cfg.DirectionRight)
	}
}

func (c *Character) EndMove() {
	if c.attached() {
		systems.EndMove(c.entry)
	}
}

// EndMoveLeft stops the player only if it is moving left.
func (c *Character) EndMoveLeft() {
	if c.attached() {
		systems.EndMoveIn(c.entry, cfg.DirectionLeft)
	}
}

// EndMoveRight stops the player only if it is moving right.
func (c *Character) EndMoveRight() {
	if c.attached() {
		systems.EndMoveIn(c.entry, cfg.DirectionRight)
	}
}

func (c *Character) StartJump() {
	if c.attached() {
		systems.StartJump(c.world.level, c.entry)
	}
}

func (c *Character) EndJump() {
	if c.attached() {
		systems.EndJump(c.entry)
	}
}

func (c *Character) StartDuck() {
	if c.attached() {
		systems.StartDuck(c.entry)
	}
}

// EndDuck stands up unless something blocks the taller frame, in which
// case the player keeps ducking.
func (c *Character) EndDuck() {
	if c.attached() {
		systems.EndDuck(c.world.level, c.entry)
	}
}

// AdvanceTime advances the player alone by dt seconds.
func (c *Character) AdvanceTime(dt float64) error {
	if !c.attached() {
		return ErrTerminated
	}
	if err := physics.ValidTimestep(dt); err != nil {
		return err
	}
	return c.world.advance(c.entry, dt)
}

// Setters

// SetPosition moves the player's bottom-left corner to (x, y).
func (c *Character) SetPosition(x, y float64) error {
	if !c.attached() {
		return ErrTerminated
	}
	if err := c.world.checkPosition(x, y); err != nil {
		return err
	}
	body := c.body()
	body.X, body.Y = x, y
	systems.SyncSprite(c.entry)
	return nil
}

// SetVelocity sets the velocity in distance-units per second. vx must be 0
// or have a magnitude within [initial speed, max speed]; vy above the rise
// cap is lowered to it.
func (c *Character) SetVelocity(vx, vy float64) error {
	if !c.attached() {
		return ErrTerminated
	}
	body := c.body()
	if math.IsNaN(vy) || math.IsInf(vy, 0) || !body.ValidSpeedX(vx) {
		return fmt.Errorf("%w: velocity (%v, %v), |vx| must be 0 or within [%v, %v]",
			ErrInvalidArgument, vx, vy, body.InitialSpeed, body.MaxSpeed)
	}
	body.SpeedX = vx
	body.SetSpeedY(vy)
	systems.SyncSprite(c.entry)
	return nil
}

// SetAcceleration sets the acceleration. Values outside the legal set
// (0 or ±0.9 horizontally, 0 or gravity vertically) become 0.
func (c *Character) SetAcceleration(ax, ay float64) {
	if !c.attached() {
		return
	}
	body := c.body()
	body.SetAccelX(ax)
	body.SetAccelY(ay)
}

// SetAnimationClock sets the running-cycle clock, folded into one cycle.
func (c *Character) SetAnimationClock(t float64) error {
	if !c.attached() {
		return ErrTerminated
	}
	if t < 0 || math.IsNaN(t) || math.IsInf(t, 0) {
		return fmt.Errorf("%w: animation clock %v", ErrInvalidArgument, t)
	}
	c.state().AnimationClock = animation.WrapClock(t, c.sprite().FramesPerSide())
	systems.SyncSprite(c.entry)
	return nil
}

// Accessors

// CurrentSprite returns the index of the frame the player shows now.
func (c *Character) CurrentSprite() int {
	if !c.attached() {
		return c.final.sprite.Current
	}
	return animation.Select(systems.AnimationState(c.entry))
}

// Position returns the bottom-left corner in pixels.
func (c *Character) Position() (x, y float64) {
	b := c.body()
	return b.X, b.Y
}

func (c *Character) Velocity() (vx, vy float64) {
	b := c.body()
	return b.SpeedX, b.SpeedY
}

func (c *Character) Acceleration() (ax, ay float64) {
	b := c.body()
	return b.AccelX, b.AccelY
}

// Size returns the pixel size of the current frame.
func (c *Character) Size() (width, height int) {
	return c.sprite().Size()
}

func (c *Character) MaxSpeed() float64 { return c.body().MaxSpeed }

func (c *Character) Hitpoints() int {
	if !c.attached() {
		return c.final.health.Current
	}
	return components.Health.Get(c.entry).Current
}

func (c *Character) Ducking() bool           { return c.state().Ducking }
func (c *Character) LastMove() float64       { return c.state().LastMove }
func (c *Character) AnimationClock() float64 { return c.state().AnimationClock }

// Grounded reports whether the player's feet were on ground at the last
// collision probe.
func (c *Character) Grounded() bool { return c.state().Grounded }
