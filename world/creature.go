package world

import (
	"fmt"
	"math"

	"github.com/automoto/jumpingalien/components"
	"github.com/yohamta/donburi"
)

// Creature is a handle on a non-player body. Creatures have no behavior of
// their own: a driver sets their velocity and the world integrates it.
type Creature struct {
	world *World
	entry *donburi.Entry
	id    donburi.Entity
	kind  components.EntityKind

	final *components.PhysicsData
	size  [2]int
}

func (c *Creature) attached() bool {
	return c.world != nil && c.entry.Valid() && c.entry.Entity() == c.id
}

func (c *Creature) detach() {
	body := *components.Physics.Get(c.entry)
	box := components.Object.Get(c.entry).Box()
	c.final = &body
	c.size = [2]int{box.W, box.H}
	c.world = nil
}

func (c *Creature) Kind() components.EntityKind { return c.kind }
func (c *Creature) Entity() donburi.Entity      { return c.id }
func (c *Creature) Terminated() bool            { return !c.attached() }

func (c *Creature) body() *components.PhysicsData {
	if c.attached() {
		return components.Physics.Get(c.entry)
	}
	return c.final
}

func (c *Creature) Position() (x, y float64) {
	b := c.body()
	return b.X, b.Y
}

func (c *Creature) Velocity() (vx, vy float64) {
	b := c.body()
	return b.SpeedX, b.SpeedY
}

func (c *Creature) Size() (width, height int) {
	if !c.attached() {
		return c.size[0], c.size[1]
	}
	box := components.Object.Get(c.entry).Box()
	return box.W, box.H
}

// SetVelocity sets the creature's velocity. |vx| may not exceed the kind's
// speed cap; vy above the rise cap is lowered to it.
func (c *Creature) SetVelocity(vx, vy float64) error {
	if !c.attached() {
		return ErrTerminated
	}
	body := c.body()
	if math.IsNaN(vy) || math.IsInf(vy, 0) || !body.ValidSpeedX(vx) {
		return fmt.Errorf("%w: %s velocity (%v, %v), |vx| must not exceed %v",
			ErrInvalidArgument, c.kind, vx, vy, body.MaxSpeed)
	}
	body.SpeedX = vx
	body.SetSpeedY(vy)
	return nil
}
