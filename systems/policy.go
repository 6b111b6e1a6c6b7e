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

// Policy is the per-substep behavior shared by every body in a level: gravity
// and landing for all of them, and for the player the input-driven state,
// hazards and contact effects. It implements physics.Policy.
type Policy struct {
	Level     *components.LevelData
	Terminate Terminator
}

func (p *Policy) Prepare(e *donburi.Entry, contacts *collision.Result) {
	body := components.Physics.Get(e)
	below := contacts.Blocked(collision.Down)

	// Landing and head bumps stop vertical motion.
	if below && body.SpeedY < 0 {
		body.SpeedY = 0
	}
	if contacts.Blocked(collision.Up) && body.SpeedY > 0 {
		body.SpeedY = 0
	}

	if below && body.SpeedY <= 0 {
		body.SetAccelY(0)
	} else {
		body.SetAccelY(cfg.Physics.Gravity)
	}

	if e.HasComponent(components.Player) {
		components.Player.Get(e).Grounded = contacts.OnGround()
	}
}

func (p *Policy) Settle(e *donburi.Entry, h float64, contacts *collision.Result) bool {
	if e.HasComponent(components.Player) {
		return p.settlePlayer(e, h, contacts)
	}
	return p.settleCreature(e, contacts)
}

func (p *Policy) settlePlayer(e *donburi.Entry, h float64, contacts *collision.Result) bool {
	body := components.Physics.Get(e)
	player := components.Player.Get(e)
	player.Grounded = contacts.OnGround()

	if body.SpeedX != 0 {
		player.LastMove = gamemath.Sign(body.SpeedX)
		fps := components.Sprite.Get(e).FramesPerSide()
		player.AnimationClock = animation.WrapClock(player.AnimationClock+h, fps)
	} else {
		decay := cfg.Player.LastMoveDecay * h
		player.LastMove = gamemath.Sign(player.LastMove) * math.Max(0, math.Abs(player.LastMove)-decay)
	}

	if UpdateExposure(e, h, contacts) {
		p.Terminate(e, ReasonNoHitpoints)
		return false
	}

	for _, other := range contacts.Entities() {
		Touch(e, other, p.Terminate)
	}
	if components.Health.Get(e).Dead() {
		p.Terminate(e, ReasonNoHitpoints)
		return false
	}

	SyncSprite(e)
	return true
}

func (p *Policy) settleCreature(e *donburi.Entry, contacts *collision.Result) bool {
	for _, other := range contacts.Entities() {
		if !other.HasComponent(components.Player) {
			continue
		}
		Touch(other, e, p.Terminate)
		if other.Valid() && components.Health.Get(other).Dead() {
			p.Terminate(other, ReasonNoHitpoints)
		}
		if !e.Valid() {
			return false
		}
	}
	return true
}
