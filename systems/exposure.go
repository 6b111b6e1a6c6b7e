package systems

import (
	"math"

	"github.com/automoto/jumpingalien/collision"
	"github.com/automoto/jumpingalien/components"
	cfg "github.com/automoto/jumpingalien/config"
	"github.com/automoto/jumpingalien/shared/terrain"
	"github.com/yohamta/donburi"
)

// UpdateExposure advances e's hazard timers by h seconds and deals the damage
// they have accumulated. Water hurts for every full interval spent in it;
// magma hurts on entry and then for every full interval. Leaving a feature
// resets its timer. It reports whether e has no hitpoints left.
func UpdateExposure(e *donburi.Entry, h float64, contacts *collision.Result) bool {
	exp := components.Exposure.Get(e)
	exp.Invincible = math.Max(0, exp.Invincible-h)

	if contacts.Touches(terrain.Water) {
		exp.InWater += h
		for exp.InWater >= cfg.Terrain.WaterInterval {
			exp.InWater -= cfg.Terrain.WaterInterval
			hurt(e, cfg.Terrain.WaterDamage)
		}
	} else {
		exp.InWater = 0
	}

	if contacts.Touches(terrain.Magma) {
		if !exp.Magma {
			exp.Magma = true
			hurt(e, cfg.Terrain.MagmaEntryDamage)
		}
		exp.InMagma += h
		for exp.InMagma >= cfg.Terrain.MagmaInterval {
			exp.InMagma -= cfg.Terrain.MagmaInterval
			hurt(e, cfg.Terrain.MagmaDamage)
		}
	} else {
		exp.Magma = false
		exp.InMagma = 0
	}

	return components.Health.Get(e).Dead()
}

// hurt deals damage unless e is invincible.
func hurt(e *donburi.Entry, amount int) {
	if e.HasComponent(components.Exposure) && components.Exposure.Get(e).Invincible > 0 {
		return
	}
	components.Health.Get(e).Add(-amount)
}
