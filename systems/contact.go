package systems

import (
	"github.com/automoto/jumpingalien/components"
	cfg "github.com/automoto/jumpingalien/config"
	"github.com/yohamta/donburi"
)

// Touch applies the effect of the player touching other, chosen by other's
// kind. A plant heals a wounded player and is eaten. A shark or slime deals
// damage and leaves the player briefly invincible. The caller checks the
// player's hitpoints afterwards.
func Touch(player, other *donburi.Entry, terminate Terminator) {
	if !player.Valid() || !other.Valid() || !other.HasComponent(components.Kind) {
		return
	}

	kind := components.Kind.Get(other).Kind
	switch {
	case kind == components.KindPlant:
		health := components.Health.Get(player)
		if health.Current >= health.Max {
			return
		}
		health.Add(cfg.Player.PlantHeal)
		terminate(other, ReasonEaten)

	case kind.Hostile():
		exp := components.Exposure.Get(player)
		if exp.Invincible > 0 {
			return
		}
		components.Health.Get(player).Add(-cfg.Player.EnemyDamage)
		exp.Invincible = cfg.Player.InvincibleTime
	}
}
