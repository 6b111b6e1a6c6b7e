package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Creature = donburi.NewTag().SetName("Creature")
	Plant    = donburi.NewTag().SetName("Plant")
	Shark    = donburi.NewTag().SetName("Shark")
	Slime    = donburi.NewTag().SetName("Slime")
)

// Resolv tags for the collision space
const (
	ResolvBody     = "body"
	ResolvPlayer   = "Player"
	ResolvCreature = "Creature"
)
