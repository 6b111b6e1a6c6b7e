package components

import "github.com/yohamta/donburi"

// PlayerData is the input-driven state layered over a player's body.
type PlayerData struct {
	Ducking bool

	// LastMove remembers the most recent horizontal direction: ±1 while
	// moving, fading toward 0 while standing still.
	LastMove float64

	// AnimationClock runs in [0, frames per side × frame duration).
	AnimationClock float64

	// Grounded is refreshed from the collision probe every substep.
	Grounded bool
}

var Player = donburi.NewComponentType[PlayerData]()
