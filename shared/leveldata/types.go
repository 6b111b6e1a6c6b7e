// Package leveldata parses level files into a tile grid and spawn list.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

import "github.com/automoto/jumpingalien/shared/terrain"

// KindPlayer is the spawn kind that places the player.
const KindPlayer = "player"

// Level holds all simulation-relevant data parsed from a level file.
type Level struct {
	Name   string
	Grid   *terrain.Grid
	Spawns []Spawn
}

// Spawn places one entity. X and Y are the bottom-left pixel in y-up world
// coordinates.
type Spawn struct {
	Kind string
	X, Y float64
}

// PlayerSpawn returns the first player spawn, if any.
func (l *Level) PlayerSpawn() (Spawn, bool) {
	for _, s := range l.Spawns {
		if s.Kind == KindPlayer {
			return s, true
		}
	}
	return Spawn{}, false
}
