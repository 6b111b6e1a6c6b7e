package components

import (
	"github.com/automoto/jumpingalien/shared/terrain"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// LevelData is the world's single level entry: its tile grid and the resolv
// space every body is registered in.
type LevelData struct {
	Name  string
	Grid  *terrain.Grid
	Space *resolv.Space
}

var Level = donburi.NewComponentType[LevelData]()
