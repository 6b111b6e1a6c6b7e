package factory

import (
	"github.com/automoto/jumpingalien/archetypes"
	"github.com/automoto/jumpingalien/components"
	cfg "github.com/automoto/jumpingalien/config"
	"github.com/automoto/jumpingalien/shared/terrain"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the level entry: the tile grid plus a resolv space
// covering the same pixels.
func CreateLevel(w donburi.World, name string, grid *terrain.Grid) *donburi.Entry {
	level := archetypes.Level.Spawn(w)

	components.Level.SetValue(level, components.LevelData{
		Name:  name,
		Grid:  grid,
		Space: NewSpace(grid),
	})

	return level
}

// NewSpace returns a space whose cells cover the whole grid, partial cells at
// the right and top included, plus room above the top row for the tallest
// creature.
func NewSpace(grid *terrain.Grid) *resolv.Space {
	cell := cfg.Physics.SpaceCellSize
	cols := cellsFor(grid.Width(), cell)
	rows := cellsFor(grid.Height()+tallestCreature(), cell)
	return resolv.NewSpace(cols*cell, rows*cell, cell, cell)
}

// FitSpace grows the level's space so a body of the given height whose feet
// are on the top pixel row is still fully indexed. Objects already in the
// space are re-registered in the new cells.
func FitSpace(level *components.LevelData, bodyHeight int) {
	space := level.Space
	cols := max(cellsFor(level.Grid.Width(), space.CellWidth), space.Width())
	rows := max(cellsFor(level.Grid.Height()+bodyHeight, space.CellHeight), space.Height())
	if cols == space.Width() && rows == space.Height() {
		return
	}

	objects := space.Objects()
	space.Resize(cols, rows)
	for _, obj := range objects {
		obj.Update()
	}
}

func cellsFor(pixels, cell int) int {
	return (pixels + cell - 1) / cell
}

func tallestCreature() int {
	h := 0
	for _, typ := range cfg.Creature.Types {
		h = max(h, typ.Height)
	}
	return h
}
