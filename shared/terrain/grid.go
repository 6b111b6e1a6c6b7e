// Package terrain holds the static tile classification of a world.
// Coordinates are y-up: pixel row 0 and tile row 0 are at the bottom.
package terrain

import "fmt"

// Grid is an immutable-size lookup of the Feature at every tile coordinate.
type Grid struct {
	tileSize int
	cols     int
	rows     int
	features []Feature
}

// NewGrid creates a grid of cols x rows tiles, all air.
func NewGrid(tileSize, cols, rows int) (*Grid, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("tile size must be positive, got %d", tileSize)
	}
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("grid must have at least one tile, got %dx%d", cols, rows)
	}
	return &Grid{
		tileSize: tileSize,
		cols:     cols,
		rows:     rows,
		features: make([]Feature, cols*rows),
	}, nil
}

func (g *Grid) TileSize() int { return g.tileSize }
func (g *Grid) Cols() int     { return g.cols }
func (g *Grid) Rows() int     { return g.rows }

// Width is the world width in pixels.
func (g *Grid) Width() int { return g.cols * g.tileSize }

// Height is the world height in pixels.
func (g *Grid) Height() int { return g.rows * g.tileSize }

// InBounds reports whether (tx, ty) addresses a tile of the grid.
func (g *Grid) InBounds(tx, ty int) bool {
	return tx >= 0 && ty >= 0 && tx < g.cols && ty < g.rows
}

// Set classifies one tile.
func (g *Grid) Set(tx, ty int, f Feature) error {
	if !g.InBounds(tx, ty) {
		return fmt.Errorf("tile (%d, %d) outside %dx%d grid", tx, ty, g.cols, g.rows)
	}
	g.features[ty*g.cols+tx] = f
	return nil
}

// Feature returns the classification of an in-bounds tile. Callers must check
// InBounds first; out-of-range coordinates panic.
func (g *Grid) Feature(tx, ty int) Feature {
	return g.features[ty*g.cols+tx]
}

// TileOf converts a pixel coordinate on either axis to its tile coordinate.
func (g *Grid) TileOf(pixel int) int {
	if pixel < 0 {
		return (pixel+1)/g.tileSize - 1
	}
	return pixel / g.tileSize
}

// FeatureAt returns the feature under a pixel, and false when the pixel lies
// outside the world.
func (g *Grid) FeatureAt(px, py int) (Feature, bool) {
	tx, ty := g.TileOf(px), g.TileOf(py)
	if !g.InBounds(tx, ty) {
		return Air, false
	}
	return g.Feature(tx, ty), true
}

// TileOrigin returns the bottom-left pixel of a tile.
func (g *Grid) TileOrigin(tx, ty int) (px, py int) {
	return tx * g.tileSize, ty * g.tileSize
}

// Fill classifies every tile in the inclusive tile rectangle.
func (g *Grid) Fill(tx0, ty0, tx1, ty1 int, f Feature) error {
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			if err := g.Set(tx, ty, f); err != nil {
				return err
			}
		}
	}
	return nil
}
