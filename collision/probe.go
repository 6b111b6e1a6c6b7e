// Package collision answers "what touches this body, and on which side" for
// bodies registered in a level's resolv space.
package collision

import (
	"github.com/automoto/jumpingalien/components"
	"github.com/automoto/jumpingalien/shared/gamemath"
	"github.com/automoto/jumpingalien/shared/terrain"
	"github.com/automoto/jumpingalien/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "none"
}

// Contact is one tile or entity touching a body on one side.
type Contact struct {
	Feature      terrain.Feature
	TileX, TileY int
	Entry        *donburi.Entry // nil for terrain
}

func (c Contact) IsTerrain() bool { return c.Entry == nil }

// Blocks reports whether the contact obstructs movement toward it.
func (c Contact) Blocks() bool {
	return c.Entry != nil || !c.Feature.Passable()
}

// Result lists every contact per side, plus the features the body overlaps.
type Result struct {
	Left, Right, Up, Down []Contact

	inside [4]bool
	// ground at the diagonal pixels, indexed [right][up]
	corners [2][2]bool
}

// Side returns the contacts in one direction.
func (r *Result) Side(d Direction) []Contact {
	switch d {
	case Left:
		return r.Left
	case Right:
		return r.Right
	case Up:
		return r.Up
	case Down:
		return r.Down
	}
	return nil
}

// Blocked reports whether anything obstructs movement in direction d.
func (r *Result) Blocked(d Direction) bool {
	for _, c := range r.Side(d) {
		if c.Blocks() {
			return true
		}
	}
	return false
}

// OnGround reports whether the body's bottom row rests on a ground tile.
func (r *Result) OnGround() bool {
	for _, c := range r.Down {
		if c.IsTerrain() && c.Feature == terrain.Ground {
			return true
		}
	}
	return false
}

// Touches reports whether the body overlaps at least one tile of feature f.
func (r *Result) Touches(f terrain.Feature) bool {
	if int(f) < 0 || int(f) >= len(r.inside) {
		return false
	}
	return r.inside[f]
}

// CornerBlocked reports whether the pixel diagonally next to the body, in the
// quadrant given by the signs of dx and dy, is ground. The side strips do not
// cover it, so a move that changes both pixel column and row checks it here.
func (r *Result) CornerBlocked(dx, dy float64) bool {
	if dx == 0 || dy == 0 {
		return false
	}
	return r.corners[b2i(dx > 0)][b2i(dy > 0)]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Entities returns every distinct entity contact, in Left, Right, Up, Down order.
func (r *Result) Entities() []*donburi.Entry {
	var out []*donburi.Entry
	seen := make(map[donburi.Entity]bool)
	for _, side := range [][]Contact{r.Left, r.Right, r.Up, r.Down} {
		for _, c := range side {
			if c.Entry == nil || seen[c.Entry.Entity()] {
				continue
			}
			seen[c.Entry.Entity()] = true
			out = append(out, c.Entry)
		}
	}
	return out
}

// Probe reports, for each side of obj's current box, the non-air tiles and
// the other bodies immediately adjacent to it. A body may sink into ground by
// its bottom row only: the down side is that row, and the left and right
// sides skip it for terrain. When a side has a ground obstruction its entity
// contacts are dropped.
func Probe(level *components.LevelData, obj *components.ObjectData) Result {
	var res Result
	box := obj.Box()
	grid := level.Grid

	res.Left = scanTiles(grid, box.X-1, box.X-1, box.Y+1, box.Top()-1)
	res.Right = scanTiles(grid, box.Right(), box.Right(), box.Y+1, box.Top()-1)
	res.Up = scanTiles(grid, box.X, box.Right()-1, box.Top(), box.Top())
	res.Down = scanTiles(grid, box.X, box.Right()-1, box.Y, box.Y)

	for _, c := range scanTiles(grid, box.X, box.Right()-1, box.Y, box.Top()-1) {
		res.inside[c.Feature] = true
	}

	// Diagonal pixels beside the feet row and above the head row.
	for right, x := range [2]int{box.X - 1, box.Right()} {
		for up, y := range [2]int{box.Y, box.Top()} {
			for _, c := range scanTiles(grid, x, x, y, y) {
				res.corners[right][up] = res.corners[right][up] || c.Blocks()
			}
		}
	}

	res.Left = withEntities(res.Left, obj, -1, 0, box.LeftEdge())
	res.Right = withEntities(res.Right, obj, 1, 0, box.RightEdge())
	res.Up = withEntities(res.Up, obj, 0, 1, box.TopEdge())
	res.Down = withEntities(res.Down, obj, 0, -1, box.BottomEdge())

	return res
}

// Obstructed reports whether region contains a ground tile or intersects
// another body. Used to check room before a body grows.
func Obstructed(level *components.LevelData, obj *components.ObjectData, region gamemath.Box) bool {
	if region.Empty() {
		return false
	}
	for _, c := range scanTiles(level.Grid, region.X, region.Right()-1, region.Y, region.Top()-1) {
		if c.Blocks() {
			return true
		}
	}
	for _, other := range Near(level.Space, region) {
		if other == obj.Object {
			continue
		}
		if objectBox(other).Intersects(region) {
			return true
		}
	}
	return false
}

// Near returns every body whose space cells overlap region. It is a broad
// phase: callers test the returned boxes themselves.
func Near(space *resolv.Space, region gamemath.Box) []*resolv.Object {
	if region.Empty() {
		return nil
	}
	cx0, cy0 := space.WorldToSpace(float64(region.X), float64(region.Y))
	cx1, cy1 := space.WorldToSpace(float64(region.Right()-1), float64(region.Top()-1))

	var out []*resolv.Object
	seen := make(map[*resolv.Object]bool)
	for cy := cy0; cy <= cy1; cy++ {
		for cx := cx0; cx <= cx1; cx++ {
			cell := space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if seen[o] || !o.HasTags(tags.ResolvBody) {
					continue
				}
				seen[o] = true
				out = append(out, o)
			}
		}
	}
	return out
}

// scanTiles returns the distinct non-air tiles covering the inclusive pixel
// rectangle [x0, x1] x [y0, y1]. Pixels outside the world are skipped.
func scanTiles(grid *terrain.Grid, x0, x1, y0, y1 int) []Contact {
	if x1 < x0 || y1 < y0 {
		return nil
	}
	var out []Contact
	for ty := grid.TileOf(y0); ty <= grid.TileOf(y1); ty++ {
		for tx := grid.TileOf(x0); tx <= grid.TileOf(x1); tx++ {
			if !grid.InBounds(tx, ty) {
				continue
			}
			f := grid.Feature(tx, ty)
			if f == terrain.Air {
				continue
			}
			out = append(out, Contact{Feature: f, TileX: tx, TileY: ty})
		}
	}
	return out
}

func withEntities(side []Contact, obj *components.ObjectData, dx, dy float64, edge gamemath.Box) []Contact {
	for _, c := range side {
		if c.Blocks() {
			return side
		}
	}

	check := obj.Check(dx, dy, tags.ResolvBody)
	if check == nil {
		return side
	}
	for _, other := range check.Objects {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if objectBox(other).Intersects(edge) {
			side = append(side, Contact{Entry: entry})
		}
	}
	return side
}

func objectBox(o *resolv.Object) gamemath.Box {
	return gamemath.BoxAt(o.X, o.Y, int(o.W), int(o.H))
}
