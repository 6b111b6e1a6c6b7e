package collision

import (
	"testing"

	"github.com/automoto/jumpingalien/components"
	"github.com/automoto/jumpingalien/shared/gamemath"
	"github.com/automoto/jumpingalien/shared/terrain"
	"github.com/automoto/jumpingalien/systems/factory"
	"github.com/automoto/jumpingalien/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

// testLevel is a 4x3 grid of 50 px tiles with a ground floor. Its 200x150 px
// do not divide into 16 px space cells.
func testLevel(t *testing.T) *components.LevelData {
	t.Helper()
	grid, err := terrain.NewGrid(50, 4, 3)
	require.NoError(t, err)
	require.NoError(t, grid.Fill(0, 0, 3, 0, terrain.Ground))
	return &components.LevelData{
		Grid:  grid,
		Space: factory.NewSpace(grid),
	}
}

func addBody(w donburi.World, level *components.LevelData, x, y float64, width, height int) (*donburi.Entry, *components.ObjectData) {
	entry := w.Entry(w.Create(components.Object))
	factory.FitSpace(level, height)
	obj := resolv.NewObject(x, y, float64(width), float64(height), tags.ResolvBody)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(width), float64(height)))
	obj.Data = entry
	level.Space.Add(obj)
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return entry, components.Object.Get(entry)
}

func TestProbeGround(t *testing.T) {
	tests := []struct {
		name     string
		y        float64
		grounded bool
	}{
		{"feet row inside ground", 49, true},
		{"feet row just above ground", 50, false},
		{"fractional position floors into ground", 49.9, true},
		{"mid air", 80, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := testLevel(t)
			_, obj := addBody(donburi.NewWorld(), level, 60, tt.y, 20, 30)

			res := Probe(level, obj)
			assert.Equal(t, tt.grounded, res.OnGround())
			assert.Equal(t, tt.grounded, res.Blocked(Down))
			assert.False(t, res.Blocked(Left))
			assert.False(t, res.Blocked(Right))
		})
	}
}

func TestProbeSidesIgnoreFeetRow(t *testing.T) {
	level := testLevel(t)
	// Standing in the ground's top row must not make the floor a wall.
	_, obj := addBody(donburi.NewWorld(), level, 60, 49, 20, 30)

	res := Probe(level, obj)
	assert.Empty(t, res.Left)
	assert.Empty(t, res.Right)
}

func TestProbeWalls(t *testing.T) {
	level := testLevel(t)
	require.NoError(t, level.Grid.Set(0, 1, terrain.Ground))
	require.NoError(t, level.Grid.Set(2, 2, terrain.Ground))

	_, obj := addBody(donburi.NewWorld(), level, 50, 60, 20, 30)
	res := Probe(level, obj)
	assert.True(t, res.Blocked(Left))
	assert.False(t, res.Blocked(Right))
	require.Len(t, res.Left, 1)
	assert.Equal(t, 0, res.Left[0].TileX)
	assert.Equal(t, 1, res.Left[0].TileY)

	_, obj = addBody(donburi.NewWorld(), level, 100, 70, 20, 30)
	res = Probe(level, obj)
	assert.True(t, res.Blocked(Up), "row 100 is the ceiling tile")
	assert.False(t, res.Blocked(Left))
}

func TestProbePassableFeatures(t *testing.T) {
	level := testLevel(t)
	require.NoError(t, level.Grid.Set(1, 1, terrain.Water))
	require.NoError(t, level.Grid.Set(2, 1, terrain.Magma))

	_, obj := addBody(donburi.NewWorld(), level, 60, 60, 20, 20)
	res := Probe(level, obj)
	assert.True(t, res.Touches(terrain.Water))
	assert.False(t, res.Touches(terrain.Magma))
	assert.False(t, res.Touches(terrain.Ground))
	assert.False(t, res.Blocked(Right))

	// Straddling both tiles.
	_, obj = addBody(donburi.NewWorld(), level, 90, 60, 20, 20)
	res = Probe(level, obj)
	assert.True(t, res.Touches(terrain.Water))
	assert.True(t, res.Touches(terrain.Magma))
}

func TestProbeEntities(t *testing.T) {
	tests := []struct {
		name   string
		a, b   gamemath.Box
		aSide  Direction
		bSide  Direction
		bEmpty Direction
	}{
		{"side by side", gamemath.Box{X: 60, Y: 60, W: 20, H: 20}, gamemath.Box{X: 80, Y: 70, W: 20, H: 20}, Right, Left, Right},
		{"last partial cell on the right", gamemath.Box{X: 172, Y: 60, W: 20, H: 20}, gamemath.Box{X: 192, Y: 60, W: 20, H: 20}, Right, Left, Right},
		{"above the top row", gamemath.Box{X: 60, Y: 125, W: 20, H: 20}, gamemath.Box{X: 65, Y: 145, W: 20, H: 20}, Up, Down, Up},
		{"tall body poking out of the top", gamemath.Box{X: 100, Y: 100, W: 20, H: 120}, gamemath.Box{X: 120, Y: 140, W: 20, H: 20}, Right, Left, Right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level := testLevel(t)
			w := donburi.NewWorld()
			a, objA := addBody(w, level, float64(tt.a.X), float64(tt.a.Y), tt.a.W, tt.a.H)
			b, objB := addBody(w, level, float64(tt.b.X), float64(tt.b.Y), tt.b.W, tt.b.H)

			res := Probe(level, objA)
			side := res.Side(tt.aSide)
			require.Len(t, side, 1)
			assert.Equal(t, b.Entity(), side[0].Entry.Entity())
			assert.True(t, res.Blocked(tt.aSide))

			res = Probe(level, objB)
			side = res.Side(tt.bSide)
			require.Len(t, side, 1)
			assert.Equal(t, a.Entity(), side[0].Entry.Entity())
			assert.Empty(t, res.Side(tt.bEmpty))

			entities := res.Entities()
			require.Len(t, entities, 1)
			assert.Equal(t, a.Entity(), entities[0].Entity())
		})
	}
}

func TestProbeCorners(t *testing.T) {
	level := testLevel(t)
	require.NoError(t, level.Grid.Set(2, 2, terrain.Ground))
	w := donburi.NewWorld()

	// Box covers columns 80..99, rows 80..99; its top-right diagonal is (100, 100).
	_, obj := addBody(w, level, 80, 80, 20, 20)
	res := Probe(level, obj)
	assert.False(t, res.Blocked(Right))
	assert.False(t, res.Blocked(Up))
	assert.True(t, res.CornerBlocked(1, 1))
	assert.False(t, res.CornerBlocked(-1, 1))
	assert.False(t, res.CornerBlocked(1, 0), "straight moves have no corner")

	// Feet in row 100 beside the ground tile: the down-right diagonal is ground.
	_, obj = addBody(w, level, 80, 100, 20, 20)
	res = Probe(level, obj)
	assert.True(t, res.CornerBlocked(1, -1))
	assert.False(t, res.CornerBlocked(-1, -1))
}

func TestProbeEntityNotAdjacent(t *testing.T) {
	level := testLevel(t)
	w := donburi.NewWorld()
	_, objA := addBody(w, level, 60, 60, 20, 20)
	addBody(w, level, 81, 60, 20, 20)
	addBody(w, level, 60, 81, 20, 20)

	res := Probe(level, objA)
	assert.Empty(t, res.Right)
	assert.Empty(t, res.Up)
	assert.Empty(t, res.Entities())
}

func TestProbeEntityBelow(t *testing.T) {
	level := testLevel(t)
	w := donburi.NewWorld()
	_, objA := addBody(w, level, 60, 80, 20, 20)
	b, _ := addBody(w, level, 65, 60, 20, 20)

	res := Probe(level, objA)
	require.Len(t, res.Down, 1)
	assert.Equal(t, b.Entity(), res.Down[0].Entry.Entity())
	assert.True(t, res.Blocked(Down))
	assert.False(t, res.OnGround(), "standing on a body is not standing on ground")
}

func TestProbeTerrainWins(t *testing.T) {
	level := testLevel(t)
	require.NoError(t, level.Grid.Set(1, 1, terrain.Ground))
	w := donburi.NewWorld()
	_, objA := addBody(w, level, 30, 60, 20, 20)
	addBody(w, level, 50, 60, 20, 20)

	res := Probe(level, objA)
	require.NotEmpty(t, res.Right)
	for _, c := range res.Right {
		assert.True(t, c.IsTerrain())
	}
}

func TestProbeSkipsRemovedEntries(t *testing.T) {
	level := testLevel(t)
	w := donburi.NewWorld()
	_, objA := addBody(w, level, 60, 60, 20, 20)
	b, _ := addBody(w, level, 80, 60, 20, 20)
	w.Remove(b.Entity())

	res := Probe(level, objA)
	assert.Empty(t, res.Right)
}

func TestObstructed(t *testing.T) {
	level := testLevel(t)
	w := donburi.NewWorld()
	_, self := addBody(w, level, 60, 50, 20, 20)
	addBody(w, level, 150, 50, 20, 20)

	assert.False(t, Obstructed(level, self, gamemath.Box{X: 60, Y: 50, W: 20, H: 40}), "own box is ignored")
	assert.True(t, Obstructed(level, self, gamemath.Box{X: 60, Y: 40, W: 20, H: 20}), "ground")
	assert.True(t, Obstructed(level, self, gamemath.Box{X: 140, Y: 60, W: 20, H: 20}), "other body")
	assert.False(t, Obstructed(level, self, gamemath.Box{X: 100, Y: 60, W: 20, H: 20}))
	assert.False(t, Obstructed(level, self, gamemath.Box{X: 100, Y: 60}))
}

func TestNear(t *testing.T) {
	level := testLevel(t)
	w := donburi.NewWorld()
	_, a := addBody(w, level, 10, 60, 20, 20)
	addBody(w, level, 170, 100, 20, 20)

	near := Near(level.Space, gamemath.Box{X: 0, Y: 50, W: 40, H: 40})
	require.Len(t, near, 1)
	assert.Same(t, a.Object, near[0])

	// A body taller than any creature grows the space; bodies already in it
	// are still found afterwards.
	_, tall := addBody(w, level, 190, 100, 20, 150)
	near = Near(level.Space, gamemath.Box{X: 195, Y: 240, W: 5, H: 5})
	require.Len(t, near, 1)
	assert.Same(t, tall.Object, near[0])

	near = Near(level.Space, gamemath.Box{X: 0, Y: 50, W: 40, H: 40})
	require.Len(t, near, 1)
	assert.Same(t, a.Object, near[0])
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "none", Direction(9).String())
}
