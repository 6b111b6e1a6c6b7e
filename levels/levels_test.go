package levels

import (
	"image"
	"testing"

	"github.com/automoto/jumpingalien/shared/leveldata"
	"github.com/automoto/jumpingalien/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frames() []image.Point {
	out := make([]image.Point, 12)
	for i := range out {
		out[i] = image.Pt(70, 97)
	}
	return out
}

func TestBundledLevelsLoad(t *testing.T) {
	all, names, err := leveldata.LoadAllLevels(FS, ".")
	require.NoError(t, err)
	assert.Equal(t, []string{"cavern", "meadow"}, names)

	for _, name := range names {
		w, err := world.FromLevel(all[name], frames())
		require.NoError(t, err, name)

		c, ok := w.Player()
		require.True(t, ok, name)
		require.NoError(t, w.AdvanceTime(0.1), name)
		assert.True(t, c.Grounded(), "%s: the player starts on ground", name)
		assert.False(t, c.Terminated(), name)
		assert.NotEmpty(t, w.Creatures(), name)
	}
}

func TestDefaultLevel(t *testing.T) {
	all, _, err := leveldata.LoadAllLevels(FS, ".")
	require.NoError(t, err)
	level, ok := all[Default]
	require.True(t, ok)
	assert.Equal(t, 50, level.Grid.TileSize())

	spawn, ok := level.PlayerSpawn()
	require.True(t, ok)
	assert.Equal(t, leveldata.KindPlayer, spawn.Kind)
}
