package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/jumpingalien/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGamePlaysBundledLevels(t *testing.T) {
	g, err := NewGame("", 60)
	require.NoError(t, err)
	defer g.Close()

	assert.Equal(t, []string{"cavern", "meadow"}, g.names)
	assert.Equal(t, levels.Default, g.world.Name())
	assert.False(t, g.player.Terminated())

	require.NoError(t, g.nextLevel())
	assert.Equal(t, "cavern", g.world.Name())
	require.NoError(t, g.nextLevel())
	assert.Equal(t, "meadow", g.world.Name())
}

const singleLevel = `
name: single
tileSize: 10
tiles:
  - "........"
  - "########"
spawns:
  - {kind: player, x: 5, y: 9}
`

func TestNewGameFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.yaml")
	require.NoError(t, os.WriteFile(path, []byte(singleLevel), 0o644))

	g, err := NewGame(path, 60)
	require.NoError(t, err)
	defer g.Close()

	assert.Equal(t, "single", g.world.Name())
	require.NoError(t, g.nextLevel())
	assert.Equal(t, "single", g.world.Name(), "a single file has no next level")
}

func TestNewGameRequiresPlayerSpawn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: empty\ntileSize: 10\ntiles:\n  - \"....\"\n"), 0o644))

	_, err := NewGame(path, 60)
	assert.ErrorContains(t, err, "no player spawn")
}
