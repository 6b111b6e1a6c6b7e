package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/jumpingalien/shared/terrain"
	"gopkg.in/yaml.v3"
)

// Tile glyphs of the YAML level format.
var glyphs = map[rune]terrain.Feature{
	'.': terrain.Air,
	'#': terrain.Ground,
	'~': terrain.Water,
	'^': terrain.Magma,
}

type yamlLevel struct {
	Name     string      `yaml:"name"`
	TileSize int         `yaml:"tileSize"`
	Tiles    []string    `yaml:"tiles"` // top row first
	Spawns   []yamlSpawn `yaml:"spawns"`
}

type yamlSpawn struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// LoadYAML reads and parses a YAML level file.
func LoadYAML(fsys fs.FS, yamlPath string) (*Level, error) {
	data, err := fs.ReadFile(fsys, yamlPath)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", yamlPath, err)
	}
	level, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", yamlPath, err)
	}
	if level.Name == "" {
		level.Name = strings.TrimSuffix(path.Base(yamlPath), path.Ext(yamlPath))
	}
	return level, nil
}

// ParseYAML decodes the compact level format: rows of glyphs (top row first)
// plus spawns in y-up pixel coordinates.
func ParseYAML(data []byte) (*Level, error) {
	var raw yamlLevel
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode level: %w", err)
	}
	if len(raw.Tiles) == 0 {
		return nil, fmt.Errorf("level has no tile rows")
	}

	rows := len(raw.Tiles)
	cols := len([]rune(raw.Tiles[0]))
	grid, err := terrain.NewGrid(raw.TileSize, cols, rows)
	if err != nil {
		return nil, err
	}

	for i, line := range raw.Tiles {
		glyphRow := []rune(line)
		if len(glyphRow) != cols {
			return nil, fmt.Errorf("row %d has %d tiles, want %d", i, len(glyphRow), cols)
		}
		for tx, g := range glyphRow {
			feature, ok := glyphs[g]
			if !ok {
				return nil, fmt.Errorf("row %d: unknown tile glyph %q", i, g)
			}
			if err := grid.Set(tx, rows-1-i, feature); err != nil {
				return nil, err
			}
		}
	}

	level := &Level{Name: raw.Name, Grid: grid}
	for _, s := range raw.Spawns {
		level.Spawns = append(level.Spawns, Spawn{Kind: strings.ToLower(s.Kind), X: s.X, Y: s.Y})
	}
	sortSpawns(level.Spawns)
	return level, nil
}
