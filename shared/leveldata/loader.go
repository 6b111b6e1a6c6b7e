package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/jumpingalien/shared/terrain"
	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	FeatureLayer    = "features"
	FeatureProperty = "feature"
	EntityGroup     = "Entities"
	KindProperty    = "kind"
)

// Load parses a level by extension (.tmx or .yaml/.yml). It takes an fs.FS so
// callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, levelPath string) (*Level, error) {
	switch strings.ToLower(path.Ext(levelPath)) {
	case ".tmx":
		return LoadTMX(fsys, levelPath)
	case ".yaml", ".yml":
		return LoadYAML(fsys, levelPath)
	}
	return nil, fmt.Errorf("unsupported level format %q", levelPath)
}

// LoadTMX parses a Tiled map. Tiles of the "features" layer are classified by
// their tileset tile's "feature" property; objects of the "Entities" group
// become spawns, kind taken from the "kind" property or the object name.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	grid, err := terrain.NewGrid(levelMap.TileWidth, levelMap.Width, levelMap.Height)
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	found := false
	for _, layer := range levelMap.Layers {
		if layer.Name != FeatureLayer {
			continue
		}
		found = true
		for row := 0; row < levelMap.Height; row++ {
			for col := 0; col < levelMap.Width; col++ {
				tile := layer.Tiles[row*levelMap.Width+col]
				if tile.IsNil() {
					continue
				}

				var name string
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					name = tilesetTile.Properties.GetString(FeatureProperty)
				}
				feature, err := terrain.ParseFeature(name)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: tile (%d, %d): %w", tmxPath, col, row, err)
				}
				// TMX rows run top-down; the grid is y-up.
				if err := grid.Set(col, levelMap.Height-1-row, feature); err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
			}
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no %q layer", tmxPath, FeatureLayer)
	}

	level := &Level{
		Name: strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath)),
		Grid: grid,
	}

	heightPx := float64(grid.Height())
	for _, og := range levelMap.ObjectGroups {
		if og.Name != EntityGroup {
			continue
		}
		for _, o := range og.Objects {
			kind := o.Properties.GetString(KindProperty)
			if kind == "" {
				kind = strings.ToLower(o.Name)
			}
			level.Spawns = append(level.Spawns, Spawn{
				Kind: kind,
				X:    o.X,
				Y:    heightPx - (o.Y + o.Height),
			})
		}
	}

	sortSpawns(level.Spawns)
	return level, nil
}

// LoadAllLevels discovers all level files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	var matches []string
	for _, pattern := range []string{"*.tmx", "*.yaml", "*.yml"} {
		m, err := fs.Glob(fsys, path.Join(levelsDir, pattern))
		if err != nil {
			return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		matches = append(matches, m...)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no level files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, p := range matches {
		level, err := Load(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		if _, dup := levels[level.Name]; dup {
			return nil, nil, fmt.Errorf("load %s: duplicate level name %q", p, level.Name)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// sortSpawns orders spawns left-to-right, then bottom-up, for consistent
// assignment.
func sortSpawns(spawns []Spawn) {
	sort.SliceStable(spawns, func(i, j int) bool {
		if spawns[i].X != spawns[j].X {
			return spawns[i].X < spawns[j].X
		}
		return spawns[i].Y < spawns[j].Y
	})
}
