package terrain

import "fmt"

// Feature classifies a single tile.
type Feature int

const (
	Air Feature = iota
	Ground
	Water
	Magma
)

var featureNames = map[Feature]string{
	Air:    "air",
	Ground: "ground",
	Water:  "water",
	Magma:  "magma",
}

func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Feature(%d)", int(f))
}

// Passable reports whether a body may move through a tile of this feature.
// Only ground blocks movement.
func (f Feature) Passable() bool {
	return f != Ground
}

// ParseFeature maps a level-file name ("ground", "water", "magma", "air") to
// its Feature. The empty string is air.
func ParseFeature(name string) (Feature, error) {
	if name == "" {
		return Air, nil
	}
	for f, n := range featureNames {
		if n == name {
			return f, nil
		}
	}
	return Air, fmt.Errorf("unknown feature %q", name)
}
