package components

import (
	"fmt"
	"strings"

	"github.com/yohamta/donburi"
)

// EntityKind is the closed set of entity variants. It is fixed when the
// entity is spawned and drives contact dispatch.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindPlant
	KindShark
	KindSlime
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlant:
		return "plant"
	case KindShark:
		return "shark"
	case KindSlime:
		return "slime"
	}
	return "unknown"
}

// ParseKind maps a level-file kind name to its EntityKind.
func ParseKind(name string) (EntityKind, error) {
	for _, k := range []EntityKind{KindPlayer, KindPlant, KindShark, KindSlime} {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown entity kind %q", name)
}

// Hostile reports whether contact with this kind hurts the player.
func (k EntityKind) Hostile() bool {
	return k == KindShark || k == KindSlime
}

type KindData struct {
	Kind EntityKind
}

var Kind = donburi.NewComponentType[KindData]()
