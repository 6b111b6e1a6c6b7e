package components

import (
	"github.com/automoto/jumpingalien/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its resolv object. The object mirrors the
// body's pixel box so the space can answer neighbourhood queries.
type ObjectData struct {
	*resolv.Object
}

// Box returns the pixel box the object currently covers.
func (o *ObjectData) Box() gamemath.Box {
	return gamemath.BoxAt(o.X, o.Y, int(o.W), int(o.H))
}

// Sync moves and resizes the object and refreshes its cells in the space.
func (o *ObjectData) Sync(x, y float64, w, h int) {
	o.X, o.Y = x, y
	o.W, o.H = float64(w), float64(h)
	o.SetShape(resolv.NewRectangle(0, 0, o.W, o.H))
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
