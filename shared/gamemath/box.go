package gamemath

import "math"

// Box is a pixel-aligned axis-aligned bounding box in y-up coordinates.
// (X, Y) is the bottom-left pixel; the box covers columns X..X+W-1 and rows
// Y..Y+H-1.
type Box struct {
	X, Y, W, H int
}

// BoxAt snaps a real-valued position to the pixel that contains it.
func BoxAt(x, y float64, w, h int) Box {
	return Box{X: int(math.Floor(x)), Y: int(math.Floor(y)), W: w, H: h}
}

// Right is the first column past the box.
func (b Box) Right() int { return b.X + b.W }

// Top is the first row above the box.
func (b Box) Top() int { return b.Y + b.H }

func (b Box) Empty() bool { return b.W <= 0 || b.H <= 0 }

// Intersects reports whether the boxes share at least one pixel.
func (b Box) Intersects(o Box) bool {
	if b.Empty() || o.Empty() {
		return false
	}
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Top() && o.Y < b.Top()
}

// LeftEdge is the one-pixel column immediately left of the box.
func (b Box) LeftEdge() Box { return Box{X: b.X - 1, Y: b.Y, W: 1, H: b.H} }

// RightEdge is the one-pixel column immediately right of the box.
func (b Box) RightEdge() Box { return Box{X: b.Right(), Y: b.Y, W: 1, H: b.H} }

// TopEdge is the one-pixel row immediately above the box.
func (b Box) TopEdge() Box { return Box{X: b.X, Y: b.Top(), W: b.W, H: 1} }

// BottomEdge is the one-pixel row immediately below the box.
func (b Box) BottomEdge() Box { return Box{X: b.X, Y: b.Y - 1, W: b.W, H: 1} }
