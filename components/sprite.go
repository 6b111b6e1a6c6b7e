package components

import (
	"image"

	"github.com/yohamta/donburi"
)

// SpriteData holds the pixel size of every frame of a sprite set. The body's
// collision box always has the size of its current frame.
type SpriteData struct {
	Frames  []image.Point
	Current int
}

// Size returns the size of the current frame.
func (s *SpriteData) Size() (w, h int) {
	f := s.Frames[s.Current]
	return f.X, f.Y
}

// FramesPerSide is the number of running frames for each direction.
func (s *SpriteData) FramesPerSide() int {
	return (len(s.Frames) - 8) / 2
}

var Sprite = donburi.NewComponentType[SpriteData]()
