package components

import "github.com/yohamta/donburi"

// ExposureData tracks time-based hazards, in seconds.
type ExposureData struct {
	InWater    float64
	InMagma    float64
	Invincible float64

	// Magma is set while the body overlaps magma, so entry damage is dealt once.
	Magma bool
}

var Exposure = donburi.NewComponentType[ExposureData]()
