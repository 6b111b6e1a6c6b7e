package main

import (
	"math"

	cfg "github.com/automoto/jumpingalien/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// camera is the bottom-left corner of the view in world pixels. It eases
// towards its target and never shows anything outside the level.
type camera struct {
	x, y           float32
	viewW, viewH   int
	worldW, worldH int

	targetX, targetY float32
	tweenX, tweenY   *gween.Tween
}

func newCamera(viewW, viewH, worldW, worldH int) *camera {
	return &camera{viewW: viewW, viewH: viewH, worldW: worldW, worldH: worldH}
}

func (c *camera) centre() (x, y float64) {
	return float64(c.x) + float64(c.viewW)/2, float64(c.y) + float64(c.viewH)/2
}

func (c *camera) clamp(fx, fy float64) (float32, float32) {
	x := fx - float64(c.viewW)/2
	y := fy - float64(c.viewH)/2
	x = math.Max(0, math.Min(x, float64(c.worldW-c.viewW)))
	y = math.Max(0, math.Min(y, float64(c.worldH-c.viewH)))
	// Levels smaller than the view are pinned to the origin.
	if c.worldW < c.viewW {
		x = 0
	}
	if c.worldH < c.viewH {
		y = 0
	}
	return float32(x), float32(y)
}

// snap jumps straight to the focus point.
func (c *camera) snap(fx, fy float64) {
	c.x, c.y = c.clamp(fx, fy)
	c.targetX, c.targetY = c.x, c.y
	c.tweenX, c.tweenY = nil, nil
}

// follow retargets the ease when the focus has moved at least a pixel.
func (c *camera) follow(fx, fy float64) {
	tx, ty := c.clamp(fx, fy)
	if abs32(tx-c.targetX) < 1 && abs32(ty-c.targetY) < 1 {
		return
	}
	c.targetX, c.targetY = tx, ty
	c.tweenX = gween.New(c.x, tx, cfg.Viewer.CameraEaseSeconds, ease.OutQuad)
	c.tweenY = gween.New(c.y, ty, cfg.Viewer.CameraEaseSeconds, ease.OutQuad)
}

func (c *camera) update(dt float32) {
	if c.tweenX != nil {
		var done bool
		c.x, done = c.tweenX.Update(dt)
		if done {
			c.tweenX = nil
		}
	}
	if c.tweenY != nil {
		var done bool
		c.y, done = c.tweenY.Update(dt)
		if done {
			c.tweenY = nil
		}
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
