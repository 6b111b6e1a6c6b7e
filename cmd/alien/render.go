package main

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/jumpingalien/config"
	"github.com/automoto/jumpingalien/components"
	"github.com/automoto/jumpingalien/fonts"
	"github.com/automoto/jumpingalien/shared/terrain"
	"github.com/automoto/jumpingalien/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// toScreen converts a world-space box (y-up, bottom-left origin) to the
// top-left corner of its screen rectangle.
func toScreen(cam *camera, x, y float64, h int) (float32, float32) {
	sx := float32(x) - cam.x
	sy := float32(cam.viewH) - (float32(y) - cam.y) - float32(h)
	return sx, sy
}

func drawWorld(screen *ebiten.Image, w *world.World, cam *camera) {
	screen.Fill(cfg.Viewer.AirColor)

	grid := w.Grid()
	ts := grid.TileSize()
	tx0 := grid.TileOf(int(cam.x))
	tx1 := grid.TileOf(int(cam.x) + cam.viewW)
	ty0 := grid.TileOf(int(cam.y))
	ty1 := grid.TileOf(int(cam.y) + cam.viewH)

	for ty := max(ty0, 0); ty <= min(ty1, grid.Rows()-1); ty++ {
		for tx := max(tx0, 0); tx <= min(tx1, grid.Cols()-1); tx++ {
			clr, ok := tileColor(grid.Feature(tx, ty))
			if !ok {
				continue
			}
			px, py := grid.TileOrigin(tx, ty)
			sx, sy := toScreen(cam, float64(px), float64(py), ts)
			vector.DrawFilledRect(screen, sx, sy, float32(ts), float32(ts), clr, false)
		}
	}

	for _, c := range w.Creatures() {
		x, y := c.Position()
		cw, ch := c.Size()
		clr := cfg.Viewer.EnemyColor
		if c.Kind() == components.KindPlant {
			clr = cfg.Viewer.PlantColor
		}
		sx, sy := toScreen(cam, x, y, ch)
		vector.DrawFilledRect(screen, sx, sy, float32(cw), float32(ch), clr, false)
	}

	if p, ok := w.Player(); ok {
		x, y := p.Position()
		pw, ph := p.Size()
		sx, sy := toScreen(cam, x, y, ph)
		vector.DrawFilledRect(screen, sx, sy, float32(pw), float32(ph), cfg.Viewer.PlayerColor, false)
	}
}

func tileColor(f terrain.Feature) (color.Color, bool) {
	switch f {
	case terrain.Ground:
		return cfg.Viewer.GroundColor, true
	case terrain.Water:
		return cfg.Viewer.WaterColor, true
	case terrain.Magma:
		return cfg.Viewer.MagmaColor, true
	}
	return nil, false
}

func drawHUD(screen *ebiten.Image, w *world.World, p *world.Character, banner string) {
	face := fonts.HUD.Get()
	line := w.Name()
	if p != nil && !p.Terminated() {
		x, y := p.Position()
		vx, vy := p.Velocity()
		line = fmt.Sprintf("%s  HP %d  vx %.2f  vy %.2f  frame %d",
			w.Name(), p.Hitpoints(), vx, vy, p.CurrentSprite())
		if f, ok := w.Grid().FeatureAt(int(x), int(y)); ok {
			line += "  on " + f.String()
		}
	}
	text.Draw(screen, line, face, 12, 24, cfg.Viewer.HUDTextColor)
	text.Draw(screen, "arrows/WASD move  up/space jump  down duck  R restart  N next level  Esc quit",
		fonts.HUDSmall.Get(), 12, cfg.Viewer.Height-12, cfg.Viewer.HUDTextColor)

	if banner != "" {
		text.Draw(screen, banner, fonts.Banner.Get(), 12, cfg.Viewer.Height/2, cfg.Viewer.HUDTextColor)
	}
}
