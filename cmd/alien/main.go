// Command alien runs a level in a window and lets a keyboard drive the player.
package main

import (
	"flag"
	"log"
	"os"

	cfg "github.com/automoto/jumpingalien/config"
	"github.com/automoto/jumpingalien/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func main() {
	levelPath := flag.String("level", "", "level file (.yaml, .yml or .tmx); the bundled level if empty")
	scale := flag.Float64("scale", 0, "window scale (0 = saved or default)")
	tps := flag.Int("tps", cfg.Viewer.TPS, "simulation ticks per second")
	flag.Parse()

	if *tps <= 0 || 1/float64(*tps) >= cfg.Physics.MaxTimestep {
		log.Fatalf("tps %d gives a tick of %d ms or more", *tps, int(cfg.Physics.MaxTimestep*1000))
	}

	if err := initPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved := loadSettings()
	if *levelPath == "" && saved.Level != "" {
		if _, err := os.Stat(saved.Level); err == nil {
			*levelPath = saved.Level
		}
	}
	if *scale <= 0 {
		*scale = saved.Scale
	}
	if *scale <= 0 {
		*scale = cfg.Viewer.Scale
	}

	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, cfg.Viewer.HUDFontSize); err != nil {
		log.Fatal(err)
	}
	if err := fonts.LoadFontWithSize(fonts.HUDSmall, goregular.TTF, cfg.Viewer.HUDFontSize*0.8); err != nil {
		log.Fatal(err)
	}
	if err := fonts.LoadFontWithSize(fonts.Banner, goregular.TTF, cfg.Viewer.HUDFontSize*2); err != nil {
		log.Fatal(err)
	}

	game, err := NewGame(*levelPath, *tps)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer game.Close()

	ebiten.SetWindowTitle("Jumping Alien - " + game.world.Name())
	width := float64(cfg.Viewer.Width) * *scale
	height := float64(cfg.Viewer.Height) * *scale
	ebiten.SetWindowSize(int(width), int(height))
	ebiten.SetTPS(*tps)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	saveSettings(savedSettings{Level: *levelPath, Scale: *scale})
}
