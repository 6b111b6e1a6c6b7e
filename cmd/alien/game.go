package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	cfg "github.com/automoto/jumpingalien/config"
	"github.com/automoto/jumpingalien/levels"
	"github.com/automoto/jumpingalien/shared/leveldata"
	"github.com/automoto/jumpingalien/world"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game hosts one World and feeds it keyboard input and fixed timesteps.
type Game struct {
	// levelPath is the file given with -level. When empty the bundled levels
	// are played and the next-level action cycles through them.
	levelPath string
	bundled   map[string]*leveldata.Level
	names     []string
	current   int

	dt float64

	world  *world.World
	player *world.Character
	camera *camera
	input  *inputState

	watcher *levelWatcher
	banner  string
}

// NewGame loads levelPath and starts watching it for edits. When levelPath
// is empty it loads every bundled level and starts with the default one.
func NewGame(levelPath string, tps int) (*Game, error) {
	g := &Game{
		levelPath: levelPath,
		dt:        1 / float64(tps),
		input:     &inputState{},
	}
	if levelPath == "" {
		all, names, err := leveldata.LoadAllLevels(levels.FS, ".")
		if err != nil {
			return nil, err
		}
		g.bundled, g.names = all, names
		for i, name := range names {
			if name == levels.Default {
				g.current = i
			}
		}
	}
	if err := g.load(); err != nil {
		return nil, err
	}

	if levelPath != "" {
		w, err := newLevelWatcher(levelPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", levelPath, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) load() error {
	level, err := g.readLevel()
	if err != nil {
		return err
	}
	if _, ok := level.PlayerSpawn(); !ok {
		return fmt.Errorf("level %s has no player spawn", level.Name)
	}

	w, err := world.FromLevel(level, defaultFrames())
	if err != nil {
		return err
	}
	w.OnTerminate(g.onTerminate)
	player, _ := w.Player()

	g.world = w
	g.player = player
	g.input = &inputState{}
	g.banner = ""

	viewW, viewH := cfg.Viewer.Width, cfg.Viewer.Height
	worldW, worldH := w.Bounds()
	g.camera = newCamera(viewW, viewH, worldW, worldH)
	g.camera.snap(g.focus())
	return nil
}

func (g *Game) readLevel() (*leveldata.Level, error) {
	if g.levelPath == "" {
		return g.bundled[g.names[g.current]], nil
	}
	dir, file := filepath.Split(g.levelPath)
	if dir == "" {
		dir = "."
	}
	return leveldata.Load(os.DirFS(dir), file)
}

// nextLevel switches to the following bundled level. It does nothing when a
// single level file is being played.
func (g *Game) nextLevel() error {
	if len(g.names) < 2 {
		return nil
	}
	g.current = (g.current + 1) % len(g.names)
	return g.load()
}

func (g *Game) onTerminate(ev world.TerminateEvent) {
	if g.player != nil && ev.Entity == g.player.Entity() {
		g.banner = fmt.Sprintf("%s - press R to restart", ev.Reason)
	}
}

// focus is the point the camera follows: the player's centre.
func (g *Game) focus() (x, y float64) {
	if g.player == nil || g.player.Terminated() {
		return g.camera.centre()
	}
	px, py := g.player.Position()
	w, h := g.player.Size()
	return px + float64(w)/2, py + float64(h)/2
}

func (g *Game) Update() error {
	g.pollReload()
	pollGamepads()

	if justPressed(actionRestart) {
		if err := g.load(); err != nil {
			log.Printf("Restart failed: %v", err)
		}
		return nil
	}
	if justPressed(actionNextLevel) {
		if err := g.nextLevel(); err != nil {
			log.Printf("Switching level failed: %v", err)
		}
		return nil
	}
	if justPressed(actionQuit) {
		return ebiten.Termination
	}

	if !g.player.Terminated() {
		g.input.apply(g.player)
	}

	if err := g.world.AdvanceTime(g.dt); err != nil {
		// The world is left as it was before the failing tick.
		log.Printf("Advance failed: %v", err)
	}

	g.camera.follow(g.focus())
	g.camera.update(float32(g.dt))
	return nil
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case <-g.watcher.Events:
		log.Printf("Reloading %s", g.levelPath)
		if err := g.load(); err != nil {
			log.Printf("Reload failed: %v", err)
		}
	case err := <-g.watcher.Errors:
		log.Printf("Watcher error: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.world, g.camera)
	drawHUD(screen, g.world, g.player, g.banner)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cfg.Viewer.Width, cfg.Viewer.Height
}

// Close stops the level watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// defaultFrames is the alien's sprite set: 8 poses and two 11-frame running
// cycles. Ducking poses are shorter than the rest.
func defaultFrames() []image.Point {
	const runFrames = 11
	stand := image.Pt(70, 97)
	duck := image.Pt(70, 72)

	frames := []image.Point{stand, duck, stand, stand, stand, stand, duck, duck}
	for i := 0; i < 2*runFrames; i++ {
		frames = append(frames, stand)
	}
	return frames
}
