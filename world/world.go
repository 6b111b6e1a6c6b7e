// Package world is the simulation's driver-facing surface: a level, the
// entities living in it, and the handles a host uses to steer the player.
//
// A World is not safe for concurrent use. One caller advances it tick by tick.
package world

import (
	"errors"
	"fmt"
	"image"
	"log"
	"sort"

	"github.com/automoto/jumpingalien/animation"
	"github.com/automoto/jumpingalien/collision"
	"github.com/automoto/jumpingalien/components"
	"github.com/automoto/jumpingalien/physics"
	"github.com/automoto/jumpingalien/shared/gamemath"
	"github.com/automoto/jumpingalien/shared/leveldata"
	"github.com/automoto/jumpingalien/shared/terrain"
	"github.com/automoto/jumpingalien/systems"
	"github.com/automoto/jumpingalien/systems/factory"
	"github.com/yohamta/donburi"
)

var (
	ErrInvalidArgument = physics.ErrInvalidArgument
	ErrInvalidState    = physics.ErrInvalidState

	// ErrTerminated is returned when a detached entity is asked to advance.
	ErrTerminated = errors.New("entity terminated")
	// ErrPlayerExists is returned when spawning a second player.
	ErrPlayerExists = errors.New("world already has a player")
)

// TerminateEvent describes an entity leaving the world.
type TerminateEvent struct {
	Entity donburi.Entity
	Kind   components.EntityKind
	Reason systems.Reason
	X, Y   float64
}

// World owns a level's tile grid and every live entity in it.
type World struct {
	ecs    donburi.World
	level  *components.LevelData
	policy *systems.Policy

	player    *Character
	creatures map[donburi.Entity]*Creature

	listeners []func(TerminateEvent)
}

// New creates an empty world over grid.
func New(name string, grid *terrain.Grid) *World {
	ecs := donburi.NewWorld()
	levelEntry := factory.CreateLevel(ecs, name, grid)

	w := &World{
		ecs:       ecs,
		level:     components.Level.Get(levelEntry),
		creatures: make(map[donburi.Entity]*Creature),
	}
	w.policy = &systems.Policy{Level: w.level, Terminate: w.terminate}
	return w
}

// FromLevel creates a world from a parsed level file and spawns its entities.
// The player, if the level places one, uses the given frame sizes.
func FromLevel(level *leveldata.Level, frames []image.Point) (*World, error) {
	w := New(level.Name, level.Grid)

	for _, s := range level.Spawns {
		kind, err := components.ParseKind(s.Kind)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", level.Name, err)
		}
		if kind == components.KindPlayer {
			_, err = w.SpawnPlayer(s.X, s.Y, frames)
		} else {
			_, err = w.SpawnCreature(kind, s.X, s.Y)
		}
		if err != nil {
			return nil, fmt.Errorf("level %s: spawn %s at (%v, %v): %w", level.Name, s.Kind, s.X, s.Y, err)
		}
	}

	log.Printf("Loaded level: %s, %dx%d tiles of %d px, %d creatures",
		level.Name, level.Grid.Cols(), level.Grid.Rows(), level.Grid.TileSize(), len(w.creatures))
	return w, nil
}

func (w *World) Name() string { return w.level.Name }

// Bounds returns the world size in pixels.
func (w *World) Bounds() (width, height int) {
	return w.level.Grid.Width(), w.level.Grid.Height()
}

func (w *World) Grid() *terrain.Grid { return w.level.Grid }

// TileClassification returns the feature of tile (tx, ty).
func (w *World) TileClassification(tx, ty int) (terrain.Feature, error) {
	if !w.level.Grid.InBounds(tx, ty) {
		return terrain.Air, fmt.Errorf("%w: tile (%d, %d) outside %dx%d grid",
			ErrInvalidArgument, tx, ty, w.level.Grid.Cols(), w.level.Grid.Rows())
	}
	return w.level.Grid.Feature(tx, ty), nil
}

// EntitiesNear returns every live entity whose box intersects box.
func (w *World) EntitiesNear(box gamemath.Box) []donburi.Entity {
	var out []donburi.Entity
	for _, obj := range collision.Near(w.level.Space, box) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if components.Object.Get(entry).Box().Intersects(box) {
			out = append(out, entry.Entity())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Player returns the player, if one is alive.
func (w *World) Player() (*Character, bool) {
	return w.player, w.player != nil
}

// Creatures returns every live creature, ordered by entity id.
func (w *World) Creatures() []*Creature {
	out := make([]*Creature, 0, len(w.creatures))
	for _, c := range w.creatures {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// OnTerminate registers fn to be called whenever an entity leaves the world.
func (w *World) OnTerminate(fn func(TerminateEvent)) {
	w.listeners = append(w.listeners, fn)
}

// SpawnPlayer places the player with its bottom-left corner at (x, y).
// frames lists the pixel size of every sprite frame: an even number, at
// least 10, all non-empty.
func (w *World) SpawnPlayer(x, y float64, frames []image.Point) (*Character, error) {
	if w.player != nil {
		return nil, ErrPlayerExists
	}
	if err := w.checkPosition(x, y); err != nil {
		return nil, err
	}
	if _, err := animation.FramesPerSide(len(frames)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	for i, f := range frames {
		if f.X <= 0 || f.Y <= 0 {
			return nil, fmt.Errorf("%w: frame %d has size %dx%d", ErrInvalidArgument, i, f.X, f.Y)
		}
	}

	entry := factory.CreatePlayer(w.ecs, w.level, x, y, frames)
	w.player = &Character{world: w, entry: entry, id: entry.Entity()}
	return w.player, nil
}

// SpawnCreature places a creature of the given kind at (x, y).
func (w *World) SpawnCreature(kind components.EntityKind, x, y float64) (*Creature, error) {
	if err := w.checkPosition(x, y); err != nil {
		return nil, err
	}
	entry, err := factory.CreateCreature(w.ecs, w.level, kind, x, y)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	c := &Creature{world: w, entry: entry, id: entry.Entity(), kind: kind}
	w.creatures[c.id] = c
	return c, nil
}

// AdvanceTime advances every live entity by dt seconds, the player first.
// dt must lie in (0, 0.2); otherwise nothing changes.
func (w *World) AdvanceTime(dt float64) error {
	if err := physics.ValidTimestep(dt); err != nil {
		return err
	}

	var entries []*donburi.Entry
	if w.player != nil {
		entries = append(entries, w.player.entry)
	}
	for _, c := range w.Creatures() {
		entries = append(entries, c.entry)
	}

	for _, e := range entries {
		if !e.Valid() {
			continue
		}
		if err := w.advance(e, dt); err != nil {
			return err
		}
	}
	return nil
}

func (w *World) advance(e *donburi.Entry, dt float64) error {
	outcome, err := physics.Advance(w.level, e, dt, w.policy)
	if err != nil {
		return fmt.Errorf("advance %s: %w", components.Kind.Get(e).Kind, err)
	}
	if outcome == physics.OutOfBounds {
		w.terminate(e, systems.ReasonOutOfBounds)
	}
	return nil
}

func (w *World) checkPosition(x, y float64) error {
	width, height := w.Bounds()
	if !(x >= 0 && y >= 0 && x < float64(width) && y < float64(height)) {
		return fmt.Errorf("%w: position (%v, %v) outside %dx%d world", ErrInvalidArgument, x, y, width, height)
	}
	return nil
}

func (w *World) terminate(e *donburi.Entry, reason systems.Reason) {
	if !e.Valid() {
		return
	}

	body := components.Physics.Get(e)
	ev := TerminateEvent{
		Entity: e.Entity(),
		Kind:   components.Kind.Get(e).Kind,
		Reason: reason,
		X:      body.X,
		Y:      body.Y,
	}

	if w.player != nil && w.player.id == ev.Entity {
		w.player.detach()
		w.player = nil
	} else if c, ok := w.creatures[ev.Entity]; ok {
		c.detach()
		delete(w.creatures, ev.Entity)
	}
	systems.Remove(w.level, e)

	log.Printf("Terminated %s at (%.1f, %.1f): %s", ev.Kind, ev.X, ev.Y, ev.Reason)
	for _, fn := range w.listeners {
		fn(ev)
	}
}
