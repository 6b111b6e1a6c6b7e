package config

import "image/color"

// PhysicsConfig contains the integrator's unit conventions and limits.
type PhysicsConfig struct {
	// PixelsPerUnit converts distance-units (velocities, accelerations) to pixels.
	PixelsPerUnit float64

	// Timestep contract: 0 < dt < MaxTimestep.
	MaxTimestep float64
	MinSubstep  float64

	// Cell size of the resolv space that indexes bodies.
	SpaceCellSize int

	// Vertical motion
	Gravity      float64 // the only nonzero legal vertical acceleration
	MaxRiseSpeed float64 // cap on vy; there is no floor
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	InitialSpeed float64 // vxInitial
	Acceleration float64 // axInitial
	MaxSpeed     float64
	DuckMaxSpeed float64
	JumpSpeed    float64

	// Health
	Hitpoints       int
	MaxHitpoints    int
	InvincibleTime  float64 // seconds of invincibility after an enemy hit
	EnemyDamage     int
	PlantHeal       int
	LastMoveDecay   float64 // rate at which last-direction memory fades per second
	MinSpriteFrames int
	FrameDuration   float64 // seconds per running frame
}

// TerrainConfig contains per-feature exposure rules.
type TerrainConfig struct {
	WaterDamage   int
	WaterInterval float64

	MagmaEntryDamage int
	MagmaDamage      int
	MagmaInterval    float64
}

// CreatureTypeConfig describes a non-player creature's body.
type CreatureTypeConfig struct {
	Name      string
	Width     int
	Height    int
	Hitpoints int
	// Cap on |vx| when a driver sets its velocity.
	MaxSpeed float64
}

// CreatureConfig contains configuration for every creature kind.
type CreatureConfig struct {
	Types map[string]CreatureTypeConfig
}

// ViewerConfig contains settings for the ebiten host in cmd/alien.
type ViewerConfig struct {
	Width  int
	Height int
	Scale  float64
	TPS    int

	CameraEaseSeconds float32
	HUDFontSize       float64

	GroundColor  color.RGBA
	WaterColor   color.RGBA
	MagmaColor   color.RGBA
	AirColor     color.RGBA
	PlayerColor  color.RGBA
	PlantColor   color.RGBA
	EnemyColor   color.RGBA
	HUDTextColor color.RGBA
}

// Global configuration instances
var Physics PhysicsConfig
var Player PlayerConfig
var Terrain TerrainConfig
var Creature CreatureConfig
var Viewer ViewerConfig

// Direction constants for horizontal movement
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Creature type keys
const (
	CreaturePlant = "plant"
	CreatureShark = "shark"
	CreatureSlime = "slime"
)

func init() {
	Physics = PhysicsConfig{
		PixelsPerUnit: 100,
		MaxTimestep:   0.2,
		MinSubstep:    1e-6,
		SpaceCellSize: 16,
		Gravity:       -10,
		MaxRiseSpeed:  8,
	}

	Player = PlayerConfig{
		InitialSpeed: 1,
		Acceleration: 0.9,
		MaxSpeed:     3,
		DuckMaxSpeed: 1,
		JumpSpeed:    8,

		Hitpoints:       100,
		MaxHitpoints:    500,
		InvincibleTime:  0.6,
		EnemyDamage:     50,
		PlantHeal:       50,
		LastMoveDecay:   1,
		MinSpriteFrames: 10,
		FrameDuration:   0.075,
	}

	Terrain = TerrainConfig{
		WaterDamage:   2,
		WaterInterval: 0.2,

		MagmaEntryDamage: 50,
		MagmaDamage:      50,
		MagmaInterval:    0.2,
	}

	Creature = CreatureConfig{
		Types: map[string]CreatureTypeConfig{
			CreaturePlant: {Name: "Plant", Width: 32, Height: 32, Hitpoints: 1, MaxSpeed: 0.5},
			CreatureShark: {Name: "Shark", Width: 66, Height: 42, Hitpoints: 100, MaxSpeed: 4},
			CreatureSlime: {Name: "Slime", Width: 40, Height: 24, Hitpoints: 100, MaxSpeed: 1},
		},
	}

	Viewer = ViewerConfig{
		Width:  1024,
		Height: 768,
		Scale:  1,
		TPS:    60,

		CameraEaseSeconds: 0.25,
		HUDFontSize:       14,

		GroundColor:  color.RGBA{R: 110, G: 80, B: 50, A: 255},
		WaterColor:   color.RGBA{R: 40, G: 110, B: 220, A: 255},
		MagmaColor:   color.RGBA{R: 230, G: 80, B: 20, A: 255},
		AirColor:     color.RGBA{R: 160, G: 210, B: 240, A: 255},
		PlayerColor:  color.RGBA{R: 60, G: 200, B: 80, A: 255},
		PlantColor:   color.RGBA{R: 20, G: 140, B: 40, A: 255},
		EnemyColor:   color.RGBA{R: 200, G: 40, B: 60, A: 255},
		HUDTextColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}
