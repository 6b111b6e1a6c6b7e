package components

import (
	"math"

	"github.com/automoto/jumpingalien/config"
	"github.com/yohamta/donburi"
)

// PhysicsData is a kinematic body. Position is in pixels (y-up, bottom-left
// corner); speeds are in distance-units per second and accelerations in
// distance-units per second squared.
type PhysicsData struct {
	X, Y float64

	SpeedX float64
	SpeedY float64
	AccelX float64
	AccelY float64

	// Horizontal limits: |SpeedX| is 0 or within [InitialSpeed, MaxSpeed];
	// AccelX is 0 or ±Acceleration.
	InitialSpeed float64
	Acceleration float64
	MaxSpeed     float64
}

// ValidSpeedX reports whether vx is a legal horizontal speed for this body.
func (p *PhysicsData) ValidSpeedX(vx float64) bool {
	if vx == 0 {
		return true
	}
	speed := math.Abs(vx)
	return speed >= p.InitialSpeed && speed <= p.MaxSpeed
}

// SetAccelX stores ax if it is 0 or ±Acceleration, and 0 otherwise.
func (p *PhysicsData) SetAccelX(ax float64) {
	if ax == 0 || ax == p.Acceleration || ax == -p.Acceleration {
		p.AccelX = ax
		return
	}
	p.AccelX = 0
}

// SetAccelY stores ay if it is 0 or gravity, and 0 otherwise.
func (p *PhysicsData) SetAccelY(ay float64) {
	if ay == 0 || ay == config.Physics.Gravity {
		p.AccelY = ay
		return
	}
	p.AccelY = 0
}

// SetSpeedY stores vy, capped at the maximum rise speed.
func (p *PhysicsData) SetSpeedY(vy float64) {
	p.SpeedY = math.Min(vy, config.Physics.MaxRiseSpeed)
}

// SetMaxSpeed changes the horizontal cap and pulls SpeedX inside it.
func (p *PhysicsData) SetMaxSpeed(max float64) {
	p.MaxSpeed = max
	if math.Abs(p.SpeedX) > max {
		p.SpeedX = math.Copysign(max, p.SpeedX)
	}
}

var Physics = donburi.NewComponentType[PhysicsData]()
