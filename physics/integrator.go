// Package physics advances kinematic bodies through a level in collision-safe
// substeps.
package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/jumpingalien/collision"
	"github.com/automoto/jumpingalien/components"
	"github.com/automoto/jumpingalien/config"
	"github.com/automoto/jumpingalien/shared/gamemath"
	"github.com/yohamta/donburi"
)

var (
	// ErrInvalidArgument is returned for caller input outside its legal range.
	// The call has no effect.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState means integration produced a value that cannot be
	// represented, such as a NaN or infinite velocity.
	ErrInvalidState = errors.New("invalid state")
)

// Outcome says how an Advance call ended.
type Outcome int

const (
	// Completed means the whole time slice was consumed.
	Completed Outcome = iota
	// OutOfBounds means the next substep would have left the world. The body
	// keeps its last committed state and its owner must be terminated.
	OutOfBounds
	// Halted means the policy stopped the advance, usually because the
	// entity was terminated.
	Halted
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case OutOfBounds:
		return "out of bounds"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// Policy layers entity behavior over the integrator. Prepare sees the contacts
// at the body's position before a substep and may adjust its velocity and
// acceleration. Settle sees the contacts after the substep was committed;
// returning false stops the advance.
type Policy interface {
	Prepare(e *donburi.Entry, contacts *collision.Result)
	Settle(e *donburi.Entry, h float64, contacts *collision.Result) bool
}

// ValidTimestep checks the 0 < dt < MaxTimestep contract.
func ValidTimestep(dt float64) error {
	if !(dt > 0 && dt < config.Physics.MaxTimestep) {
		return fmt.Errorf("%w: timestep %v outside (0, %v)", ErrInvalidArgument, dt, config.Physics.MaxTimestep)
	}
	return nil
}

// Advance integrates e's body over dt seconds. The slice is consumed in
// substeps no longer than the time the body needs to cross one pixel or to
// reach its horizontal speed cap, so every pixel it enters has been probed
// first. Movement into an obstruction is suppressed per axis while velocity
// keeps integrating.
//
// policy may be nil.
func Advance(level *components.LevelData, e *donburi.Entry, dt float64, policy Policy) (Outcome, error) {
	if err := ValidTimestep(dt); err != nil {
		return Completed, err
	}

	obj := components.Object.Get(e)
	for remaining := dt; remaining > 0; {
		contacts := collision.Probe(level, obj)
		if policy != nil {
			policy.Prepare(e, &contacts)
		}

		body := components.Physics.Get(e)
		h := math.Min(substep(body), remaining)

		next, err := step(body, h, &contacts)
		if err != nil {
			return Completed, err
		}
		if !inWorld(level, next.X, next.Y) {
			return OutOfBounds, nil
		}

		*body = next
		obj.Sync(body.X, body.Y, int(obj.W), int(obj.H))
		remaining -= h

		if policy == nil {
			continue
		}
		after := collision.Probe(level, obj)
		if !policy.Settle(e, h, &after) {
			return Halted, nil
		}
	}
	return Completed, nil
}

// substep is the longest slice that keeps the body within one pixel of
// movement per axis and stops at the moment it reaches its horizontal cap.
func substep(body *components.PhysicsData) float64 {
	ppu := config.Physics.PixelsPerUnit
	ax := effectiveAccelX(body)

	h := gamemath.MinPositive(
		gamemath.PixelCrossingTime(body.SpeedX, ax, ppu),
		gamemath.PixelCrossingTime(body.SpeedY, body.AccelY, ppu),
		gamemath.TimeToCap(body.SpeedX, ax, body.MaxSpeed),
	)
	return math.Max(h, config.Physics.MinSubstep)
}

// effectiveAccelX drops horizontal acceleration that would push past the cap.
func effectiveAccelX(body *components.PhysicsData) float64 {
	ax := body.AccelX
	if math.Abs(body.SpeedX) >= body.MaxSpeed && gamemath.Sign(ax) == gamemath.Sign(body.SpeedX) {
		return 0
	}
	return ax
}

// step returns the body's state h seconds later. It does not mutate body.
func step(body *components.PhysicsData, h float64, contacts *collision.Result) (components.PhysicsData, error) {
	ppu := config.Physics.PixelsPerUnit
	ax := effectiveAccelX(body)
	next := *body

	// Substeps are sized to one pixel; the clamp absorbs rounding so a body
	// never skips a row or column it has not probed.
	dx := gamemath.ClampSpeed(ppu*gamemath.Displacement(body.SpeedX, ax, h), 1)
	dy := gamemath.ClampSpeed(ppu*gamemath.Displacement(body.SpeedY, body.AccelY, h), 1)
	if (dx < 0 && contacts.Blocked(collision.Left)) || (dx > 0 && contacts.Blocked(collision.Right)) {
		dx = 0
	}
	if (dy < 0 && contacts.Blocked(collision.Down)) || (dy > 0 && contacts.Blocked(collision.Up)) {
		dy = 0
	}
	// A diagonal step into a ground corner keeps its vertical part.
	if contacts.CornerBlocked(dx, dy) && crossesPixel(body.X, dx) && crossesPixel(body.Y, dy) {
		dx = 0
	}
	next.X += dx
	next.Y += dy

	vx := gamemath.ClampSpeed(body.SpeedX+ax*h, body.MaxSpeed)
	if body.SpeedX != 0 && gamemath.Sign(vx) != gamemath.Sign(body.SpeedX) {
		vx = 0
	}
	if vx != 0 && math.Abs(vx) < body.InitialSpeed {
		vx = math.Copysign(body.InitialSpeed, vx)
	}
	next.SpeedX = vx
	next.SetSpeedY(body.SpeedY + body.AccelY*h)

	for _, v := range []float64{next.X, next.Y, next.SpeedX, next.SpeedY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return *body, fmt.Errorf("%w: non-finite body state after %vs step (x=%v y=%v vx=%v vy=%v)",
				ErrInvalidState, h, next.X, next.Y, next.SpeedX, next.SpeedY)
		}
	}
	return next, nil
}

func crossesPixel(v, d float64) bool {
	return math.Floor(v+d) != math.Floor(v)
}

func inWorld(level *components.LevelData, x, y float64) bool {
	return x >= 0 && y >= 0 && x < float64(level.Grid.Width()) && y < float64(level.Grid.Height())
}
