// Package animation picks the sprite frame for a character's motion state.
//
// A sprite set has 8 fixed poses followed by two equally long running
// cycles, right then left:
//
//	0 idle            4 jumping right   8..           running right
//	1 ducking         5 jumping left    8+n..         running left
//	2 facing right    6 ducking right
//	3 facing left     7 ducking left
package animation

import (
	"fmt"
	"math"

	"github.com/automoto/jumpingalien/config"
)

const (
	FrameIdle = iota
	FrameDuck
	FrameFaceRight
	FrameFaceLeft
	FrameJumpRight
	FrameJumpLeft
	FrameDuckRight
	FrameDuckLeft
	FrameRunStart
)

// State is everything frame selection depends on.
type State struct {
	SpeedX   float64
	LastMove float64
	Ducking  bool
	Airborne bool
	Clock    float64

	FramesPerSide int
}

// FramesPerSide returns the length of each running cycle in a set of total
// frames, which must be even and at least config.Player.MinSpriteFrames.
func FramesPerSide(total int) (int, error) {
	if total < config.Player.MinSpriteFrames || total%2 != 0 {
		return 0, fmt.Errorf("sprite set needs an even number of at least %d frames, got %d",
			config.Player.MinSpriteFrames, total)
	}
	return (total - FrameRunStart) / 2, nil
}

// CyclePeriod is the duration of one running cycle.
func CyclePeriod(framesPerSide int) float64 {
	return float64(framesPerSide) * config.Player.FrameDuration
}

// WrapClock folds an animation clock into [0, CyclePeriod).
func WrapClock(clock float64, framesPerSide int) float64 {
	period := CyclePeriod(framesPerSide)
	if period <= 0 {
		return 0
	}
	clock = math.Mod(clock, period)
	if clock < 0 {
		clock += period
	}
	return clock
}

// FrameIndex is the running frame the clock points at.
func FrameIndex(clock float64) int {
	return int(math.Floor(clock / config.Player.FrameDuration))
}

// Select returns the frame for s. The first matching rule wins:
// standing poses, airborne poses, ducking poses, running cycles.
func Select(s State) int {
	moving := s.SpeedX != 0

	if !moving && s.LastMove == 0 {
		if s.Ducking {
			return FrameDuck
		}
		return FrameIdle
	}

	if !moving && !s.Ducking {
		if s.LastMove > 0 {
			return FrameFaceRight
		}
		return FrameFaceLeft
	}

	if moving && s.Airborne && !s.Ducking {
		if s.SpeedX > 0 {
			return FrameJumpRight
		}
		return FrameJumpLeft
	}

	if s.Ducking {
		if facingRight(s) {
			return FrameDuckRight
		}
		return FrameDuckLeft
	}

	if s.FramesPerSide > 0 {
		i := FrameIndex(s.Clock) % s.FramesPerSide
		if i < 0 {
			i += s.FramesPerSide
		}
		if s.SpeedX > 0 {
			return FrameRunStart + i
		}
		return FrameRunStart + s.FramesPerSide + i
	}

	return FrameIdle
}

func facingRight(s State) bool {
	if s.SpeedX != 0 {
		return s.SpeedX > 0
	}
	return s.LastMove > 0
}
