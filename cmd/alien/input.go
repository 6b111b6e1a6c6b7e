package main

import "github.com/automoto/jumpingalien/world"

// inputState turns action transitions into character commands. A duck that
// could not end under a low ceiling is retried every tick until it can.
type inputState struct {
	pendingStand bool
}

func (s *inputState) apply(c *world.Character) {
	switch {
	case justPressed(actionMoveLeft):
		c.StartMoveLeft()
	case justPressed(actionMoveRight):
		c.StartMoveRight()
	}

	if justReleased(actionMoveLeft) {
		c.EndMoveLeft()
		if held(actionMoveRight) {
			c.StartMoveRight()
		}
	}
	if justReleased(actionMoveRight) {
		c.EndMoveRight()
		if held(actionMoveLeft) {
			c.StartMoveLeft()
		}
	}

	if justPressed(actionJump) {
		c.StartJump()
	}
	if justReleased(actionJump) {
		c.EndJump()
	}

	if justPressed(actionDuck) {
		s.pendingStand = false
		c.StartDuck()
	}
	if justReleased(actionDuck) {
		s.pendingStand = true
	}
	if s.pendingStand {
		c.EndDuck()
		s.pendingStand = c.Ducking()
	}
}
