package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// action is a viewer command bound to keys and gamepad buttons.
type action int

const (
	actionMoveLeft action = iota
	actionMoveRight
	actionJump
	actionDuck
	actionRestart
	actionNextLevel
	actionQuit
)

type binding struct {
	keys    []ebiten.Key
	buttons []ebiten.StandardGamepadButton
}

var bindings = map[action]binding{
	actionMoveLeft: {
		keys:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	actionMoveRight: {
		keys:    []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	actionJump: {
		keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace},
		// A / Cross
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	actionDuck: {
		keys:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	actionRestart: {
		keys: []ebiten.Key{ebiten.KeyR},
		// Select / Share
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
	},
	actionNextLevel: {
		keys: []ebiten.Key{ebiten.KeyN},
		// Start / Options
		buttons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
	actionQuit: {
		keys: []ebiten.Key{ebiten.KeyEscape},
	},
}

var gamepadIDs []ebiten.GamepadID

// pollGamepads refreshes the connected gamepads once per tick.
func pollGamepads() {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
}

func justPressed(a action) bool {
	b := bindings[a]
	for _, k := range b.keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		for _, btn := range b.buttons {
			if inpututil.IsStandardGamepadButtonJustPressed(id, btn) {
				return true
			}
		}
	}
	return false
}

func justReleased(a action) bool {
	b := bindings[a]
	for _, k := range b.keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		for _, btn := range b.buttons {
			if inpututil.IsStandardGamepadButtonJustReleased(id, btn) {
				return true
			}
		}
	}
	return false
}

func held(a action) bool {
	b := bindings[a]
	for _, k := range b.keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, id := range gamepadIDs {
		for _, btn := range b.buttons {
			if ebiten.IsStandardGamepadButtonPressed(id, btn) {
				return true
			}
		}
	}
	return false
}
