package input

import (
	"github.com/cbodonnell/blockfall/client/input/repeat"
	"github.com/cbodonnell/blockfall/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	// horizontal movement repeats after a short delay
	shiftRepeater = repeat.Repeater{Delay: 10, Interval: 3}
	// soft drop repeats almost immediately
	softDropRepeater = repeat.Repeater{Delay: 2, Interval: 2}
)

// Inputs translates this frame's keyboard state into playfield inputs.
func Inputs() []types.Input {
	var inputs []types.Input
	if shiftRepeater.Fires(inpututil.KeyPressDuration(ebiten.KeyLeft)) {
		inputs = append(inputs, types.InputMoveLeft)
	}
	if shiftRepeater.Fires(inpututil.KeyPressDuration(ebiten.KeyRight)) {
		inputs = append(inputs, types.InputMoveRight)
	}
	if softDropRepeater.Fires(inpututil.KeyPressDuration(ebiten.KeyDown)) {
		inputs = append(inputs, types.InputMoveDown)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyX) {
		inputs = append(inputs, types.InputRotateClockwise)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		inputs = append(inputs, types.InputRotateCounterclockwise)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		inputs = append(inputs, types.InputDrop)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		inputs = append(inputs, types.InputStartGame)
	}
	return inputs
}

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle keyboard, mouse, touch and gamepad inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
			return true
		}
	}
	return false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsPauseJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyP)
}
