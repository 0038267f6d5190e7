package types

import "fmt"

// Input is an abstract player command produced by a device-specific front-end.
type Input int

const (
	InputMoveLeft Input = iota
	InputMoveRight
	InputMoveDown
	InputRotateClockwise
	InputRotateCounterclockwise
	InputDrop
	InputStartGame
)

func (i Input) String() string {
	switch i {
	case InputMoveLeft:
		return "MoveLeft"
	case InputMoveRight:
		return "MoveRight"
	case InputMoveDown:
		return "MoveDown"
	case InputRotateClockwise:
		return "RotateClockwise"
	case InputRotateCounterclockwise:
		return "RotateCounterclockwise"
	case InputDrop:
		return "Drop"
	case InputStartGame:
		return "StartGame"
	}
	return fmt.Sprintf("Input(%d)", int(i))
}
