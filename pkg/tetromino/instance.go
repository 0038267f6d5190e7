package tetromino

import "github.com/cbodonnell/blockfall/pkg/geometry"

// Instance is a piece on the board: a type, the top-left anchor of its matrix
// in world coordinates and its rotation state.
//
// Instance is a value; copying it clones it. The move and rotate methods never
// check for collisions, the caller validates the result before committing it.
type Instance struct {
	Type     Type
	Position geometry.Position
	Rotation geometry.RotationIndex
}

// NewInstance returns a piece of type t at anchor with rotation 0.
func NewInstance(t Type, anchor geometry.Position) Instance {
	return Instance{
		Type:     t,
		Position: anchor,
		Rotation: DefinitionOf(t).InitialRotation(),
	}
}

// LocalBlocks returns the occupied cells relative to the anchor.
func (i Instance) LocalBlocks() []geometry.Position {
	return DefinitionOf(i.Type).BlockPositions(i.Rotation)
}

// WorldBlocks returns the occupied cells in board coordinates.
func (i Instance) WorldBlocks() []geometry.Position {
	blocks := i.LocalBlocks()
	for n := range blocks {
		blocks[n] = blocks[n].Add(i.Position)
	}
	return blocks
}

func (i *Instance) MoveLeft() {
	i.Position = i.Position.Translate(-1, 0)
}

func (i *Instance) MoveRight() {
	i.Position = i.Position.Translate(1, 0)
}

func (i *Instance) MoveDown() {
	i.Position = i.Position.Translate(0, 1)
}

func (i *Instance) RotateClockwise() {
	i.Rotation = i.Rotation.Next()
}

func (i *Instance) RotateCounterclockwise() {
	i.Rotation = i.Rotation.Previous()
}
