package geometry

import "fmt"

// Position is a cell coordinate on the board.
// The origin is the top-left cell, x grows to the right and y grows downwards.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// NewPosition returns the position (x, y).
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the component-wise sum of p and o.
func (p Position) Add(o Position) Position {
	return Position{X: p.X + o.X, Y: p.Y + o.Y}
}

// Translate returns p moved by dx columns and dy rows.
func (p Position) Translate(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Dimensions is the size of a rectangular area anchored at the origin.
type Dimensions struct {
	Width  uint `json:"width" yaml:"width"`
	Height uint `json:"height" yaml:"height"`
}

// NewDimensions returns a width x height bound.
func NewDimensions(width, height uint) Dimensions {
	return Dimensions{Width: width, Height: height}
}

// Contains reports whether p lies inside the bound.
// Every in-bounds check on the board goes through here.
func (d Dimensions) Contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && uint(p.X) < d.Width && uint(p.Y) < d.Height
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// RotationIndex is one of the rotation states of a piece.
// The value always lies in [0, modulus) and wraps when stepped past either end.
type RotationIndex struct {
	value   int
	modulus int
}

// NewRotationIndex panics if modulus is not positive or value is out of range.
func NewRotationIndex(value, modulus int) RotationIndex {
	if modulus <= 0 {
		panic(fmt.Sprintf("rotation modulus must be positive, got %d", modulus))
	}
	if value < 0 || value >= modulus {
		panic(fmt.Sprintf("rotation index %d out of range [0, %d)", value, modulus))
	}
	return RotationIndex{value: value, modulus: modulus}
}

func (r RotationIndex) Value() int {
	return r.value
}

func (r RotationIndex) Modulus() int {
	return r.modulus
}

// Next returns the rotation one step clockwise.
func (r RotationIndex) Next() RotationIndex {
	return RotationIndex{value: (r.value + 1) % r.modulus, modulus: r.modulus}
}

// Previous returns the rotation one step counterclockwise.
func (r RotationIndex) Previous() RotationIndex {
	return RotationIndex{value: (r.value + r.modulus - 1) % r.modulus, modulus: r.modulus}
}

func (r RotationIndex) String() string {
	return fmt.Sprintf("%d/%d", r.value, r.modulus)
}
