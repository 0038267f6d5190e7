package tetromino

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/blockfall/pkg/geometry"
)

type Type uint8

const (
	TypeI Type = iota
	TypeO
	TypeT
	TypeZ
	TypeS
	TypeJ
	TypeL
)

// AllTypes lists every piece type in declaration order.
var AllTypes = []Type{TypeI, TypeO, TypeT, TypeZ, TypeS, TypeJ, TypeL}

func (t Type) String() string {
	switch t {
	case TypeI:
		return "I"
	case TypeO:
		return "O"
	case TypeT:
		return "T"
	case TypeZ:
		return "Z"
	case TypeS:
		return "S"
	case TypeJ:
		return "J"
	case TypeL:
		return "L"
	}
	return fmt.Sprintf("Type(%d)", t)
}

// ParseType parses a single-letter piece name.
func ParseType(s string) (Type, error) {
	for _, t := range AllTypes {
		if strings.EqualFold(s, t.String()) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tetromino type: %s", s)
}

// ParseSequence parses piece letters such as "OITL". Spaces and commas are ignored.
func ParseSequence(s string) ([]Type, error) {
	var sequence []Type
	for _, r := range s {
		if r == ' ' || r == ',' {
			continue
		}
		t, err := ParseType(string(r))
		if err != nil {
			return nil, err
		}
		sequence = append(sequence, t)
	}
	if len(sequence) == 0 {
		return nil, fmt.Errorf("empty tetromino sequence")
	}
	return sequence, nil
}

// MatrixSize is the width and height of every rotation matrix.
const MatrixSize = 4

// Matrix maps a local cell (row, column) to occupied or empty.
type Matrix [MatrixSize][MatrixSize]bool

// Definition holds the rotation states of one piece type.
// Definitions are built once at package init and never mutated.
type Definition struct {
	Type      Type
	rotations []Matrix
}

// Rotations returns the number of rotation states.
func (d *Definition) Rotations() int {
	return len(d.rotations)
}

// InitialRotation returns rotation 0 with this definition's modulus.
func (d *Definition) InitialRotation() geometry.RotationIndex {
	return geometry.NewRotationIndex(0, len(d.rotations))
}

// BlockPositions returns the occupied local cells of the given rotation in row-major order.
// It panics if the rotation does not belong to this definition.
func (d *Definition) BlockPositions(rotation geometry.RotationIndex) []geometry.Position {
	if rotation.Value() < 0 || rotation.Value() >= len(d.rotations) {
		panic(fmt.Sprintf("rotation %d out of range for %s with %d rotations", rotation.Value(), d.Type, len(d.rotations)))
	}
	m := d.rotations[rotation.Value()]
	blocks := make([]geometry.Position, 0, 4)
	for y := 0; y < MatrixSize; y++ {
		for x := 0; x < MatrixSize; x++ {
			if m[y][x] {
				blocks = append(blocks, geometry.NewPosition(x, y))
			}
		}
	}
	return blocks
}

// DefinitionOf returns the shared definition of t. It panics for an unknown type.
func DefinitionOf(t Type) *Definition {
	if int(t) >= len(definitions) || definitions[t] == nil {
		panic(fmt.Sprintf("no definition for tetromino type %d", t))
	}
	return definitions[t]
}
