package tetromino

import (
	"testing"

	"github.com/cbodonnell/blockfall/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions_RotationCounts(t *testing.T) {
	tests := []struct {
		typ  Type
		want int
	}{
		{typ: TypeI, want: 2},
		{typ: TypeO, want: 1},
		{typ: TypeT, want: 4},
		{typ: TypeZ, want: 2},
		{typ: TypeS, want: 2},
		{typ: TypeJ, want: 4},
		{typ: TypeL, want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			def := DefinitionOf(tt.typ)
			assert.Equal(t, tt.typ, def.Type)
			assert.Equal(t, tt.want, def.Rotations())
			for r := 0; r < def.Rotations(); r++ {
				blocks := def.BlockPositions(geometry.NewRotationIndex(r, def.Rotations()))
				assert.Len(t, blocks, 4, "rotation %d", r)
				for _, b := range blocks {
					assert.True(t, geometry.NewDimensions(MatrixSize, MatrixSize).Contains(b))
				}
			}
		})
	}
}

func TestDefinition_BlockPositionsO(t *testing.T) {
	def := DefinitionOf(TypeO)
	want := []geometry.Position{
		geometry.NewPosition(1, 1),
		geometry.NewPosition(2, 1),
		geometry.NewPosition(1, 2),
		geometry.NewPosition(2, 2),
	}
	assert.Equal(t, want, def.BlockPositions(def.InitialRotation()))
}

func TestDefinition_BlockPositionsPanicsOnForeignRotation(t *testing.T) {
	def := DefinitionOf(TypeO)
	assert.Panics(t, func() {
		def.BlockPositions(geometry.NewRotationIndex(3, 4))
	})
	assert.Panics(t, func() {
		def.BlockPositions(geometry.NewRotationIndex(1, 2))
	})
}

func TestDefinitionOf_PanicsOnUnknownType(t *testing.T) {
	assert.Panics(t, func() { DefinitionOf(Type(42)) })
}

func TestDefinitions_FourRotationsReturnToStart(t *testing.T) {
	for _, typ := range AllTypes {
		i := NewInstance(typ, geometry.NewPosition(0, 0))
		start := i.WorldBlocks()
		for n := 0; n < 4; n++ {
			i.RotateClockwise()
		}
		assert.Equal(t, start, i.WorldBlocks(), typ.String())
	}
}

func TestInstance_WorldBlocks(t *testing.T) {
	i := NewInstance(TypeI, geometry.NewPosition(3, 0))
	want := []geometry.Position{
		geometry.NewPosition(3, 1),
		geometry.NewPosition(4, 1),
		geometry.NewPosition(5, 1),
		geometry.NewPosition(6, 1),
	}
	assert.Equal(t, want, i.WorldBlocks())
	assert.Equal(t, geometry.NewPosition(3, 0), i.Position, "WorldBlocks must not move the piece")
}

func TestInstance_Moves(t *testing.T) {
	i := NewInstance(TypeT, geometry.NewPosition(3, 0))
	i.MoveLeft()
	i.MoveDown()
	i.MoveDown()
	i.MoveRight()
	i.MoveRight()
	assert.Equal(t, geometry.NewPosition(4, 2), i.Position)

	i.RotateCounterclockwise()
	assert.Equal(t, 3, i.Rotation.Value())
	i.RotateClockwise()
	i.RotateClockwise()
	assert.Equal(t, 1, i.Rotation.Value())
}

func TestInstance_CopyIsIndependent(t *testing.T) {
	i := NewInstance(TypeJ, geometry.NewPosition(3, 0))
	clone := i
	clone.MoveDown()
	clone.RotateClockwise()
	assert.Equal(t, geometry.NewPosition(3, 0), i.Position)
	assert.Equal(t, 0, i.Rotation.Value())
}

func TestParseType(t *testing.T) {
	for _, typ := range AllTypes {
		got, err := ParseType(typ.String())
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}
	got, err := ParseType("l")
	require.NoError(t, err)
	assert.Equal(t, TypeL, got)

	_, err = ParseType("X")
	assert.Error(t, err)
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Type
		wantErr bool
	}{
		{name: "letters", input: "OIT", want: []Type{TypeO, TypeI, TypeT}},
		{name: "separators and case", input: "s, z l", want: []Type{TypeS, TypeZ, TypeL}},
		{name: "unknown letter", input: "OX", wantErr: true},
		{name: "empty", input: " , ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSequence(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSequenceGenerator_Cycles(t *testing.T) {
	g := NewSequenceGenerator(TypeO, TypeI)
	spawn := geometry.NewPosition(3, 0)
	got := []Type{}
	for n := 0; n < 5; n++ {
		piece := g.Generate(spawn)
		assert.Equal(t, spawn, piece.Position)
		assert.Equal(t, 0, piece.Rotation.Value())
		got = append(got, piece.Type)
	}
	assert.Equal(t, []Type{TypeO, TypeI, TypeO, TypeI, TypeO}, got)
	assert.Panics(t, func() { NewSequenceGenerator() })
}

func TestRandomGenerator_IsDeterministicPerSeed(t *testing.T) {
	a := NewRandomGenerator(7)
	b := NewRandomGenerator(7)
	spawn := geometry.NewPosition(3, 0)
	seen := map[Type]bool{}
	for n := 0; n < 200; n++ {
		pa, pb := a.Generate(spawn), b.Generate(spawn)
		assert.Equal(t, pa.Type, pb.Type)
		seen[pa.Type] = true
	}
	assert.Len(t, seen, len(AllTypes))
}

func TestBagGenerator_DealsEachTypeOncePerBag(t *testing.T) {
	g := NewBagGenerator(42)
	spawn := geometry.NewPosition(3, 0)
	for bag := 0; bag < 3; bag++ {
		seen := map[Type]int{}
		for n := 0; n < len(AllTypes); n++ {
			seen[g.Generate(spawn).Type]++
		}
		for _, typ := range AllTypes {
			assert.Equal(t, 1, seen[typ], "bag %d type %s", bag, typ)
		}
	}
}

func TestNewGenerator(t *testing.T) {
	g, err := NewGenerator("bag", 1, "")
	require.NoError(t, err)
	assert.IsType(t, &BagGenerator{}, g)

	g, err = NewGenerator("", 1, "")
	require.NoError(t, err)
	assert.IsType(t, &RandomGenerator{}, g)

	g, err = NewGenerator("sequence", 1, "OI")
	require.NoError(t, err)
	spawn := geometry.NewPosition(3, 0)
	assert.Equal(t, TypeO, g.Generate(spawn).Type)
	assert.Equal(t, TypeI, g.Generate(spawn).Type)

	_, err = NewGenerator("sequence", 1, "")
	assert.Error(t, err)

	_, err = NewGenerator("tgm", 1, "")
	assert.Error(t, err)
}
