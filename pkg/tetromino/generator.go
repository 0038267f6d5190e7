package tetromino

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cbodonnell/blockfall/pkg/geometry"
)

// Generator supplies the next piece to spawn.
type Generator interface {
	Generate(spawn geometry.Position) Instance
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(spawn geometry.Position) Instance

func (f GeneratorFunc) Generate(spawn geometry.Position) Instance {
	return f(spawn)
}

// RandomGenerator picks each type uniformly at random.
type RandomGenerator struct {
	randomizer *rand.Rand
}

func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{
		randomizer: rand.New(rand.NewSource(seed)),
	}
}

func (g *RandomGenerator) Generate(spawn geometry.Position) Instance {
	return NewInstance(AllTypes[g.randomizer.Intn(len(AllTypes))], spawn)
}

// BagGenerator deals every type once per shuffled bag of seven.
type BagGenerator struct {
	randomizer *rand.Rand
	bag        []Type
}

func NewBagGenerator(seed int64) *BagGenerator {
	return &BagGenerator{
		randomizer: rand.New(rand.NewSource(seed)),
	}
}

func (g *BagGenerator) Generate(spawn geometry.Position) Instance {
	if len(g.bag) == 0 {
		g.bag = append(g.bag[:0], AllTypes...)
		g.randomizer.Shuffle(len(g.bag), func(i, j int) {
			g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
		})
	}
	t := g.bag[0]
	g.bag = g.bag[1:]
	return NewInstance(t, spawn)
}

// SequenceGenerator cycles through a fixed list of types.
type SequenceGenerator struct {
	sequence []Type
	next     int
}

// NewSequenceGenerator panics when called without types.
func NewSequenceGenerator(types ...Type) *SequenceGenerator {
	if len(types) == 0 {
		panic("sequence generator needs at least one type")
	}
	return &SequenceGenerator{sequence: append([]Type(nil), types...)}
}

func (g *SequenceGenerator) Generate(spawn geometry.Position) Instance {
	t := g.sequence[g.next]
	g.next = (g.next + 1) % len(g.sequence)
	return NewInstance(t, spawn)
}

// NewGenerator returns the generator registered under kind ("random", "bag"
// or "sequence"). A zero seed is replaced with the current time. sequence
// lists the piece letters for the sequence kind and is ignored otherwise.
func NewGenerator(kind string, seed int64, sequence string) (Generator, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	switch kind {
	case "", "random":
		return NewRandomGenerator(seed), nil
	case "bag":
		return NewBagGenerator(seed), nil
	case "sequence":
		types, err := ParseSequence(sequence)
		if err != nil {
			return nil, fmt.Errorf("failed to parse sequence: %v", err)
		}
		return NewSequenceGenerator(types...), nil
	default:
		return nil, fmt.Errorf("unknown generator: %s", kind)
	}
}
