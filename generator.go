package maze

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownGenerator is returned by NewGenerator for unrecognized names.
	ErrUnknownGenerator = errors.New("maze: unknown generator")
	// ErrInvalidOption is returned by NewGenerator when an option is out of
	// range for the selected generator.
	ErrInvalidOption = errors.New("maze: invalid generator option")
)

// All maze-building algorithms satisfy this interface. Generate must return a
// complete maze of the given size, drawing all of its randomness from rng.
// Sizes of 0 produce an empty, finished grid.
type Generator interface {
	Generate(rng RandomSource, width, height int) *Grid
	// Returns the name the generator is registered under.
	Name() string
}

// Per-generator parameters. Each generator ignores the fields that don't
// apply to it. Use DefaultGeneratorOptions to get sensible values.
type GeneratorOptions struct {
	// Growing-tree generators: the probability of moving on to the next
	// frontier cell after each wall that's opened. 1 gives the longest
	// corridors, 0 opens every available wall around a cell at once.
	Turn float64
	// Binary tree: the corner the maze is biased toward.
	Corner Corner
	// Sidewinder: a horizontal run is closed with probability
	// 1 / (Diffusion + 1). Values <= 0 choose 1 or 4 randomly per maze.
	Diffusion int
	// Eller: the probability of joining two horizontally adjacent cells that
	// aren't yet connected.
	JoinChance float64
	// Eller: the probability of each cell other than the guaranteed one
	// opening its south wall.
	DropChance float64
}

// Returns the options used when nothing else is specified.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Turn:       1,
		Corner:     CornerRandom,
		Diffusion:  0,
		JoinChance: 0.5,
		DropChance: 0.5,
	}
}

func checkProbability(name string, p float64) error {
	if (p < 0) || (p > 1) {
		return fmt.Errorf("%w: %s must be between 0 and 1, got %f",
			ErrInvalidOption, name, p)
	}
	return nil
}

// Returns an error if any option is out of range. Options are checked
// regardless of which generator will use them.
func (o GeneratorOptions) Validate() error {
	e := checkProbability("turn", o.Turn)
	if e != nil {
		return e
	}
	e = checkProbability("join chance", o.JoinChance)
	if e != nil {
		return e
	}
	e = checkProbability("drop chance", o.DropChance)
	if e != nil {
		return e
	}
	if (o.Corner < CornerRandom) || (o.Corner > Southwest) {
		return fmt.Errorf("%w: bad corner %d", ErrInvalidOption, o.Corner)
	}
	return nil
}

// Maps each registered name to a function building the generator.
var generatorConstructors = map[string]func(o GeneratorOptions) Generator{
	"backtrack": func(o GeneratorOptions) Generator {
		return &Backtrack{Turn: o.Turn}
	},
	"prim": func(o GeneratorOptions) Generator {
		return &PrimTrue{Turn: o.Turn}
	},
	"prim-simplified": func(o GeneratorOptions) Generator {
		return &PrimSimplified{Turn: o.Turn}
	},
	"recursive-division": func(o GeneratorOptions) Generator {
		return &RecursiveDivision{}
	},
	"kruskal": func(o GeneratorOptions) Generator {
		return &Kruskal{}
	},
	"binary-tree": func(o GeneratorOptions) Generator {
		return &BinaryTree{Corner: o.Corner}
	},
	"sidewinder": func(o GeneratorOptions) Generator {
		return &Sidewinder{Diffusion: o.Diffusion}
	},
	"eller": func(o GeneratorOptions) Generator {
		return &Eller{
			JoinChance: o.JoinChance,
			DropChance: o.DropChance,
		}
	},
}

// Returns the names of every available generator, sorted.
func GeneratorNames() []string {
	toReturn := make([]string, 0, len(generatorConstructors))
	for name := range generatorConstructors {
		toReturn = append(toReturn, name)
	}
	sort.Strings(toReturn)
	return toReturn
}

// Returns the generator registered under the given name.
func NewGenerator(name string, o GeneratorOptions) (Generator, error) {
	constructor, ok := generatorConstructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	e := o.Validate()
	if e != nil {
		return nil, e
	}
	return constructor(o), nil
}

// Picks one of the registered generators uniformly at random.
func RandomGenerator(rng RandomSource, o GeneratorOptions) (Generator,
	error) {
	names := GeneratorNames()
	return NewGenerator(names[rng.Intn(len(names))], o)
}
