package maze

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/stack"
)

// Holds the cells waiting to be expanded by the growing-tree engine. The
// order in which Pop returns cells is what distinguishes one growing-tree
// algorithm from another.
type Frontier interface {
	Push(p Position)
	// Removes and returns the next cell to expand. Returns false if the
	// frontier is empty.
	Pop() (Position, bool)
	Len() int
}

// A last-in-first-out frontier, which turns the growing tree into a
// depth-first search.
type StackFrontier struct {
	cells *stack.Stack[Position]
}

func NewStackFrontier() *StackFrontier {
	return &StackFrontier{
		cells: stack.New[Position](),
	}
}

func (f *StackFrontier) Push(p Position) {
	f.cells.Push(p)
}

func (f *StackFrontier) Pop() (Position, bool) {
	if f.cells.Size() == 0 {
		return Position{}, false
	}
	return f.cells.Pop(), true
}

func (f *StackFrontier) Len() int {
	return f.cells.Size()
}

// Used internally by PriorityFrontier.
type weightedCell struct {
	weight uint32
	index  int
	pos    Position
}

// Always pops the cell with the lowest weight. Weights are chosen randomly
// once per cell when the frontier is created, which gives the growing tree
// the same shape as Prim's algorithm on a randomly weighted grid.
type PriorityFrontier struct {
	cells   *heap.Heap[weightedCell]
	weights []uint32
	grid    *Grid
}

// Creates a new PriorityFrontier for cells of the given grid. Draws one
// weight for each cell from rng, in row-major order.
func NewPriorityFrontier(rng RandomSource, g *Grid) *PriorityFrontier {
	weights := make([]uint32, g.CellCount())
	for i := range weights {
		weights[i] = uint32(rng.Int63() >> 31)
	}
	return &PriorityFrontier{
		cells: heap.New[weightedCell](func(a, b weightedCell) bool {
			if a.weight != b.weight {
				return a.weight < b.weight
			}
			// Only for determinism; equal weights are rare.
			return a.index < b.index
		}),
		weights: weights,
		grid:    g,
	}
}

func (f *PriorityFrontier) Push(p Position) {
	i := f.grid.index(p)
	f.cells.Push(weightedCell{
		weight: f.weights[i],
		index:  i,
		pos:    p,
	})
}

func (f *PriorityFrontier) Pop() (Position, bool) {
	c, ok := f.cells.Pop()
	if !ok {
		return Position{}, false
	}
	return c.pos, true
}

func (f *PriorityFrontier) Len() int {
	return f.cells.Size()
}

// A cheap approximation of PriorityFrontier. Each pushed cell is swapped with
// a random existing entry, and Pop takes the last entry. The swap targets come
// from the frontier's own random stream, which must be independent from the
// one the growing-tree engine uses to shuffle directions. Sharing one stream
// for both visibly skews the corridors.
type ShuffleFrontier struct {
	cells []Position
	rng   RandomSource
}

func NewShuffleFrontier(rng RandomSource) *ShuffleFrontier {
	return &ShuffleFrontier{
		cells: make([]Position, 0, 64),
		rng:   rng,
	}
}

func (f *ShuffleFrontier) Push(p Position) {
	f.cells = append(f.cells, p)
	last := len(f.cells) - 1
	i := f.rng.Intn(len(f.cells))
	f.cells[i], f.cells[last] = f.cells[last], f.cells[i]
}

func (f *ShuffleFrontier) Pop() (Position, bool) {
	if len(f.cells) == 0 {
		return Position{}, false
	}
	last := len(f.cells) - 1
	toReturn := f.cells[last]
	f.cells = f.cells[:last]
	return toReturn, true
}

func (f *ShuffleFrontier) Len() int {
	return len(f.cells)
}
