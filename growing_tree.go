package maze

// Builds a maze by repeatedly taking a cell from the frontier and opening
// walls from it into unvisited neighbors, which are added to the frontier in
// turn. Every cell is visited exactly once and a wall is only ever opened
// into an unvisited cell, so the result is always a perfect maze.
//
// Note that a neighbor is marked visited and pushed as soon as the wall to it
// is opened, rather than when it is later taken back off of the frontier.
// This makes the corridors "fuzzier" than a textbook frontier search, which
// looks better when the maze is colored by distance. Don't change it: doing
// so changes the look of every growing-tree maze.
//
// After each opened wall, the current cell is set aside with probability
// turn. It's pushed back underneath the new neighbor so that it gets expanded
// again later.
func growTree(rng RandomSource, g *Grid, f Frontier, turn float64) {
	if g.CellCount() == 0 {
		return
	}
	visited := make([]bool, g.CellCount())
	start := randomPosition(rng, g)
	visited[g.index(start)] = true
	f.Push(start)

	for {
		current, ok := f.Pop()
		if !ok {
			break
		}
		for _, d := range shuffledDirections(rng) {
			next, ok := g.Neighbor(d, current)
			if !ok {
				continue
			}
			nextIndex := g.index(next)
			if visited[nextIndex] {
				continue
			}
			g.SetOpen(d, current, true)
			visited[nextIndex] = true
			if rng.Chance(turn) {
				f.Push(current)
				f.Push(next)
				break
			}
			f.Push(next)
		}
	}
}

// The "recursive backtracker": a growing tree using a stack, producing long,
// winding corridors.
type Backtrack struct {
	Turn float64
}

func (b *Backtrack) Name() string {
	return "backtrack"
}

func (b *Backtrack) Generate(rng RandomSource, width, height int) *Grid {
	toReturn := NewGrid(width, height, false)
	growTree(rng, toReturn, NewStackFrontier(), b.Turn)
	return toReturn
}

// Prim's algorithm on a grid with random cell weights: a growing tree that
// always expands the lowest-weight frontier cell. Produces short, branchy
// corridors.
type PrimTrue struct {
	Turn float64
}

func (p *PrimTrue) Name() string {
	return "prim"
}

func (p *PrimTrue) Generate(rng RandomSource, width, height int) *Grid {
	toReturn := NewGrid(width, height, false)
	// The weights are drawn before anything else, so they don't depend on
	// how the maze turns out.
	f := NewPriorityFrontier(rng, toReturn)
	growTree(rng, toReturn, f, p.Turn)
	return toReturn
}

// Approximates PrimTrue without a heap, using a ShuffleFrontier driven by a
// second random stream derived from the first.
type PrimSimplified struct {
	Turn float64
}

func (p *PrimSimplified) Name() string {
	return "prim-simplified"
}

func (p *PrimSimplified) Generate(rng RandomSource, width,
	height int) *Grid {
	toReturn := NewGrid(width, height, false)
	f := NewShuffleFrontier(DeriveRand(rng))
	growTree(rng, toReturn, f, p.Turn)
	return toReturn
}
