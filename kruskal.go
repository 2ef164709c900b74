package maze

// Used internally when generating a maze using Kruskal's algorithm.
type gridEdge struct {
	// The index of the cell owning the wall.
	baseIndex int
	// Will always be either East or South, since those are the only walls a
	// cell owns.
	direction Direction
}

// Randomized Kruskal's algorithm: visit every interior wall once in a random
// order, opening it unless the cells on either side are already connected.
type Kruskal struct{}

func (k *Kruskal) Name() string {
	return "kruskal"
}

// Returns every interior wall in the grid exactly once.
func interiorEdges(g *Grid) []gridEdge {
	count := 0
	if g.CellCount() != 0 {
		count = (g.Width()-1)*g.Height() + (g.Height()-1)*g.Width()
	}
	toReturn := make([]gridEdge, 0, count)
	g.Cells(func(p Position) {
		index := g.index(p)
		// Only cells not in the rightmost column have an east neighbor, and
		// only cells not in the bottom row have a south neighbor.
		if p.X != (g.Width() - 1) {
			toReturn = append(toReturn, gridEdge{
				baseIndex: index,
				direction: East,
			})
		}
		if p.Y != (g.Height() - 1) {
			toReturn = append(toReturn, gridEdge{
				baseIndex: index,
				direction: South,
			})
		}
	})
	return toReturn
}

func (k *Kruskal) Generate(rng RandomSource, width, height int) *Grid {
	toReturn := NewGrid(width, height, false)
	edges := interiorEdges(toReturn)
	rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})
	sets := NewDisjointSet(toReturn.CellCount())
	for _, edge := range edges {
		base := toReturn.position(edge.baseIndex)
		// The edge list only contains interior walls.
		other, _ := toReturn.Neighbor(edge.direction, base)
		// Union fails if the cells are already connected, in which case
		// opening the wall would create a loop.
		if !sets.Union(edge.baseIndex, toReturn.index(other)) {
			continue
		}
		toReturn.SetOpen(edge.direction, base, true)
	}
	return toReturn
}
