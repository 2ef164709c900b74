package maze

// Eller's algorithm: builds the maze one row at a time, randomly joining
// horizontally adjacent cells and then dropping at least one connection from
// every connected set down into the next row. On the last row, every set
// still separate from its neighbor is joined, making the maze perfect.
//
// This keeps one DisjointSet for the whole grid rather than only for the
// rows being worked on. That uses more memory but behaves identically.
type Eller struct {
	// Probability of joining two adjacent cells in the same row.
	JoinChance float64
	// Probability of each cell other than the guaranteed one in its set
	// connecting to the row below.
	DropChance float64
}

func (e *Eller) Name() string {
	return "eller"
}

func (e *Eller) Generate(rng RandomSource, width, height int) *Grid {
	toReturn := NewGrid(width, height, false)
	sets := NewDisjointSet(toReturn.CellCount())
	columns := make([]int, width)
	// Reused for each row. Holds the cells of each set, with the sets in the
	// order their first member appears in the row.
	var groups [][]int
	groupIndex := make(map[int]int, width)

	for y := 0; y < height; y++ {
		lastRow := y == (height - 1)
		for i := range columns {
			columns[i] = i
		}
		rng.Shuffle(len(columns), func(i, j int) {
			columns[i], columns[j] = columns[j], columns[i]
		})
		for _, x := range columns {
			p := Position{x, y}
			right, ok := toReturn.Neighbor(East, p)
			if !ok {
				continue
			}
			a := toReturn.index(p)
			b := toReturn.index(right)
			if sets.Connected(a, b) {
				continue
			}
			if lastRow || rng.Chance(e.JoinChance) {
				sets.Union(a, b)
				toReturn.SetOpen(East, p, true)
			}
		}
		if lastRow {
			break
		}

		// Group the row's cells by set. Iterating over a map here would make
		// the output depend on Go's map ordering, so keep the groups in a
		// slice instead.
		groups = groups[:0]
		for k := range groupIndex {
			delete(groupIndex, k)
		}
		for x := 0; x < width; x++ {
			root := sets.Find(toReturn.index(Position{x, y}))
			i, ok := groupIndex[root]
			if !ok {
				i = len(groups)
				groupIndex[root] = i
				groups = append(groups, nil)
			}
			groups[i] = append(groups[i], x)
		}

		for _, group := range groups {
			guaranteed := group[rng.Intn(len(group))]
			for _, x := range group {
				if (x != guaranteed) && !rng.Chance(e.DropChance) {
					continue
				}
				p := Position{x, y}
				below := Position{x, y + 1}
				sets.Union(toReturn.index(p), toReturn.index(below))
				toReturn.SetOpen(South, p, true)
			}
		}
	}
	return toReturn
}
