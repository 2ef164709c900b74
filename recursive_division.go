package maze

// A rectangle of cells, from (x1, y1) inclusive to (x2, y2) exclusive.
type divisionRect struct {
	x1, y1, x2, y2 int
}

// Unlike the other generators, recursive division starts from a grid with
// every wall open and adds walls. Each rectangle is split in two by a wall
// with a single hole in it, and the two halves are split in turn until they
// are too thin to split.
type RecursiveDivision struct{}

func (r *RecursiveDivision) Name() string {
	return "recursive-division"
}

func (r *RecursiveDivision) Generate(rng RandomSource, width,
	height int) *Grid {
	toReturn := NewGrid(width, height, true)
	pending := []divisionRect{{0, 0, width, height}}
	for len(pending) != 0 {
		rect := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		w := rect.x2 - rect.x1
		h := rect.y2 - rect.y1
		if (w < 2) || (h < 2) {
			continue
		}

		// Split across the longer side, or pick randomly for squares.
		vertical := w > h
		if w == h {
			vertical = rng.Chance(0.5)
		}

		if vertical {
			// Close the west walls of column x, except for one hole.
			x := rect.x1 + 1 + rng.Intn(w-1)
			hole := rect.y1 + rng.Intn(h)
			for y := rect.y1; y < rect.y2; y++ {
				toReturn.SetOpen(West, Position{x, y}, y == hole)
			}
			pending = append(pending,
				divisionRect{rect.x1, rect.y1, x, rect.y2},
				divisionRect{x, rect.y1, rect.x2, rect.y2})
			continue
		}

		// Close the north walls of row y, except for one hole.
		y := rect.y1 + 1 + rng.Intn(h-1)
		hole := rect.x1 + rng.Intn(w)
		for x := rect.x1; x < rect.x2; x++ {
			toReturn.SetOpen(North, Position{x, y}, x == hole)
		}
		pending = append(pending,
			divisionRect{rect.x1, y, rect.x2, rect.y2},
			divisionRect{rect.x1, rect.y1, rect.x2, y})
	}
	return toReturn
}
