package maze

import (
	"fmt"

	"github.com/zyedidia/generic/queue"
)

// The region of cells that no center could reach.
const NoRegion = -1

// The result of the distance search for one cell.
type FieldCell struct {
	// Index of the closest center, or NoRegion if the cell is unreachable.
	Region int
	// Number of open walls crossed on the shortest path from the center, or
	// -1 if the cell is unreachable.
	Distance int
}

// Records, for every cell in a maze, which of a list of centers is closest
// to it by path length through the maze, and how far away it is.
type DistanceField struct {
	width       int
	height      int
	cells       []FieldCell
	maxDistance int
}

// Used internally by ComputeDistanceField.
type bfsEntry struct {
	pos      Position
	region   int
	distance int
}

// Runs a breadth-first search from all of the centers at once. All centers
// share one FIFO queue, so cells are finalized in order of distance and each
// cell goes to whichever center reaches it first. When two centers are the
// same distance away, the one earlier in the list wins. Panics if a center is
// outside of the grid.
func ComputeDistanceField(g *Grid, centers []Position) *DistanceField {
	toReturn := &DistanceField{
		width:  g.Width(),
		height: g.Height(),
		cells:  make([]FieldCell, g.CellCount()),
	}
	for i := range toReturn.cells {
		toReturn.cells[i] = FieldCell{
			Region:   NoRegion,
			Distance: -1,
		}
	}
	finalized := make([]bool, g.CellCount())

	q := queue.New[bfsEntry]()
	for i, c := range centers {
		if !g.InBounds(c) {
			panic(fmt.Sprintf("Center %d at %s is outside of the grid", i, c))
		}
		q.Enqueue(bfsEntry{
			pos:    c,
			region: i,
		})
	}

	for !q.Empty() {
		current := q.Dequeue()
		index := g.index(current.pos)
		if finalized[index] {
			continue
		}
		finalized[index] = true
		toReturn.cells[index] = FieldCell{
			Region:   current.region,
			Distance: current.distance,
		}
		if current.distance > toReturn.maxDistance {
			toReturn.maxDistance = current.distance
		}
		for _, d := range AllDirections {
			if !g.IsOpen(d, current.pos) {
				continue
			}
			next, _ := g.Neighbor(d, current.pos)
			if finalized[g.index(next)] {
				continue
			}
			q.Enqueue(bfsEntry{
				pos:      next,
				region:   current.region,
				distance: current.distance + 1,
			})
		}
	}
	return toReturn
}

func (f *DistanceField) Width() int {
	return f.width
}

func (f *DistanceField) Height() int {
	return f.height
}

// Returns the largest distance of any reachable cell.
func (f *DistanceField) MaxDistance() int {
	return f.maxDistance
}

// Returns the region and distance for the cell at p. Panics if p is outside
// of the field.
func (f *DistanceField) At(p Position) FieldCell {
	if (p.X < 0) || (p.Y < 0) || (p.X >= f.width) || (p.Y >= f.height) {
		panic(fmt.Sprintf("Position %s is outside of the %dx%d field", p,
			f.width, f.height))
	}
	return f.cells[p.Y*f.width+p.X]
}

// Picks n centers uniformly at random, independently, so the same cell may be
// picked more than once. Returns nil for an empty grid.
func RandomCenters(rng RandomSource, g *Grid, n int) []Position {
	if (g.CellCount() == 0) || (n <= 0) {
		return nil
	}
	toReturn := make([]Position, n)
	for i := range toReturn {
		toReturn[i] = randomPosition(rng, g)
	}
	return toReturn
}
