package maze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	maze "github.com/yalue/region_maze"
)

// Returns the distances of a one-row field, left to right.
func rowDistances(f *maze.DistanceField) []int {
	toReturn := make([]int, f.Width())
	for x := range toReturn {
		toReturn[x] = f.At(maze.Position{x, 0}).Distance
	}
	return toReturn
}

func rowRegions(f *maze.DistanceField) []int {
	toReturn := make([]int, f.Width())
	for x := range toReturn {
		toReturn[x] = f.At(maze.Position{x, 0}).Region
	}
	return toReturn
}

//----------------------------------------------------------------------------//
// Small hand-checked fields
//----------------------------------------------------------------------------//

func TestDistanceField_Corridor(t *testing.T) {
	g := maze.NewGrid(5, 1, true)
	f := maze.ComputeDistanceField(g, []maze.Position{{0, 0}})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, rowDistances(f))
	assert.Equal(t, []int{0, 0, 0, 0, 0}, rowRegions(f))
	assert.Equal(t, 4, f.MaxDistance())
}

// TestDistanceField_Ties checks that a cell equally far from two centers
// belongs to the one listed first.
func TestDistanceField_Ties(t *testing.T) {
	g := maze.NewGrid(5, 1, true)
	f := maze.ComputeDistanceField(g, []maze.Position{{0, 0}, {4, 0}})
	assert.Equal(t, []int{0, 1, 2, 1, 0}, rowDistances(f))
	assert.Equal(t, []int{0, 0, 0, 1, 1}, rowRegions(f))
	assert.Equal(t, 2, f.MaxDistance())

	f = maze.ComputeDistanceField(g, []maze.Position{{4, 0}, {0, 0}})
	assert.Equal(t, []int{1, 1, 0, 0, 0}, rowRegions(f))
}

func TestDistanceField_DuplicateCenters(t *testing.T) {
	g := maze.NewGrid(4, 1, true)
	f := maze.ComputeDistanceField(g, []maze.Position{{1, 0}, {1, 0}})
	assert.Equal(t, []int{0, 0, 0, 0}, rowRegions(f))
	assert.Equal(t, []int{1, 0, 1, 2}, rowDistances(f))
}

func TestDistanceField_Unreachable(t *testing.T) {
	g := maze.NewGrid(3, 1, false)
	g.SetOpen(maze.East, maze.Position{0, 0}, true)
	f := maze.ComputeDistanceField(g, []maze.Position{{0, 0}})
	assert.Equal(t, []int{0, 0, maze.NoRegion}, rowRegions(f))
	assert.Equal(t, []int{0, 1, -1}, rowDistances(f))
	assert.Equal(t, 1, f.MaxDistance())
}

func TestDistanceField_NoCenters(t *testing.T) {
	g := maze.NewGrid(3, 2, true)
	f := maze.ComputeDistanceField(g, nil)
	g.Cells(func(p maze.Position) {
		assert.Equal(t, maze.FieldCell{Region: maze.NoRegion, Distance: -1},
			f.At(p))
	})
	assert.Equal(t, 0, f.MaxDistance())
}

func TestDistanceField_Panics(t *testing.T) {
	g := maze.NewGrid(3, 3, true)
	assert.Panics(t, func() {
		maze.ComputeDistanceField(g, []maze.Position{{3, 0}})
	})
	f := maze.ComputeDistanceField(g, []maze.Position{{1, 1}})
	assert.Panics(t, func() { f.At(maze.Position{-1, 0}) })
	assert.Panics(t, func() { f.At(maze.Position{0, 3}) })
}

//----------------------------------------------------------------------------//
// Properties over generated mazes
//----------------------------------------------------------------------------//

// TestDistanceField_Consistent checks, on generated mazes, that centers are at
// distance 0 and every other cell is one step further than its closest open
// neighbor, which shares its region if it's the cell's parent.
func TestDistanceField_Consistent(t *testing.T) {
	for _, name := range maze.GeneratorNames() {
		t.Run(name, func(t *testing.T) {
			rng := maze.NewRand(31)
			generator := mustGenerator(t, name, maze.DefaultGeneratorOptions())
			g := generator.Generate(rng, 14, 11)
			centers := maze.RandomCenters(rng, g, 5)
			f := maze.ComputeDistanceField(g, centers)
			isCenter := make(map[maze.Position]bool)
			for _, c := range centers {
				isCenter[c] = true
			}
			maxSeen := 0
			g.Cells(func(p maze.Position) {
				cell := f.At(p)
				require.GreaterOrEqual(t, cell.Region, 0)
				require.Less(t, cell.Region, len(centers))
				if cell.Distance > maxSeen {
					maxSeen = cell.Distance
				}
				if isCenter[p] {
					require.Equal(t, 0, cell.Distance)
					return
				}
				best := -1
				parentInRegion := false
				for _, d := range maze.AllDirections {
					if !g.IsOpen(d, p) {
						continue
					}
					n, _ := g.Neighbor(d, p)
					other := f.At(n)
					if (best < 0) || (other.Distance < best) {
						best = other.Distance
					}
					if (other.Distance == cell.Distance-1) &&
						(other.Region == cell.Region) {
						parentInRegion = true
					}
				}
				require.Equalf(t, best+1, cell.Distance, "cell %s", p)
				require.Truef(t, parentInRegion, "cell %s", p)
			})
			assert.Equal(t, maxSeen, f.MaxDistance())
		})
	}
}

func TestRandomCenters(t *testing.T) {
	rng := maze.NewRand(1)
	assert.Nil(t, maze.RandomCenters(rng, maze.NewGrid(0, 5, false), 3))
	assert.Nil(t, maze.RandomCenters(rng, maze.NewGrid(5, 5, false), 0))

	g := maze.NewGrid(6, 2, false)
	centers := maze.RandomCenters(rng, g, 40)
	require.Len(t, centers, 40)
	for _, c := range centers {
		assert.True(t, g.InBounds(c))
	}
	// More centers than cells forces duplicates.
	distinct := make(map[maze.Position]bool)
	for _, c := range centers {
		distinct[c] = true
	}
	assert.LessOrEqual(t, len(distinct), g.CellCount())
}
