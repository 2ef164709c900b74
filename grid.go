// This defines a library for generating 2D grid mazes using several different
// algorithms, and for coloring them according to maze-graph distance from a
// set of randomly chosen centers.
package maze

import (
	"fmt"
	"strings"
)

// One of the four directions a cell can be left through.
type Direction uint8

const (
	East Direction = iota
	South
	West
	North
)

// All four directions, in a fixed order. Algorithms that need a random order
// must copy and shuffle this.
var AllDirections = [4]Direction{East, South, West, North}

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	}
	return fmt.Sprintf("Unknown direction: %d", uint8(d))
}

// Returns the direction pointing the opposite way.
func (d Direction) Opposite() Direction {
	switch d {
	case East:
		return West
	case South:
		return North
	case West:
		return East
	case North:
		return South
	}
	panic(fmt.Sprintf("Bad direction: %d", uint8(d)))
}

// Identifies a single cell. X is the column and Y is the row, with (0, 0) at
// the top left.
type Position struct {
	X int
	Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// The two walls owned by a single cell. Each entry is true if the wall is
// open. The west and north walls belong to the neighboring cells.
type cellWalls struct {
	east  bool
	south bool
}

// A rectangular maze grid. Every interior wall is stored exactly once, so the
// two cells on either side of it always agree about whether it is open. Walls
// along the outside of the grid are always closed. Create using NewGrid.
type Grid struct {
	width  int
	height int
	walls  []cellWalls
}

// Returns a new grid with every interior wall either open or closed. The
// width and height may be 0, producing an empty grid, but must not be
// negative.
func NewGrid(width, height int, initiallyOpen bool) *Grid {
	if (width < 0) || (height < 0) {
		panic(fmt.Sprintf("Invalid grid size: %dx%d", width, height))
	}
	toReturn := &Grid{
		width:  width,
		height: height,
		walls:  make([]cellWalls, width*height),
	}
	if initiallyOpen {
		for i := range toReturn.walls {
			toReturn.walls[i].east = true
			toReturn.walls[i].south = true
		}
	}
	return toReturn
}

func (g *Grid) Width() int {
	return g.width
}

func (g *Grid) Height() int {
	return g.height
}

// Returns the number of cells in the grid.
func (g *Grid) CellCount() int {
	return g.width * g.height
}

// Returns true if p lies within the grid.
func (g *Grid) InBounds(p Position) bool {
	return (p.X >= 0) && (p.Y >= 0) && (p.X < g.width) && (p.Y < g.height)
}

// Returns the row-major index of p. Panics if p is outside of the grid.
func (g *Grid) index(p Position) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("Position %s is outside of the %dx%d grid", p,
			g.width, g.height))
	}
	return p.Y*g.width + p.X
}

// The inverse of index.
func (g *Grid) position(index int) Position {
	return Position{
		X: index % g.width,
		Y: index / g.width,
	}
}

// Returns the position adjacent to p in direction d. The second return value
// is false if the move would leave the grid. Panics if p itself is outside of
// the grid.
func (g *Grid) Neighbor(d Direction, p Position) (Position, bool) {
	g.index(p)
	switch d {
	case East:
		if p.X == (g.width - 1) {
			return p, false
		}
		return Position{p.X + 1, p.Y}, true
	case South:
		if p.Y == (g.height - 1) {
			return p, false
		}
		return Position{p.X, p.Y + 1}, true
	case West:
		if p.X == 0 {
			return p, false
		}
		return Position{p.X - 1, p.Y}, true
	case North:
		if p.Y == 0 {
			return p, false
		}
		return Position{p.X, p.Y - 1}, true
	}
	panic(fmt.Sprintf("Bad direction: %d", uint8(d)))
}

// Finds the cell that owns the wall in direction d from p, and whether it is
// that cell's east wall (as opposed to its south wall). The second return
// value is false for walls on the outside of the grid.
func (g *Grid) wallOwner(d Direction, p Position) (*cellWalls, bool, bool) {
	neighbor, ok := g.Neighbor(d, p)
	if !ok {
		return nil, false, false
	}
	switch d {
	case East:
		return &(g.walls[g.index(p)]), true, true
	case South:
		return &(g.walls[g.index(p)]), false, true
	case West:
		return &(g.walls[g.index(neighbor)]), true, true
	}
	// North
	return &(g.walls[g.index(neighbor)]), false, true
}

// Returns true if the wall in direction d from p is open. Walls on the outside
// of the grid are never open.
func (g *Grid) IsOpen(d Direction, p Position) bool {
	owner, isEast, ok := g.wallOwner(d, p)
	if !ok {
		return false
	}
	if isEast {
		return owner.east
	}
	return owner.south
}

// Opens or closes the wall in direction d from p. Panics if the wall is on
// the outside of the grid; those can never be changed.
func (g *Grid) SetOpen(d Direction, p Position, open bool) {
	owner, isEast, ok := g.wallOwner(d, p)
	if !ok {
		panic(fmt.Sprintf("Can't change the %s boundary wall of cell %s", d,
			p))
	}
	if isEast {
		owner.east = open
		return
	}
	owner.south = open
}

// Returns the number of open interior walls. A perfect maze has exactly one
// fewer open wall than it has cells.
func (g *Grid) OpenWallCount() int {
	toReturn := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Position{x, y}
			if g.IsOpen(East, p) {
				toReturn++
			}
			if g.IsOpen(South, p) {
				toReturn++
			}
		}
	}
	return toReturn
}

// Calls fn for every cell, in row-major order.
func (g *Grid) Cells(fn func(p Position)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(Position{x, y})
		}
	}
}

// Draws the maze using half-block characters, two characters per cell.
func (g *Grid) String() string {
	var b strings.Builder
	b.WriteString("▄")
	for x := 0; x < g.width; x++ {
		b.WriteString("▄▄")
	}
	for y := 0; y < g.height; y++ {
		b.WriteString("\n█")
		for x := 0; x < g.width; x++ {
			p := Position{x, y}
			if g.IsOpen(South, p) {
				b.WriteString(" ")
			} else {
				b.WriteString("▄")
			}
			if g.IsOpen(East, p) {
				b.WriteString("▄")
			} else {
				b.WriteString("█")
			}
		}
	}
	return b.String()
}
