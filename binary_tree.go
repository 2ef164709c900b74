package maze

import (
	"fmt"
)

// One of the four corners of the grid, used to bias the binary tree
// algorithm.
type Corner int

const (
	// Tells the binary tree generator to pick a corner from its random
	// source.
	CornerRandom Corner = iota
	Northeast
	Northwest
	Southeast
	Southwest
)

func (c Corner) String() string {
	switch c {
	case CornerRandom:
		return "random"
	case Northeast:
		return "northeast"
	case Northwest:
		return "northwest"
	case Southeast:
		return "southeast"
	case Southwest:
		return "southwest"
	}
	return fmt.Sprintf("Unknown corner: %d", int(c))
}

// Returns the horizontal and vertical directions pointing toward the corner.
func (c Corner) directions() (Direction, Direction) {
	switch c {
	case Northeast:
		return East, North
	case Northwest:
		return West, North
	case Southeast:
		return East, South
	case Southwest:
		return West, South
	}
	panic(fmt.Sprintf("Corner %s has no directions", c))
}

// Opens one wall in every cell: either the one toward the horizontal side of
// the corner, or the one toward its vertical side. Every cell therefore has a
// path to the corner, and the maze has a strong diagonal bias.
type BinaryTree struct {
	Corner Corner
}

func (b *BinaryTree) Name() string {
	return "binary-tree"
}

func (b *BinaryTree) Generate(rng RandomSource, width, height int) *Grid {
	toReturn := NewGrid(width, height, false)
	corner := b.Corner
	if corner == CornerRandom {
		corner = Corner(int(Northeast) + rng.Intn(4))
	}
	horizontal, vertical := corner.directions()
	toReturn.Cells(func(p Position) {
		_, canGoHorizontal := toReturn.Neighbor(horizontal, p)
		_, canGoVertical := toReturn.Neighbor(vertical, p)
		if canGoHorizontal && canGoVertical {
			if rng.Chance(0.5) {
				toReturn.SetOpen(vertical, p, true)
			} else {
				toReturn.SetOpen(horizontal, p, true)
			}
			return
		}
		// Cells along the corner's two edges only have one option, and the
		// corner cell itself has none.
		if canGoHorizontal {
			toReturn.SetOpen(horizontal, p, true)
		} else if canGoVertical {
			toReturn.SetOpen(vertical, p, true)
		}
	})
	return toReturn
}
