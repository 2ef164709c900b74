package maze

import (
	"fmt"

	"github.com/spakin/disjoint"
)

// A disjoint-set forest over integer keys numbered from 0, so that generators
// can refer to cells by their row-major index. Each key is backed by a
// disjoint.Element, which does the actual union by rank and path compression.
type DisjointSet struct {
	elements []*disjoint.Element
	// Maps each element back to its key, so Find can report the root as a
	// key.
	keys map[*disjoint.Element]int
}

// Returns a new DisjointSet containing the keys 0 through n - 1, each in its
// own set.
func NewDisjointSet(n int) *DisjointSet {
	toReturn := &DisjointSet{
		elements: make([]*disjoint.Element, 0, n),
		keys:     make(map[*disjoint.Element]int, n),
	}
	for i := 0; i < n; i++ {
		toReturn.Add()
	}
	return toReturn
}

// Registers a new key in its own set and returns it.
func (s *DisjointSet) Add() int {
	toReturn := len(s.elements)
	element := disjoint.NewElement()
	s.elements = append(s.elements, element)
	s.keys[element] = toReturn
	return toReturn
}

// Returns the number of registered keys.
func (s *DisjointSet) Len() int {
	return len(s.elements)
}

func (s *DisjointSet) element(k int) *disjoint.Element {
	if (k < 0) || (k >= len(s.elements)) {
		panic(fmt.Sprintf("Key %d isn't in the disjoint set", k))
	}
	return s.elements[k]
}

// Returns the key of the unique "root" of the set containing k. Two keys are
// in the same set exactly when they have the same root. Panics if k was never
// registered.
func (s *DisjointSet) Find(k int) int {
	return s.keys[s.element(k).Find()]
}

// Merges the sets containing a and b. Returns false if they were already in
// the same set.
func (s *DisjointSet) Union(a, b int) bool {
	x := s.element(a)
	y := s.element(b)
	if x.Find() == y.Find() {
		return false
	}
	disjoint.Union(x, y)
	return true
}

// Returns true if a and b are in the same set.
func (s *DisjointSet) Connected(a, b int) bool {
	return s.element(a).Find() == s.element(b).Find()
}
