package wgraph

import (
	"sort"

	"github.com/psidex/mstviz/internal/lib"
)

// Pair is an unordered pair of vertex names. NewPair is the only way a Pair should be
// built, it keeps U <= V so that {a, b} and {b, a} compare equal.
type Pair struct {
	U string
	V string
}

func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{U: a, V: b}
}

func (p Pair) String() string {
	return p.U + "\t" + p.V
}

// PairSet holds normalized vertex pairs, it's used as a membership test for the edges
// of a minimum spanning tree.
type PairSet struct {
	set lib.Set[Pair]
}

func NewPairSet() PairSet {
	return PairSet{set: lib.NewSet[Pair]()}
}

// Add inserts the pair {a, b}, the order of a and b doesn't matter.
func (s PairSet) Add(a, b string) {
	s.set.Add(NewPair(a, b))
}

// Contains reports whether {a, b} was added in either order.
func (s PairSet) Contains(a, b string) bool {
	return s.set.Contains(NewPair(a, b))
}

func (s PairSet) Len() int {
	return s.set.Size()
}

// Pairs returns the set sorted by U then V.
func (s PairSet) Pairs() []Pair {
	pairs := s.set.AsSlice()
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].U != pairs[j].U {
			return pairs[i].U < pairs[j].U
		}
		return pairs[i].V < pairs[j].V
	})
	return pairs
}
