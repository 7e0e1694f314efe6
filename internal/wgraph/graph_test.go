package wgraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
)

func TestNewPairIsOrderIndependent(t *testing.T) {
	assert.Equal(t, NewPair("A", "B"), NewPair("B", "A"))
	assert.Equal(t, Pair{U: "A", V: "B"}, NewPair("B", "A"))
	assert.Equal(t, "A\tB", NewPair("B", "A").String())
}

func TestPairSetMembershipIsSymmetric(t *testing.T) {
	s := NewPairSet()
	s.Add("b", "a")
	s.Add("c", "b")
	s.Add("a", "b")

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("a", "b"))
	assert.True(t, s.Contains("b", "a"))
	assert.True(t, s.Contains("b", "c"))
	assert.False(t, s.Contains("a", "c"))

	want := []Pair{{U: "a", V: "b"}, {U: "b", V: "c"}}
	if diff := cmp.Diff(want, s.Pairs()); diff != "" {
		t.Errorf("Pairs() mismatch (-want +got):\n%s", diff)
	}
}

func TestGraphAddEdgeAddsVertices(t *testing.T) {
	g := New()
	g.AddVertex("A")
	g.AddEdge("B", "C", Weight(2))

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 1, g.NumEdges())
	assert.True(t, g.HasVertex("C"))
	assert.False(t, g.HasVertex("D"))

	e, ok := g.EdgeFor("C", "B")
	require.True(t, ok)
	assert.Equal(t, "B", e.U.Name)
	assert.Equal(t, "C", e.V.Name)
	assert.Equal(t, "2", e.Label())
}

func TestGraphAddVertexIsIdempotent(t *testing.T) {
	g := New()
	a := g.AddVertex("A")
	again := g.AddVertex("A")

	assert.Equal(t, a, again)
	assert.Equal(t, 1, g.NumVertices())
}

func TestGraphDuplicateEdgeLastWriteWins(t *testing.T) {
	g := New()
	g.AddEdge("A", "B", Weight(4))
	g.AddEdge("C", "A", Weight(1))
	g.AddEdge("B", "A", Weight(7))
	g.AddEdge("A", "B", nil)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "A", edges[0].U.Name)
	assert.Equal(t, "B", edges[0].V.Name)
	assert.Nil(t, edges[0].Weight)
	assert.Equal(t, "", edges[0].Label())
	assert.Equal(t, NewPair("A", "C"), edges[1].Pair())
}

func TestGraphEdgesReturnsCopy(t *testing.T) {
	g := New()
	g.AddEdge("A", "B", Weight(1))

	edges := g.Edges()
	edges[0].Weight = Weight(99)

	e, _ := g.EdgeFor("A", "B")
	assert.Equal(t, 1, *e.Weight)
}

func TestGraphGonumInterop(t *testing.T) {
	g := New()
	g.AddVertex("X")
	g.AddEdge("A", "B", Weight(1))
	g.AddEdge("A", "C", nil)
	g.AddEdge("A", "A", Weight(5))

	var ids []int64
	nodes := g.Nodes()
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	assert.Equal(t, []int64{1, 2, 3, 4}, ids)

	a, ok := g.NodeFor("A")
	require.True(t, ok)
	assert.Equal(t, int64(2), a.ID())
	assert.Equal(t, Node{Id: 2, Name: "A"}, g.Node(2))
	assert.Nil(t, g.Node(42))

	var neighbours []string
	from := g.From(a.ID())
	for from.Next() {
		neighbours = append(neighbours, from.Node().(Node).Name)
	}
	assert.Equal(t, []string{"B", "C"}, neighbours, "self loops are not neighbours")
	assert.Equal(t, 0, g.From(1).Len())

	b, _ := g.NodeFor("B")
	assert.True(t, g.HasEdgeBetween(b.ID(), a.ID()))
	assert.False(t, g.HasEdgeBetween(b.ID(), 1))

	e := g.EdgeBetween(b.ID(), a.ID())
	require.NotNil(t, e)
	assert.Equal(t, b.ID(), e.From().ID())
	assert.Equal(t, a.ID(), e.To().ID())

	var _ graph.Undirected = g
}
