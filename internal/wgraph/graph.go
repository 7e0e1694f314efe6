// Package wgraph holds the in-memory weighted undirected graph that gets visualised.
//
// Vertices and edges keep the order they were first added in, every vertex gets a
// stable node ID from that order and the Graph satisfies gonum's graph.Undirected so
// it can be handed straight to gonum's layout algorithms. Iteration is always ordered,
// which is what makes seeded layouts reproducible.
package wgraph

import (
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"

	"github.com/psidex/mstviz/internal/lib"
)

// Node is a vertex, its ID is handed out in insertion order starting at 1.
type Node struct {
	Id   int64
	Name string
}

func (n Node) ID() int64 { return n.Id }

// Edge is an undirected edge between U and V. A nil Weight means the weight was absent
// or could not be parsed.
type Edge struct {
	U      Node
	V      Node
	Weight *int
}

func (e Edge) From() graph.Node { return e.U }
func (e Edge) To() graph.Node   { return e.V }

func (e Edge) ReversedEdge() graph.Edge {
	e.U, e.V = e.V, e.U
	return e
}

// Pair returns the normalized vertex pair of e.
func (e Edge) Pair() Pair {
	return NewPair(e.U.Name, e.V.Name)
}

// Label is the weight as a decimal string, or "" if there is no weight.
func (e Edge) Label() string {
	if e.Weight == nil {
		return ""
	}
	return strconv.Itoa(*e.Weight)
}

// Weight is a helper for building edge weights inline.
func Weight(w int) *int {
	return &w
}

// Graph is not safe for concurrent mutation, it's built once and then only read.
type Graph struct {
	hasher    *lib.StrHasher
	edges     []Edge
	edgeIndex map[Pair]int
	// adjacent holds neighbour IDs per node ID in the order edges were added. Self
	// loops are recorded in edges but never in adjacent.
	adjacent map[int64][]int64
}

var _ graph.Undirected = (*Graph)(nil)

func New() *Graph {
	return &Graph{
		hasher:    lib.NewStrHasher(),
		edges:     []Edge{},
		edgeIndex: make(map[Pair]int),
		adjacent:  make(map[int64][]int64),
	}
}

// AddVertex adds name if it isn't already present and returns its node.
func (g *Graph) AddVertex(name string) Node {
	return Node{Id: g.hasher.Hash(name), Name: name}
}

// AddEdge adds the edge {u, v}, adding u and v as vertices if needed. Adding an edge
// that already exists (in either orientation) replaces its weight and keeps its
// first-seen position and orientation.
func (g *Graph) AddEdge(u, v string, weight *int) {
	un := g.AddVertex(u)
	vn := g.AddVertex(v)

	key := NewPair(u, v)
	if i, ok := g.edgeIndex[key]; ok {
		g.edges[i].Weight = weight
		return
	}

	g.edgeIndex[key] = len(g.edges)
	g.edges = append(g.edges, Edge{U: un, V: vn, Weight: weight})

	if un.Id != vn.Id {
		g.adjacent[un.Id] = append(g.adjacent[un.Id], vn.Id)
		g.adjacent[vn.Id] = append(g.adjacent[vn.Id], un.Id)
	}
}

// Vertices returns the vertex names in insertion order.
func (g *Graph) Vertices() []string {
	names := make([]string, 0, g.hasher.Len())
	for id := int64(1); id <= int64(g.hasher.Len()); id++ {
		names = append(names, g.hasher.Name(id))
	}
	return names
}

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

func (g *Graph) NumVertices() int { return g.hasher.Len() }
func (g *Graph) NumEdges() int    { return len(g.edges) }

func (g *Graph) HasVertex(name string) bool {
	_, ok := g.hasher.Lookup(name)
	return ok
}

// EdgeFor looks up the edge {u, v} in either orientation.
func (g *Graph) EdgeFor(u, v string) (Edge, bool) {
	i, ok := g.edgeIndex[NewPair(u, v)]
	if !ok {
		return Edge{}, false
	}
	return g.edges[i], true
}

// NodeFor returns the node for a vertex name.
func (g *Graph) NodeFor(name string) (Node, bool) {
	id, ok := g.hasher.Lookup(name)
	if !ok {
		return Node{}, false
	}
	return Node{Id: id, Name: name}, true
}

// Node implements graph.Graph.
func (g *Graph) Node(id int64) graph.Node {
	name := g.hasher.Name(id)
	if name == "" {
		return nil
	}
	return Node{Id: id, Name: name}
}

// Nodes implements graph.Graph, nodes come out in insertion order.
func (g *Graph) Nodes() graph.Nodes {
	if g.hasher.Len() == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, g.hasher.Len())
	for id := int64(1); id <= int64(g.hasher.Len()); id++ {
		nodes = append(nodes, Node{Id: id, Name: g.hasher.Name(id)})
	}
	return iterator.NewOrderedNodes(nodes)
}

// From implements graph.Graph, neighbours come out in the order their edges were added.
func (g *Graph) From(id int64) graph.Nodes {
	adj := g.adjacent[id]
	if len(adj) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, len(adj))
	for _, nid := range adj {
		nodes = append(nodes, Node{Id: nid, Name: g.hasher.Name(nid)})
	}
	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween implements graph.Graph.
func (g *Graph) HasEdgeBetween(xid, yid int64) bool {
	return g.EdgeBetween(xid, yid) != nil
}

// Edge implements graph.Graph. The returned edge is oriented from uid to vid.
func (g *Graph) Edge(uid, vid int64) graph.Edge {
	return g.EdgeBetween(uid, vid)
}

// EdgeBetween implements graph.Undirected.
func (g *Graph) EdgeBetween(xid, yid int64) graph.Edge {
	x, y := g.hasher.Name(xid), g.hasher.Name(yid)
	if x == "" || y == "" {
		return nil
	}
	e, ok := g.EdgeFor(x, y)
	if !ok {
		return nil
	}
	if e.U.Id != xid {
		return e.ReversedEdge()
	}
	return e
}
