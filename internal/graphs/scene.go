package graphs

import (
	"github.com/psidex/mstviz/internal/wgraph"
)

const (
	HighlightColor = "#1f77b4"
	NeutralColor   = "#888888"
	NodeColor      = "#d3d3d3"

	HighlightWidth = 3.0
	NeutralWidth   = 1.5
)

// SceneNode is a vertex with its final position in the unit square.
type SceneNode struct {
	ID    int64
	Name  string
	X     float64
	Y     float64
	Color string
}

// SceneEdge is a graph edge with everything a renderer needs to draw it.
type SceneEdge struct {
	Source   string
	Target   string
	SourceID int64
	TargetID int64
	Weight   *int
	Label    string
	InMST    bool
	Color    string
	Width    float64
}

// EdgeKey identifies an edge the way it was first read, source first.
type EdgeKey struct {
	Source string
	Target string
}

// Scene is the laid out, styled graph. Every provider renders from a Scene.
type Scene struct {
	Title string
	Nodes []SceneNode
	Edges []SceneEdge
}

type SceneOptions struct {
	Title         string
	Seed          uint64
	LayoutUpdates int
}

// EdgeStyle returns the stroke color and width for an edge.
func EdgeStyle(inMST bool) (color string, width float64) {
	if inMST {
		return HighlightColor, HighlightWidth
	}
	return NeutralColor, NeutralWidth
}

// NewScene lays g out and styles its edges by membership of mst. MST pairs that aren't
// edges of g are ignored.
func NewScene(g *wgraph.Graph, mst wgraph.PairSet, o SceneOptions) Scene {
	positions := Layout(g, o.Seed, o.LayoutUpdates)

	s := Scene{
		Title: o.Title,
		Nodes: make([]SceneNode, 0, g.NumVertices()),
		Edges: make([]SceneEdge, 0, g.NumEdges()),
	}

	nodes := g.Nodes()
	for nodes.Next() {
		n := nodes.Node().(wgraph.Node)
		pos := positions[n.Id]
		s.Nodes = append(s.Nodes, SceneNode{
			ID:    n.Id,
			Name:  n.Name,
			X:     pos.X,
			Y:     pos.Y,
			Color: NodeColor,
		})
	}

	for _, e := range g.Edges() {
		inMST := mst.Contains(e.U.Name, e.V.Name)
		color, width := EdgeStyle(inMST)
		s.Edges = append(s.Edges, SceneEdge{
			Source:   e.U.Name,
			Target:   e.V.Name,
			SourceID: e.U.Id,
			TargetID: e.V.Id,
			Weight:   e.Weight,
			Label:    e.Label(),
			InMST:    inMST,
			Color:    color,
			Width:    width,
		})
	}

	return s
}

// EdgeLabels maps every edge to its label, "" for edges without a weight.
func (s Scene) EdgeLabels() map[EdgeKey]string {
	labels := make(map[EdgeKey]string, len(s.Edges))
	for _, e := range s.Edges {
		labels[EdgeKey{Source: e.Source, Target: e.Target}] = e.Label
	}
	return labels
}

// Node finds a node by name.
func (s Scene) Node(name string) (SceneNode, bool) {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return SceneNode{}, false
}

// Edge finds an edge by its endpoints in either order.
func (s Scene) Edge(u, v string) (SceneEdge, bool) {
	want := wgraph.NewPair(u, v)
	for _, e := range s.Edges {
		if wgraph.NewPair(e.Source, e.Target) == want {
			return e, true
		}
	}
	return SceneEdge{}, false
}

// Pos returns a node's position, the zero vector for unknown IDs.
func (s Scene) Pos(id int64) (x, y float64) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n.X, n.Y
		}
	}
	return 0, 0
}
