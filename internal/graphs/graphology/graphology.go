package graphology

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/psidex/mstviz/internal/graphs"
)

// nodeSize is the graphology display size of every node.
const nodeSize = 10

// Graphology defines a CliGraphProvider that renders the scene as a serialized
// Graphology graph in a JSON file. Nodes keep their layout position and every
// attribute needed to draw them, so the file can be loaded straight into sigma.js.
type Graphology struct {
	graphologyGraph *SerializedGraph
}

var _ graphs.CliGraphProvider = (*Graphology)(nil)

func NewGraphology(s graphs.Scene) *Graphology {
	g := &Graphology{
		graphologyGraph: &SerializedGraph{
			Attributes: Attributes{Title: s.Title},
			Options:    Options{Type: "undirected", Multi: false},
			Nodes:      make([]Node, 0, len(s.Nodes)),
			Edges:      make([]Edge, 0, len(s.Edges)),
		},
	}

	for _, n := range s.Nodes {
		g.graphologyGraph.Nodes = append(g.graphologyGraph.Nodes, Node{
			Key: strconv.FormatInt(n.ID, 10),
			Attributes: NodeAttributes{
				X: n.X, Y: n.Y, Size: nodeSize,
				Label: n.Name, Color: n.Color,
			},
		})
	}

	for i, e := range s.Edges {
		g.graphologyGraph.Edges = append(g.graphologyGraph.Edges, Edge{
			Key:        strconv.Itoa(i + 1),
			Source:     strconv.FormatInt(e.SourceID, 10),
			Target:     strconv.FormatInt(e.TargetID, 10),
			Undirected: true,
			Attributes: EdgeAttributes{
				Size:   e.Width,
				Color:  e.Color,
				Label:  e.Label,
				Weight: e.Weight,
				MST:    e.InMST,
			},
		})
	}

	return g
}

// Graph returns the serialized form, it shouldn't be modified.
func (g Graphology) Graph() *SerializedGraph {
	return g.graphologyGraph
}

func (g Graphology) RenderToFile(filename string) (err error) {
	marshalled, err := json.MarshalIndent(g.Graph(), "", "  ")
	if err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = file.Write(marshalled)
	return err
}
