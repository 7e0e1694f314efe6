package graphs

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// dotScale turns unit square positions into Graphviz inches for neato -n.
const dotScale = 6.0

// dotEscaper makes a string safe inside the double quotes draw.DOT puts around IDs and
// attribute values.
var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func dotQuote(s string) string {
	return dotEscaper.Replace(s)
}

// DOT defines a CliGraphProvider that writes a Graphviz description of the scene, with
// node positions pinned and edges styled by MST membership.
type DOT struct {
	scene Scene
}

var _ CliGraphProvider = (*DOT)(nil)

func NewDOT(s Scene) *DOT {
	return &DOT{scene: s}
}

func (d DOT) build() (graph.Graph[string, string], error) {
	g := graph.New(graph.StringHash, graph.Weighted())

	for _, n := range d.scene.Nodes {
		err := g.AddVertex(dotQuote(n.Name),
			graph.VertexAttribute("pos", fmt.Sprintf("%.3f,%.3f!", n.X*dotScale, n.Y*dotScale)),
			graph.VertexAttribute("style", "filled"),
			graph.VertexAttribute("fillcolor", n.Color),
		)
		if err != nil {
			return nil, fmt.Errorf("adding vertex %q: %w", n.Name, err)
		}
	}

	for _, e := range d.scene.Edges {
		weight := 0
		if e.Weight != nil {
			weight = *e.Weight
		}
		err := g.AddEdge(dotQuote(e.Source), dotQuote(e.Target),
			graph.EdgeWeight(weight),
			graph.EdgeAttribute("label", dotQuote(e.Label)),
			graph.EdgeAttribute("color", e.Color),
			graph.EdgeAttribute("penwidth", strconv.FormatFloat(e.Width, 'f', 1, 64)),
		)
		if err != nil {
			return nil, fmt.Errorf("adding edge %s-%s: %w", e.Source, e.Target, err)
		}
	}

	return g, nil
}

func (d DOT) RenderToFile(filename string) (err error) {
	g, err := d.build()
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return draw.DOT(g, f,
		draw.GraphAttribute("label", dotQuote(d.scene.Title)),
		draw.GraphAttribute("layout", "neato"),
		draw.GraphAttribute("overlap", "prism"),
	)
}
