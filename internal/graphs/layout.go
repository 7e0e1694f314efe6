package graphs

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/psidex/mstviz/internal/wgraph"
)

const (
	// DefaultSeed makes layouts repeatable between runs.
	DefaultSeed uint64 = 42

	// DefaultLayoutUpdates is the number of Eades iterations to run.
	DefaultLayoutUpdates = 50
)

// Layout places the vertices of g using gonum's Eades force-directed layout seeded with
// seed. The result maps node IDs to positions inside the unit square, centred on
// (0.5, 0.5) and scaled so the longer side of the layout spans [0, 1].
//
// The graph hands its nodes to the optimizer in insertion order, so for a given graph
// and seed the result is always the same.
func Layout(g *wgraph.Graph, seed uint64, updates int) map[int64]r2.Vec {
	positions := make(map[int64]r2.Vec, g.NumVertices())
	if g.NumVertices() == 0 {
		return positions
	}
	if updates <= 0 {
		updates = DefaultLayoutUpdates
	}

	eades := layout.EadesR2{
		Repulsion: 1,
		Rate:      0.05,
		Updates:   updates,
		Theta:     0.2,
		Src:       rand.NewSource(seed),
	}
	optimizer := layout.NewOptimizerR2(g, eades.Update)
	for optimizer.Update() {
	}

	nodes := g.Nodes()
	for nodes.Next() {
		id := nodes.Node().ID()
		positions[id] = optimizer.Coord2(id)
	}

	return normalize(positions)
}

func normalize(positions map[int64]r2.Vec) map[int64]r2.Vec {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range positions {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	span := math.Max(maxX-minX, maxY-minY)
	centre := r2.Vec{X: (minX + maxX) / 2, Y: (minY + maxY) / 2}

	out := make(map[int64]r2.Vec, len(positions))
	for id, p := range positions {
		if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
			out[id] = r2.Vec{X: 0.5, Y: 0.5}
			continue
		}
		out[id] = r2.Add(r2.Vec{X: 0.5, Y: 0.5}, r2.Scale(1/span, r2.Sub(p, centre)))
	}
	return out
}
