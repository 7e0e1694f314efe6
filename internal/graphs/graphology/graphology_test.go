package graphology

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psidex/mstviz/internal/graphs"
	"github.com/psidex/mstviz/internal/wgraph"
)

func TestGraphologyRenderToFile(t *testing.T) {
	g := wgraph.New()
	g.AddEdge("A", "B", wgraph.Weight(4))
	g.AddEdge("B", "C", nil)
	mst := wgraph.NewPairSet()
	mst.Add("B", "A")

	scene := graphs.NewScene(g, mst, graphs.SceneOptions{Title: "Base: x", Seed: graphs.DefaultSeed})
	out := filepath.Join(t.TempDir(), "graph.json")

	require.NoError(t, NewGraphology(scene).RenderToFile(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var got SerializedGraph
	require.NoError(t, json.Unmarshal(data, &got))
	if diff := cmp.Diff(NewGraphology(scene).Graph(), &got); diff != "" {
		t.Errorf("written graph differs from Graph() (-want +got):\n%s", diff)
	}

	assert.Equal(t, "Base: x", got.Attributes.Title)
	assert.Equal(t, "undirected", got.Options.Type)
	require.Len(t, got.Nodes, 3)
	assert.Equal(t, "1", got.Nodes[0].Key)
	assert.Equal(t, "A", got.Nodes[0].Attributes.Label)
	assert.Equal(t, graphs.NodeColor, got.Nodes[0].Attributes.Color)

	a, _ := scene.Node("A")
	assert.Equal(t, a.X, got.Nodes[0].Attributes.X)
	assert.Equal(t, a.Y, got.Nodes[0].Attributes.Y)

	require.Len(t, got.Edges, 2)
	ab := got.Edges[0]
	assert.Equal(t, "1", ab.Source)
	assert.Equal(t, "2", ab.Target)
	assert.True(t, ab.Attributes.MST)
	assert.Equal(t, graphs.HighlightColor, ab.Attributes.Color)
	assert.Equal(t, graphs.HighlightWidth, ab.Attributes.Size)
	require.NotNil(t, ab.Attributes.Weight)
	assert.Equal(t, 4, *ab.Attributes.Weight)

	bc := got.Edges[1]
	assert.False(t, bc.Attributes.MST)
	assert.Nil(t, bc.Attributes.Weight)
	assert.Equal(t, "", bc.Attributes.Label)
}
