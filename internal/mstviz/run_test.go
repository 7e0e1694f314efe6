package mstviz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/psidex/mstviz/internal/config"
	"github.com/psidex/mstviz/internal/graphs"
	"github.com/psidex/mstviz/internal/graphs/graphology"
	"github.com/psidex/mstviz/internal/lib"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

var triangleFiles = map[string]string{
	"graph_vertices.txt": "A\nB\nC\n",
	"graph_edges.txt":    "A B 4\nB C 2\nA C 9\n",
	"mst_edges.txt":      "A B\nB C\n",
}

func testConfig(base, out string) config.Config {
	c := config.Default()
	c.BaseDir = base
	c.OutputPath = out
	c.NoBrowser = true
	return c
}

func TestRunWritesGraphologyJSON(t *testing.T) {
	base := t.TempDir()
	writeFiles(t, base, triangleFiles)
	out := filepath.Join(t.TempDir(), "mst.json")

	var logs bytes.Buffer
	require.NoError(t, Run(context.Background(), testConfig(base, out), lib.NiceLogger(&logs, 0)))
	assert.Contains(t, logs.String(), "image saved to: "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var g graphology.SerializedGraph
	require.NoError(t, json.Unmarshal(data, &g))

	assert.Equal(t, "Base: "+base, g.Attributes.Title)
	require.Len(t, g.Nodes, 3)
	require.Len(t, g.Edges, 3)

	mst := map[string]bool{}
	for _, e := range g.Edges {
		mst[e.Attributes.Label] = e.Attributes.MST
	}
	assert.Equal(t, map[string]bool{"4": true, "2": true, "9": false}, mst)
}

func TestRunWritesPNG(t *testing.T) {
	base := t.TempDir()
	writeFiles(t, base, triangleFiles)
	out := filepath.Join(t.TempDir(), "mst.png")

	require.NoError(t, Run(context.Background(), testConfig(base, out), lib.DiscardLogger()))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, 960, cfg.Height)
}

func TestRunFallsBackToChildDir(t *testing.T) {
	base := t.TempDir()
	writeFiles(t, filepath.Join(base, "cmake-build-debug"), triangleFiles)
	out := filepath.Join(t.TempDir(), "mst.dot")

	require.NoError(t, Run(context.Background(), testConfig(base, out), lib.DiscardLogger()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), filepath.Join(base, "cmake-build-debug"))
}

func TestRunWithoutVerticesOrMST(t *testing.T) {
	base := t.TempDir()
	writeFiles(t, base, map[string]string{"graph_edges.txt": "A B 4\nB C x\n"})
	out := filepath.Join(t.TempDir(), "mst.json")

	var logs bytes.Buffer
	require.NoError(t, Run(context.Background(), testConfig(base, out), lib.NiceLogger(&logs, 0)))
	assert.Contains(t, logs.String(), "not found: "+filepath.Join(base, "graph_vertices.txt"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var g graphology.SerializedGraph
	require.NoError(t, json.Unmarshal(data, &g))
	require.Len(t, g.Edges, 2)
	for _, e := range g.Edges {
		assert.False(t, e.Attributes.MST)
		assert.Equal(t, graphs.NeutralColor, e.Attributes.Color)
	}
}

func TestRunMissingEdges(t *testing.T) {
	base := t.TempDir()
	out := filepath.Join(t.TempDir(), "mst.png")

	var logs bytes.Buffer
	err := Run(context.Background(), testConfig(base, out), lib.NiceLogger(&logs, 0))

	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), filepath.Join(base, "graph_edges.txt"))
	assert.Contains(t, logs.String(), filepath.Join(base, "cmake-build-debug"))
	assert.NoFileExists(t, out)
}

func TestRunUnsupportedFormat(t *testing.T) {
	base := t.TempDir()
	writeFiles(t, base, triangleFiles)
	out := filepath.Join(t.TempDir(), "mst.bmp")

	err := Run(context.Background(), testConfig(base, out), lib.DiscardLogger())
	assert.ErrorContains(t, err, "unsupported output format")
	assert.NoFileExists(t, out)
}

func TestRunInteractiveStopsOnCancel(t *testing.T) {
	base := t.TempDir()
	writeFiles(t, base, triangleFiles)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	require.NoError(t, Run(ctx, testConfig(base, ""), lib.DiscardLogger()))
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNewProvider(t *testing.T) {
	s := graphs.Scene{Title: "t"}
	c := config.Default()

	for file, want := range map[string]any{
		"a.png":  &graphs.Plot{},
		"a.JPEG": &graphs.Plot{},
		"a.svg":  &graphs.Plot{},
		"a.html": &graphs.ECharts{},
		"a.htm":  &graphs.ECharts{},
		"a.json": &graphology.Graphology{},
		"a.gv":   &graphs.DOT{},
	} {
		p, err := NewProvider(s, file, c)
		require.NoError(t, err, file)
		assert.IsType(t, want, p, file)
	}

	c.DPI = 72
	c.Width, c.Height = 2, 1
	p, err := NewProvider(s, "a.png", c)
	require.NoError(t, err)
	plot := p.(*graphs.Plot)
	assert.Equal(t, 72, plot.DPI)
	assert.InDelta(t, 144.0, float64(plot.Width), 1e-9)
	assert.InDelta(t, 72.0, float64(plot.Height), 1e-9)

	_, err = NewProvider(s, "noext", c)
	assert.Error(t, err)
}
