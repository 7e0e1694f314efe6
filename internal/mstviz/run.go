// Package mstviz wires the input loaders, the scene and the renderers into a single run.
package mstviz

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/psidex/mstviz/internal/config"
	"github.com/psidex/mstviz/internal/graphs"
	"github.com/psidex/mstviz/internal/graphs/vis"
	"github.com/psidex/mstviz/internal/inputs"
)

// Run loads the graph and MST found under c.BaseDir and either writes them to
// c.OutputPath or, when no output path is set, shows them in the interactive viewer
// until it is closed or ctx is cancelled.
func Run(ctx context.Context, c config.Config, logger *slog.Logger) error {
	base := c.BaseDir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		base = wd
	}

	paths := inputs.Resolve(base, c.ChildDir)
	logger.Debug("resolved input directory", "dir", paths.Dir)

	for _, p := range paths.Missing() {
		logger.Warn("not found: " + p)
	}
	if !paths.HasEdges() {
		childDir := c.ChildDir
		if childDir == "" {
			childDir = inputs.DefaultChildDir
		}
		logger.Error("run the MST program first, it writes its output to " + filepath.Join(base, childDir))
		return inputs.ErrNotFound(paths.Edges)
	}

	g, err := inputs.LoadGraph(paths.Vertices, paths.Edges)
	if err != nil {
		return fmt.Errorf("load graph: %w", err)
	}
	mst, err := inputs.LoadMST(paths.MST)
	if err != nil {
		return fmt.Errorf("load mst: %w", err)
	}
	logger.Debug("loaded inputs", "vertices", g.NumVertices(), "edges", g.NumEdges(), "mst", mst.Len())

	scene := graphs.NewScene(g, mst, graphs.SceneOptions{
		Title: "Base: " + paths.Dir,
		Seed:  c.Seed,
	})

	if c.OutputPath == "" {
		v := vis.NewVis(scene, vis.Options{
			Addr:        c.ViewAddr,
			OpenBrowser: !c.NoBrowser,
		}, logger)
		return v.Show(ctx)
	}

	provider, err := NewProvider(scene, c.OutputPath, c)
	if err != nil {
		return err
	}
	if err := provider.RenderToFile(c.OutputPath); err != nil {
		return fmt.Errorf("render %s: %w", c.OutputPath, err)
	}
	logger.Info("image saved to: " + c.OutputPath)
	return nil
}
