package mstviz

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/psidex/mstviz/internal/config"
	"github.com/psidex/mstviz/internal/graphs"
	"github.com/psidex/mstviz/internal/graphs/graphology"
)

// Format is the lower case output file extension without the dot.
func Format(filename string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
}

// NewProvider picks the CliGraphProvider for the output file's extension.
func NewProvider(s graphs.Scene, filename string, c config.Config) (graphs.CliGraphProvider, error) {
	format := Format(filename)
	switch {
	case slices.Contains(graphs.PlotFormats, format):
		p := graphs.NewPlot(s)
		p.DPI = c.DPI
		p.Width = vg.Length(c.Width) * vg.Inch
		p.Height = vg.Length(c.Height) * vg.Inch
		return p, nil
	case format == "html" || format == "htm":
		return graphs.NewECharts(s), nil
	case format == "json":
		return graphology.NewGraphology(s), nil
	case format == "dot" || format == "gv":
		return graphs.NewDOT(s), nil
	}
	return nil, fmt.Errorf("unsupported output format %q for %s", format, filename)
}
