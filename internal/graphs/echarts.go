package graphs

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// echartsExtent is the size of the coordinate box the unit square layout is scaled to.
// ECharts rescales it to the viewport, it only has to be big enough to keep 0 out of
// the coordinates since zero X/Y are dropped from the JSON.
const echartsExtent = 1000

// ECharts defines a CliGraphProvider that renders a go-echarts HTML file with the
// layout fixed to the scene positions.
type ECharts struct {
	scene Scene
	nodes []opts.GraphNode
	links []opts.GraphLink
}

var _ CliGraphProvider = (*ECharts)(nil)

func NewECharts(s Scene) *ECharts {
	e := &ECharts{
		scene: s,
		nodes: make([]opts.GraphNode, 0, len(s.Nodes)),
		links: make([]opts.GraphLink, 0, len(s.Edges)),
	}

	for _, n := range s.Nodes {
		e.nodes = append(e.nodes, opts.GraphNode{
			Name: n.Name,
			// Screen Y grows downwards.
			X:          float32(echartsExtent/20 + n.X*echartsExtent),
			Y:          float32(echartsExtent/20 + (1-n.Y)*echartsExtent),
			Fixed:      opts.Bool(true),
			SymbolSize: 30,
			ItemStyle:  &opts.ItemStyle{Color: n.Color},
		})
	}

	for _, edge := range s.Edges {
		link := opts.GraphLink{
			Source: edge.Source,
			Target: edge.Target,
			LineStyle: &opts.LineStyle{
				Color: edge.Color,
				Width: float32(edge.Width),
			},
			Label: &opts.EdgeLabel{Show: opts.Bool(false)},
		}
		if edge.Weight != nil {
			link.Value = float32(*edge.Weight)
		}
		if edge.Label != "" {
			link.Label = &opts.EdgeLabel{
				Show:      opts.Bool(true),
				Formatter: edge.Label,
				Color:     "black",
			}
		}
		e.links = append(e.links, link)
	}

	return e
}

func (e ECharts) RenderToFile(filename string) (err error) {
	page := components.NewPage()
	page.SetPageTitle(e.scene.Title)
	page.AddCharts(e.graph())

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return page.Render(f)
}

func (e ECharts) graph() *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: e.scene.Title,
			Height:    "95vh",
			Width:     "95vw",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: e.scene.Title,
			Left:  "center",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	graph.AddSeries(
		"graph",
		e.nodes,
		e.links,
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Layout:    "none",
				Draggable: opts.Bool(true),
				Roam:      opts.Bool(true),
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "inside",
		}),
	)
	return graph
}
