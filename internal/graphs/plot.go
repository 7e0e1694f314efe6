package graphs

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

const (
	DefaultDPI    = 160
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 6 * vg.Inch

	nodeRadius = vg.Length(12)
)

// PlotFormats are the file extensions (without the dot) that Plot can write.
var PlotFormats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf"}

// Plot defines a CliGraphProvider that draws the scene as a static figure using
// gonum/plot. The format is picked from the filename extension, raster formats are
// drawn at DPI dots per inch.
type Plot struct {
	scene  Scene
	Width  vg.Length
	Height vg.Length
	DPI    int
}

var _ CliGraphProvider = (*Plot)(nil)

func NewPlot(s Scene) *Plot {
	return &Plot{
		scene:  s,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		DPI:    DefaultDPI,
	}
}

func (p Plot) canvas(format string) (vg.CanvasWriterTo, error) {
	w, h := p.Width, p.Height
	raster := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(p.DPI))
	}
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: raster()}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: raster()}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: raster()}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	}
	return nil, fmt.Errorf("unsupported format: %q", format)
}

// Figure builds the gonum plot for the scene without writing it anywhere.
func (p Plot) Figure() *plot.Plot {
	fig := plot.New()
	fig.Title.Text = p.scene.Title
	fig.HideAxes()
	fig.Add(sceneRender{p.scene})
	return fig
}

func (p Plot) RenderToFile(filename string) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")

	if p.DPI <= 0 {
		return fmt.Errorf("invalid dpi: %d", p.DPI)
	}
	// Pick the canvas before touching the filesystem so a bad extension leaves nothing
	// behind.
	c, err := p.canvas(format)
	if err != nil {
		return err
	}

	p.Figure().Draw(draw.New(c))

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()

	_, err = c.WriteTo(f)
	return err
}

// sceneRender implements plot.Plotter, plot.DataRanger and plot.GlyphBoxer for a
// Scene.
type sceneRender struct {
	scene Scene
}

func (r sceneRender) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	at := func(id int64) vg.Point {
		x, y := r.scene.Pos(id)
		return vg.Point{X: trX(x), Y: trY(y)}
	}

	// Edges first so the nodes sit on top of them.
	for _, e := range r.scene.Edges {
		from, to := at(e.SourceID), at(e.TargetID)
		c.StrokeLine2(draw.LineStyle{
			Color: hexColor(e.Color),
			Width: vg.Points(e.Width),
		}, from.X, from.Y, to.X, to.Y)
	}

	for _, n := range r.scene.Nodes {
		c.DrawGlyph(draw.GlyphStyle{
			Color:  hexColor(n.Color),
			Radius: nodeRadius,
			Shape:  nodeGlyph{},
		}, at(n.ID))
	}

	nodeText := draw.TextStyle{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, 10),
		Handler: plot.DefaultTextHandler,
		XAlign:  draw.XCenter,
		YAlign:  draw.YCenter,
	}
	for _, n := range r.scene.Nodes {
		c.FillText(nodeText, at(n.ID), n.Name)
	}

	edgeText := nodeText
	edgeText.Font = font.From(plot.DefaultFont, 8)
	for _, e := range r.scene.Edges {
		if e.Label == "" {
			continue
		}
		from, to := at(e.SourceID), at(e.TargetID)
		mid := vg.Point{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}
		fillLabelBox(&c, edgeText, mid, e.Label)
		c.FillText(edgeText, mid, e.Label)
	}
}

// fillLabelBox paints a white box behind an edge label so it stays readable on top of
// the line.
func fillLabelBox(c *draw.Canvas, sty draw.TextStyle, pt vg.Point, label string) {
	rect := sty.Rectangle(label)
	pad := vg.Points(1.5)
	box := []vg.Point{
		{X: pt.X + rect.Min.X - pad, Y: pt.Y + rect.Min.Y - pad},
		{X: pt.X + rect.Max.X + pad, Y: pt.Y + rect.Min.Y - pad},
		{X: pt.X + rect.Max.X + pad, Y: pt.Y + rect.Max.Y + pad},
		{X: pt.X + rect.Min.X - pad, Y: pt.Y + rect.Max.Y + pad},
	}
	c.FillPolygon(color.White, box)
}

// DataRange is the unit square the layout is normalized into.
func (r sceneRender) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(r.scene.Nodes) == 0 {
		return 0, 1, 0, 1
	}
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, n := range r.scene.Nodes {
		xmin, xmax = math.Min(xmin, n.X), math.Max(xmax, n.X)
		ymin, ymax = math.Min(ymin, n.Y), math.Max(ymax, n.Y)
	}
	return xmin, xmax, ymin, ymax
}

// GlyphBoxes keeps whole node circles inside the plot area.
func (r sceneRender) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	boxes := make([]plot.GlyphBox, 0, len(r.scene.Nodes))
	for _, n := range r.scene.Nodes {
		boxes = append(boxes, plot.GlyphBox{
			X: plt.X.Norm(n.X),
			Y: plt.Y.Norm(n.Y),
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: -nodeRadius, Y: -nodeRadius},
				Max: vg.Point{X: nodeRadius, Y: nodeRadius},
			},
		})
	}
	return boxes
}

// nodeGlyph is a glyph that draws a filled circle with a thin outline.
type nodeGlyph struct{}

func (nodeGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	var p vg.Path
	c.Push()
	c.SetColor(sty.Color)
	p.Move(vg.Point{X: pt.X + sty.Radius, Y: pt.Y})
	p.Arc(pt, sty.Radius, 0, 2*math.Pi)
	p.Close()
	c.Fill(p)
	c.Pop()
	c.Push()
	c.SetColor(color.Gray{Y: 0x60})
	c.SetLineWidth(vg.Points(0.5))
	c.Stroke(p)
	c.Pop()
}

// hexColor parses "#rrggbb", anything else is black.
func hexColor(s string) color.Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.Black
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.Black
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
