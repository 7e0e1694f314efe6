package graphology

type NodeAttributes struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Label string  `json:"label"`
	Color string  `json:"color"`
}

type Node struct {
	Key        string         `json:"key"`
	Attributes NodeAttributes `json:"attributes"`
}

type EdgeAttributes struct {
	Size   float64 `json:"size"`
	Color  string  `json:"color"`
	Label  string  `json:"label"`
	Weight *int    `json:"weight"`
	MST    bool    `json:"mst"`
}

type Edge struct {
	Key        string         `json:"key"`
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Undirected bool           `json:"undirected"`
	Attributes EdgeAttributes `json:"attributes"`
}

type Options struct {
	Type  string `json:"type"`
	Multi bool   `json:"multi"`
}

type Attributes struct {
	Title string `json:"title"`
}

// SerializedGraph is the graphology serialization format, see
// https://graphology.github.io/serialization.html.
type SerializedGraph struct {
	Attributes Attributes `json:"attributes"`
	Options    Options    `json:"options"`
	Nodes      []Node     `json:"nodes"`
	Edges      []Edge     `json:"edges"`
}
