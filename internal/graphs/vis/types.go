package vis

// Messages streamed to the viewer page, one JSON object per websocket message. The
// "type" field tells the page which collection the data goes in.

type titleData struct {
	Text string `json:"text"`
}

type title struct {
	Type string    `json:"type"` // always "title"
	Data titleData `json:"data"`
}

func newTitle(text string) title {
	return title{Type: "title", Data: titleData{Text: text}}
}

type nodeColor struct {
	Background string `json:"background"`
	Border     string `json:"border"`
}

type nodeData struct {
	ID    int64     `json:"id"`
	Label string    `json:"label"`
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Color nodeColor `json:"color"`
}

type node struct {
	Type string   `json:"type"` // always "node"
	Data nodeData `json:"data"`
}

func newNode() node {
	return node{Type: "node"}
}

type edgeColor struct {
	Color string `json:"color"`
}

type edgeData struct {
	ID    int       `json:"id"`
	From  int64     `json:"from"`
	To    int64     `json:"to"`
	Label string    `json:"label"`
	Width float64   `json:"width"`
	Color edgeColor `json:"color"`
	MST   bool      `json:"mst"`
}

type edge struct {
	Type string   `json:"type"` // always "edge"
	Data edgeData `json:"data"`
}

func newEdge() edge {
	return edge{Type: "edge"}
}

type done struct {
	Type string `json:"type"` // always "done"
}

func newDone() done {
	return done{Type: "done"}
}
