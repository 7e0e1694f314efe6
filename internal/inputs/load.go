package inputs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/psidex/mstviz/internal/wgraph"
)

// ErrNotFound wraps fs.ErrNotExist and names the path that was looked for.
func ErrNotFound(path string) error {
	return fmt.Errorf("not found: %s: %w", path, fs.ErrNotExist)
}

// initialLineBuffer is the scanner's starting buffer, it grows as far as math.MaxInt32
// so one oversized junk line is skipped like any other malformed line.
const initialLineBuffer = 64 * 1024

// eachLine calls fn with the trimmed text and the whitespace separated fields of every
// non-blank line.
func eachLine(path string, fn func(line string, fields []string)) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), math.MaxInt32)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fn(line, strings.Fields(line))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// LoadGraph reads the vertices file (optional) and the edges file (required).
//
// Every non-blank line of the vertices file is a vertex name. Every edges line needs at
// least three fields "<u> <v> <weight>", shorter lines are skipped. A weight that isn't
// an integer leaves the edge without a weight rather than dropping it.
func LoadGraph(verticesPath, edgesPath string) (*wgraph.Graph, error) {
	g := wgraph.New()

	err := eachLine(verticesPath, func(line string, _ []string) {
		g.AddVertex(line)
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading vertices: %w", err)
	}

	err = eachLine(edgesPath, func(_ string, fields []string) {
		if len(fields) < 3 {
			return
		}
		var weight *int
		if w, err := strconv.Atoi(fields[2]); err == nil {
			weight = &w
		}
		g.AddEdge(fields[0], fields[1], weight)
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound(edgesPath)
	}
	if err != nil {
		return nil, fmt.Errorf("loading edges: %w", err)
	}

	return g, nil
}

// LoadMST reads "<u> <v> [...]" lines into a set of normalized pairs. A missing file is
// an empty set, lines with fewer than two fields are skipped.
func LoadMST(mstPath string) (wgraph.PairSet, error) {
	mst := wgraph.NewPairSet()

	err := eachLine(mstPath, func(_ string, fields []string) {
		if len(fields) < 2 {
			return
		}
		mst.Add(fields[0], fields[1])
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return mst, fmt.Errorf("loading mst: %w", err)
	}

	return mst, nil
}
