// Package inputs finds and parses the text files written by the MST program.
package inputs

import (
	"os"
	"path/filepath"
)

const (
	VerticesFile = "graph_vertices.txt"
	EdgesFile    = "graph_edges.txt"
	MSTFile      = "mst_edges.txt"

	// DefaultChildDir is where the producer's build usually writes its output,
	// relative to the base directory.
	DefaultChildDir = "cmake-build-debug"
)

// Paths are the three input files resolved against Dir.
type Paths struct {
	Dir      string
	Vertices string
	Edges    string
	MST      string
}

func pathsIn(dir string) Paths {
	return Paths{
		Dir:      dir,
		Vertices: filepath.Join(dir, VerticesFile),
		Edges:    filepath.Join(dir, EdgesFile),
		MST:      filepath.Join(dir, MSTFile),
	}
}

// Candidates returns the directories searched by Resolve, in order.
func Candidates(baseDir, childDir string) []string {
	if childDir == "" {
		childDir = DefaultChildDir
	}
	return []string{baseDir, filepath.Join(baseDir, childDir)}
}

// Resolve returns the paths in the first candidate directory that has an edges file.
// If no candidate has one, the paths in the first candidate are returned so callers
// can report something meaningful.
func Resolve(baseDir, childDir string) Paths {
	candidates := Candidates(baseDir, childDir)
	for _, dir := range candidates {
		p := pathsIn(dir)
		if exists(p.Edges) {
			return p
		}
	}
	return pathsIn(candidates[0])
}

// Missing returns the vertices and edges paths that don't exist, in that order. The MST
// file is optional and never reported.
func (p Paths) Missing() []string {
	var missing []string
	for _, path := range []string{p.Vertices, p.Edges} {
		if !exists(path) {
			missing = append(missing, path)
		}
	}
	return missing
}

// HasEdges reports whether the edges file exists.
func (p Paths) HasEdges() bool {
	return exists(p.Edges)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
