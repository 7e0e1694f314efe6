package graphs

import "context"

// CliGraphProvider defines something that can write a rendered Scene to disk.
type CliGraphProvider interface {
	// RenderToFile writes the scene to filename. filename includes the extension, which
	// providers that support several formats use to pick one.
	RenderToFile(filename string) error
}

// InteractiveGraphProvider defines something that can show a Scene on screen.
type InteractiveGraphProvider interface {
	// Show displays the scene and blocks until the user closes the view or ctx is
	// cancelled.
	Show(ctx context.Context) error
}
