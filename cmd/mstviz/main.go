package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/psidex/mstviz/internal/config"
	"github.com/psidex/mstviz/internal/lib"
	"github.com/psidex/mstviz/internal/mstviz"
)

func newRootCmd() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "mstviz [output_path] [base_dir]",
		Short: "Draw a weighted graph with its minimum spanning tree highlighted",
		Long: `Reads graph_vertices.txt, graph_edges.txt and mst_edges.txt from base_dir (or
base_dir/cmake-build-debug) and draws the graph with the MST edges highlighted.

The output_path extension picks the format: png, jpg, tif, svg, pdf, html,
json (graphology) or dot. Without an output_path the graph is shown in a browser
window.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && !isSelf(args[0]) {
				v.Set(config.KeyOutputPath, args[0])
			}
			if len(args) > 1 {
				v.Set(config.KeyBaseDir, args[1])
			}

			c, err := config.Load(v)
			if err != nil {
				return err
			}
			level, _ := c.Level()
			logger := lib.NiceLogger(os.Stderr, level)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := mstviz.Run(ctx, c, logger); err != nil {
				logger.Error(err.Error())
				return err
			}
			return nil
		},
	}

	config.RegisterFlags(cmd.Flags())
	cobra.CheckErr(config.BindFlags(v, cmd.Flags()))
	return cmd
}

// isSelf reports whether arg is this program's own source file or executable, which
// some launchers pass through as the first argument.
func isSelf(arg string) bool {
	if strings.HasSuffix(arg, ".go") {
		return true
	}
	exe, err := os.Executable()
	if err != nil {
		return false
	}
	return filepath.Base(arg) == filepath.Base(exe)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
