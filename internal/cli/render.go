package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vizlab/dsanim/pkg/errors"
	"github.com/vizlab/dsanim/pkg/layout"
	"github.com/vizlab/dsanim/pkg/render"
	"github.com/vizlab/dsanim/pkg/scene"
	"github.com/vizlab/dsanim/pkg/style"
	"github.com/vizlab/dsanim/pkg/widget/graph"
)

// formatDOT extends the render package's still formats with Graphviz
// export, which only makes sense for graph inputs and so lives here.
const formatDOT = "dot"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	input    string // adjacency JSON file
	output   string // output file path
	layout   string // layout algorithm name
	format   string // output format: "svg", "png", "dot"
	theme    string // optional TOML theme file
	directed bool   // draw arrowheads on edges
}

// newRenderCmd creates the render command, which loads a graph from an
// adjacency JSON file, lays it out, and writes a still image.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		layout: string(layout.Default),
		format: string(render.FormatSVG),
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a graph from an adjacency file",
		Long: `Render loads a graph from an adjacency JSON file, applies a layout
algorithm, and writes the scene as an SVG or PNG still or a Graphviz DOT
document.

The adjacency file maps node names to neighbor lists; entries may be bare
names, [name, weight] pairs, or {"name": ..., "weight": ...} objects:

  {"A": ["B", ["C", 5]], "B": [{"name": "C", "weight": 2}]}

A top-level array is also accepted, naming nodes by position:

  [["1", "2"], ["0"], []]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "adjacency JSON file (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.layout, "layout", "l", opts.layout, "layout algorithm (see 'dsanim layouts')")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, png, dot")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file overriding the default styles")
	cmd.Flags().BoolVar(&opts.directed, "directed", false, "draw arrowheads on edges")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// runRender loads the adjacency file, builds and lays out the graph
// widget, and writes the requested output.
func runRender(ctx context.Context, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Infof("Rendering %s", opts.input)

	g, err := loadGraph(opts)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded graph: %d nodes, %d edges", g.Len(), g.EdgeCount())

	// An unknown layout name downgrades to a warning here: the library
	// returns a typed error, but the CLI falls back to the default so a
	// typo still produces an image.
	alg := layout.Algorithm(opts.layout)
	if _, err := layout.Get(alg); err != nil {
		printWarning("unknown layout %q, falling back to %s", opts.layout, layout.Default)
		alg = layout.Default
	}
	if err := g.Layout(alg); err != nil {
		return err
	}

	data, path, err := renderGraph(ctx, g, opts)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}

	prog.done(fmt.Sprintf("Rendered %s", path))
	printSuccess("wrote %s", path)
	printStats(g.Len(), g.EdgeCount())
	printFile(path)
	return nil
}

// loadGraph reads the adjacency file and builds the graph widget with the
// requested theme and direction.
func loadGraph(opts *renderOpts) (*graph.Graph, error) {
	data, err := os.ReadFile(opts.input)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", opts.input)
	}
	adj, err := graph.ParseAdjacency(data)
	if err != nil {
		return nil, err
	}

	gstyle := style.DefaultGraph()
	if opts.theme != "" {
		_, gs, err := style.LoadTheme(opts.theme)
		if err != nil {
			return nil, err
		}
		gstyle = gs
	}

	gopts := []graph.Option{graph.WithStyle(gstyle)}
	if opts.directed {
		gopts = append(gopts, graph.WithDirected())
	}
	return graph.FromAdjacency(adj, gopts...)
}

// renderGraph produces the output bytes and the path to write them to.
func renderGraph(ctx context.Context, g *graph.Graph, opts *renderOpts) ([]byte, string, error) {
	logger := loggerFromContext(ctx)

	if strings.EqualFold(opts.format, formatDOT) {
		dot := render.ToDOT(g)
		// Round-trip through Graphviz so a malformed document fails here
		// instead of in whatever consumes the file.
		if _, err := render.RenderDOT(ctx, dot); err != nil {
			return nil, "", err
		}
		logger.Debugf("DOT document validated: %d bytes", len(dot))
		return []byte(dot), outputPath(opts, formatDOT), nil
	}

	f, err := render.ParseFormat(opts.format)
	if err != nil {
		return nil, "", err
	}

	sc := scene.New()
	sc.Root.Attach(g)
	data, err := render.Still(sc, f)
	if err != nil {
		return nil, "", err
	}
	return data, outputPath(opts, string(f)), nil
}

// outputPath derives the output file name: the explicit --output if given,
// otherwise the input name with the format's extension.
func outputPath(opts *renderOpts, ext string) string {
	if opts.output != "" {
		return opts.output
	}
	base := strings.TrimSuffix(opts.input, filepath.Ext(opts.input))
	return base + "." + ext
}
