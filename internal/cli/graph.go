package cli

import (
	"bytes"
	"context"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cycl/pkg/errors"
	"github.com/matzehuels/cycl/pkg/graph"
	"github.com/matzehuels/cycl/pkg/graph/analyze"
	"github.com/matzehuels/cycl/pkg/render"
)

const (
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

var graphFormats = []string{formatJSON, formatDOT, formatSVG}

// graphOpts holds the output options of the graph command.
type graphOpts struct {
	format    string
	output    string
	highlight bool
	detailed  bool
}

// graphCommand creates the graph command for exporting the assembled graph.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		flags graphFlags
		opts  = graphOpts{format: formatJSON}
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Write the assembled stack graph",
		Long: `Graph writes the stack graph used by check and topo.

Formats:
  json  nodes with their exports, one edge per import
  dot   Graphviz source
  svg   laid out with Graphviz

With --highlight-cycles the stacks and imports on a cycle are marked.`,
		Example: `  cycl graph > stacks.json
  cycl graph --format svg --highlight-cycles -o stacks.svg`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return validateGraphFormat(opts.format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runGraph(cmd.Context(), g, opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: "+strings.Join(graphFormats, ", "))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.highlight, "highlight-cycles", false, "mark stacks and imports that form a cycle")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "list the exports of each stack in DOT and SVG labels")

	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(graphFormats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func validateGraphFormat(f string) error {
	if !slices.Contains(graphFormats, f) {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid format: %s (must be one of %s)", f, strings.Join(graphFormats, ", "))
	}
	return nil
}

// runGraph renders g and writes it to opts.output or Out.
func (c *CLI) runGraph(ctx context.Context, g *graph.Graph, opts graphOpts) error {
	logger := loggerFromContext(ctx)

	ro := render.Options{Detailed: opts.detailed}
	if opts.highlight {
		ro.Cycles = analyze.Cycles(g)
		logger.Debug("highlighting cycles", "cycles", len(ro.Cycles))
	}

	data, err := renderGraph(ctx, g, opts.format, ro)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := c.Out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return err
	}
	printFile(c.Err, opts.output)
	return nil
}

func renderGraph(ctx context.Context, g *graph.Graph, format string, opts render.Options) ([]byte, error) {
	switch format {
	case formatJSON:
		var buf bytes.Buffer
		if err := render.WriteJSON(g, &buf, opts); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case formatDOT:
		return []byte(render.ToDOT(g, opts)), nil
	case formatSVG:
		return render.RenderSVG(ctx, render.ToDOT(g, opts))
	default:
		return nil, validateGraphFormat(format)
	}
}
