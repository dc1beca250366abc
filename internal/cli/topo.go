package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cycl/pkg/errors"
	"github.com/matzehuels/cycl/pkg/graph"
	"github.com/matzehuels/cycl/pkg/graph/analyze"
)

// topoCommand creates the topo command for printing topological generations.
func (c *CLI) topoCommand() *cobra.Command {
	var flags graphFlags

	cmd := &cobra.Command{
		Use:   "topo",
		Short: "Find topological generations if dependencies are acyclic",
		Long: `Topo prints the stacks grouped into topological generations as a JSON list of
lists. The first generation holds the stacks importing nothing; every later
generation only imports from earlier ones. Names within a generation are
sorted.

Exits with status 1 when the graph contains a cycle.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runTopo(cmd.Context(), g)
		},
	}

	flags.register(cmd)

	return cmd
}

// runTopo prints the generations of g as indented JSON.
func (c *CLI) runTopo(ctx context.Context, g *graph.Graph) error {
	gens, err := analyze.Generations(g)
	if errors.Is(err, errors.ErrCodeCyclicGraph) {
		fmt.Fprintf(c.Out, "error: %s\n", errors.UserMessage(err))
		return &ExitError{Code: 1}
	}
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(gens, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(c.Out, string(data))

	loggerFromContext(ctx).Debug("computed generations", "generations", len(gens))
	printSuccess(c.Err, "%d %s", len(gens), plural(len(gens), "generation", "generations"))
	printStats(c.Err, g.NodeCount(), g.EdgeCount())
	return nil
}
