package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cycl/pkg/graph"
	"github.com/matzehuels/cycl/pkg/graph/analyze"
	"github.com/matzehuels/cycl/pkg/observability"
)

// checkCommand creates the check command for reporting cycles.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		flags    graphFlags
		exitZero bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check for cycles between stacks in AWS stack imports/exports",
		Long: `Check reads every export of the account and region and the stacks importing
it, then reports each elementary cycle between stacks.

With --cdk-out, imports found in the synthesized templates are added before
the check, so a cycle can be caught before it is deployed.

Exits with status 1 when a cycle is found, unless --exit-zero is given.`,
		Example: `  cycl check
  cycl check --cdk-out ./cdk.out --ignore-node bootstrap
  cycl check --ignore-edge network,shared --exit-zero`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd, &flags)
			if err != nil {
				return err
			}
			return c.runCheck(cmd.Context(), g, exitZero)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&exitZero, "exit-zero", false, "exit 0 regardless of the result of the cycle check")

	return cmd
}

// runCheck prints one line per cycle to Out and a summary to Err.
func (c *CLI) runCheck(ctx context.Context, g *graph.Graph, exitZero bool) error {
	start := time.Now()
	cycles := analyze.Cycles(g)
	observability.Analysis().OnCyclesFound(ctx, len(cycles), time.Since(start))

	for _, cycle := range cycles {
		fmt.Fprintf(c.Out, "cycle found between nodes: [%s]\n", strings.Join(cycle, ", "))
	}

	if len(cycles) == 0 {
		printSuccess(c.Err, "no cycles found")
		printStats(c.Err, g.NodeCount(), g.EdgeCount())
		return nil
	}

	printWarning(c.Err, "%d %s found", len(cycles), plural(len(cycles), "cycle", "cycles"))
	if exitZero {
		return nil
	}
	return &ExitError{Code: 1}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
