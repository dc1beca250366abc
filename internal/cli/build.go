package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/cycl/pkg/cdk"
	"github.com/matzehuels/cycl/pkg/cfn"
	"github.com/matzehuels/cycl/pkg/collect"
	"github.com/matzehuels/cycl/pkg/errors"
	"github.com/matzehuels/cycl/pkg/graph"
	"github.com/matzehuels/cycl/pkg/node"
	"github.com/matzehuels/cycl/pkg/observability"
)

// graphFlags are the flags shared by every command that builds the graph.
type graphFlags struct {
	cdkOut          string
	ignoreNodes     []string
	ignoreEdges     []string
	removeSelfLoops bool
	region          string
	profile         string
	workers         int
	failFast        bool
}

func (f *graphFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.cdkOut, "cdk-out", "", "path to cdk.out, where stacks are synthesized to CloudFormation templates")
	fl.StringSliceVarP(&f.ignoreNodes, "ignore-node", "n", nil, "stack to ignore when building the graph (repeatable)")
	fl.StringArrayVar(&f.ignoreEdges, "ignore-edge", nil, "import edge to ignore, as exporter,importer (repeatable)")
	fl.BoolVar(&f.removeSelfLoops, "remove-self-loops", false, "drop edges from a stack to itself")
	fl.StringVar(&f.region, "region", "", "AWS region (default: AWS config chain)")
	fl.StringVar(&f.profile, "profile", "", "AWS shared config profile")
	fl.IntVar(&f.workers, "workers", collect.DefaultWorkers, "concurrent import lookups")
	fl.BoolVar(&f.failFast, "fail-fast", false, "abort on the first failed import lookup")

	_ = cmd.MarkFlagDirname("cdk-out")
}

// buildOptions is the merged result of config file and flags.
type buildOptions struct {
	cdkOut  string
	graph   graph.Options
	collect collect.Options
	cfn     cfn.Options
}

// resolve merges cfg and the flags. Flags that were set override config
// scalars; ignore lists are combined.
func (f *graphFlags) resolve(cfg Config, flags *pflag.FlagSet) (buildOptions, error) {
	edges, err := parseEdges(f.ignoreEdges)
	if err != nil {
		return buildOptions{}, err
	}

	opts := buildOptions{
		cdkOut: pick(flags.Changed("cdk-out"), f.cdkOut, cfg.CdkOut),
		graph: graph.Options{
			Key:             graph.ByStackName,
			IgnoreNodes:     union(cfg.IgnoreNodes, f.ignoreNodes),
			IgnoreEdges:     union(cfg.ignoreEdges(), edges),
			RemoveSelfLoops: pick(flags.Changed("remove-self-loops"), f.removeSelfLoops, cfg.RemoveSelfLoops),
		},
		collect: collect.Options{
			Workers:  f.workers,
			FailFast: pick(flags.Changed("fail-fast"), f.failFast, cfg.FailFast),
		},
		cfn: cfn.Options{
			Region:      pick(flags.Changed("region"), f.region, cfg.Region),
			Profile:     pick(flags.Changed("profile"), f.profile, cfg.Profile),
			MaxAttempts: cfg.MaxAttempts,
		},
	}
	if !flags.Changed("workers") && cfg.Workers > 0 {
		opts.collect.Workers = cfg.Workers
	}
	if opts.collect.Workers <= 0 {
		return buildOptions{}, errors.New(errors.ErrCodeInvalidInput, "--workers must be positive, got %d", opts.collect.Workers)
	}
	opts.cfn.MaxConnections = opts.collect.Workers
	return opts, nil
}

// pick returns flag when it was set on the command line or cfg is the zero
// value, cfg otherwise.
func pick[T comparable](changed bool, flag, cfg T) T {
	var zero T
	if changed || cfg == zero {
		return flag
	}
	return cfg
}

// parseEdges parses "from,to" pairs.
func parseEdges(values []string) ([]graph.Pair, error) {
	pairs := make([]graph.Pair, 0, len(values))
	for _, v := range values {
		p, err := parseEdge(v)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func parseEdge(s string) (graph.Pair, error) {
	from, to, ok := strings.Cut(s, ",")
	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	if !ok || from == "" || to == "" || strings.Contains(to, ",") {
		return graph.Pair{}, errors.New(errors.ErrCodeInvalidInput,
			"invalid --ignore-edge %q, expected exporter,importer", s)
	}
	return graph.Pair{From: from, To: to}, nil
}

// options loads the config file and merges it with the command's flags.
func (c *CLI) options(cmd *cobra.Command, f *graphFlags) (buildOptions, error) {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return buildOptions{}, err
	}
	opts, err := f.resolve(cfg, cmd.Flags())
	if err != nil {
		return buildOptions{}, err
	}
	opts.collect.Logger = loggerFromContext(cmd.Context())
	return opts, nil
}

// buildGraph runs the predictor, the collector and the assembler.
func (c *CLI) buildGraph(ctx context.Context, opts buildOptions) (*graph.Graph, error) {
	logger := loggerFromContext(ctx)

	var predicted map[string][]node.Record
	if opts.cdkOut != "" {
		prog := newProgress(logger)
		refs, err := cdk.ForwardReferences(opts.cdkOut, logger)
		if err != nil {
			return nil, err
		}
		predicted = refs
		prog.done("scanned cloud assembly", "exports", len(refs))
	}

	api, err := c.NewAPI(ctx, opts.cfn)
	if err != nil {
		return nil, err
	}

	prog := newProgress(logger)
	data, err := collect.New(api, opts.collect).Collect(ctx, predicted)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRemote, err, "collect stack relationships")
	}
	prog.done("collected exports", "count", len(data))

	g := graph.Assemble(data, opts.graph)
	observability.Analysis().OnAssembled(ctx, g.NodeCount(), g.EdgeCount())
	return g, nil
}

// loadGraph is options followed by buildGraph.
func (c *CLI) loadGraph(cmd *cobra.Command, f *graphFlags) (*graph.Graph, error) {
	opts, err := c.options(cmd, f)
	if err != nil {
		return nil, err
	}
	return c.buildGraph(cmd.Context(), opts)
}
