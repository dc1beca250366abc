// Package cli implements the cycl command-line interface.
//
// The commands read the cross-stack export/import relationships of an AWS
// account and region, optionally add the forward references found in a
// synthesized CDK cloud assembly, and analyze the resulting stack graph.
//
// # Commands
//
//   - check: report every cycle between stacks
//   - topo: print the topological generations of an acyclic graph
//   - graph: write the assembled graph as JSON, DOT or SVG
//   - completion: generate shell completion scripts
//
// # Logging
//
// Logs go to stderr at warn level by default. Use --log-level or -v to change
// it. The logger is attached to the command context and passed explicitly to
// the library packages.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cycl/pkg/buildinfo"
	"github.com/matzehuels/cycl/pkg/cfn"
	"github.com/matzehuels/cycl/pkg/collect"
)

const (
	// appName is the application name used for display and the config file.
	appName = buildinfo.Name

	// configFileName is looked up in the working directory when --config is
	// not given.
	configFileName = "." + appName + ".toml"
)

// LogWarn is the default log level, exported for use in main.go.
const LogWarn = log.WarnLevel

// APIFactory creates the CloudFormation API used by the collector.
type APIFactory func(ctx context.Context, opts cfn.Options) (collect.API, error)

// ExitError carries a process exit code without an error message. Commands
// return it after they have already reported the outcome, e.g. when cycles
// were found.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // command results
	Err    io.Writer // status lines

	// NewAPI defaults to a real CloudFormation client.
	NewAPI APIFactory

	configPath string
	logLevel   string
	verbose    bool
}

// New creates a new CLI instance writing results to out and logs and status
// lines to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		Out:    out,
		Err:    errOut,
		NewAPI: newCloudFormationAPI,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Check for cross-stack import/export circular dependencies.",
		Long:          `cycl finds circular dependencies between CloudFormation stacks created by cross-stack exports and imports, including imports that only exist in a synthesized CDK app.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := c.resolveLevel()
			if err != nil {
				return err
			}
			c.SetLogLevel(level)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.SetErr(c.Err)

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default: ./"+configFileName+" if present)")
	pf.StringVar(&c.logLevel, "log-level", "warning", "log level: debug, info, warning, error, critical")
	pf.BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.topoCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// resolveLevel picks the log level from -v or --log-level.
func (c *CLI) resolveLevel() (log.Level, error) {
	if c.verbose {
		return log.DebugLevel, nil
	}
	return parseLevel(c.logLevel)
}

func newCloudFormationAPI(ctx context.Context, opts cfn.Options) (collect.API, error) {
	client, err := cfn.NewClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	return client, nil
}
