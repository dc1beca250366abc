package collect

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/smithy-go"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/cycl/pkg/node"
	"github.com/matzehuels/cycl/pkg/observability"
)

// DefaultWorkers is the size of the importer lookup pool.
const DefaultWorkers = 10

const notImportedMessage = "is not imported by any stack"

// API is the subset of the CloudFormation client used by the collector.
// *cloudformation.Client satisfies it.
type API interface {
	ListExports(ctx context.Context, params *cloudformation.ListExportsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListExportsOutput, error)
	ListImports(ctx context.Context, params *cloudformation.ListImportsInput, optFns ...func(*cloudformation.Options)) (*cloudformation.ListImportsOutput, error)
}

// Options configures a Collector.
type Options struct {
	// Workers bounds concurrent importer lookups. Zero means DefaultWorkers.
	Workers int

	// FailFast aborts Collect on the first failed lookup instead of logging
	// and dropping the affected export.
	FailFast bool

	// Logger receives progress and failure messages. Nil means log.Default().
	Logger *log.Logger
}

// WithDefaults returns a copy of o with zero fields set to their defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return opts
}

// Collector reads export/import relationships from CloudFormation.
type Collector struct {
	api  API
	opts Options
}

// New creates a Collector backed by api.
func New(api API, opts Options) *Collector {
	return &Collector{api: api, opts: opts.WithDefaults()}
}

// ListExports pages through every export and returns them keyed by export
// name. Importers are not looked up. Duplicate names keep the last export
// seen.
func (c *Collector) ListExports(ctx context.Context) (node.GraphData, error) {
	start := time.Now()
	data := make(node.GraphData)
	var token *string
	for {
		callStart := time.Now()
		out, err := c.api.ListExports(ctx, &cloudformation.ListExportsInput{NextToken: token})
		observability.API().OnCall(ctx, "ListExports", time.Since(callStart), err)
		if err != nil {
			observability.Collect().OnExportsListed(ctx, len(data), time.Since(start), err)
			return nil, err
		}
		for _, e := range out.Exports {
			name := aws.ToString(e.Name)
			id := aws.ToString(e.ExportingStackId)
			data[name] = node.Record{
				StackName:   node.ParseNameFromID(id, c.opts.Logger),
				StackID:     id,
				ExportName:  name,
				ExportValue: aws.ToString(e.Value),
			}
		}
		token = out.NextToken
		if aws.ToString(token) == "" {
			break
		}
	}
	c.opts.Logger.Debug("listed exports", "count", len(data))
	observability.Collect().OnExportsListed(ctx, len(data), time.Since(start), nil)
	return data, nil
}

// LookupImports returns a copy of rec with the stacks importing its export
// appended to ImportingStacks.
//
// An export without importers is not an error. Other API errors are
// returned unchanged. Records without an export name are importers and are
// returned as-is after logging a warning.
func (c *Collector) LookupImports(ctx context.Context, rec node.Record) (node.Record, error) {
	rec = rec.Clone()
	if rec.IsImporter() {
		c.opts.Logger.Warn("record has no export name, skipping import lookup", "stack", rec.StackName)
		return rec, nil
	}

	var token *string
	for {
		callStart := time.Now()
		out, err := c.api.ListImports(ctx, &cloudformation.ListImportsInput{
			ExportName: aws.String(rec.ExportName),
			NextToken:  token,
		})
		observability.API().OnCall(ctx, "ListImports", time.Since(callStart), err)
		if err != nil {
			if IsNotImported(err) {
				c.opts.Logger.Debug("export is not imported by any stack", "export", rec.ExportName)
				return rec, nil
			}
			return rec, err
		}
		for _, stack := range out.Imports {
			rec.ImportingStacks = append(rec.ImportingStacks, node.Record{StackName: stack})
		}
		token = out.NextToken
		if aws.ToString(token) == "" {
			return rec, nil
		}
	}
}

// IsNotImported reports whether err is CloudFormation's way of saying an
// export has no importers.
func IsNotImported(err error) bool {
	if err == nil {
		return false
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && strings.Contains(apiErr.ErrorMessage(), notImportedMessage) {
		return true
	}
	return strings.Contains(err.Error(), notImportedMessage)
}

// MergePredicted returns a copy of exports with predicted importers
// appended to the deployed ones. Predicted export names missing from
// exports are logged at info level and ignored.
func MergePredicted(exports node.GraphData, predicted map[string][]node.Record, logger *log.Logger) node.GraphData {
	if logger == nil {
		logger = log.Default()
	}
	out := exports.Clone()
	for name, importers := range predicted {
		rec, ok := out[name]
		if !ok {
			logger.Info("export not deployed yet, ignoring predicted importers", "export", name, "importers", len(importers))
			continue
		}
		for _, imp := range importers {
			rec.ImportingStacks = append(rec.ImportingStacks, imp.Clone())
		}
		out[name] = rec
	}
	return out
}

// Collect lists all exports, merges predicted importers and looks up the
// deployed importers of every export concurrently.
func (c *Collector) Collect(ctx context.Context, predicted map[string][]node.Record) (node.GraphData, error) {
	exports, err := c.ListExports(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	return c.lookupAll(ctx, MergePredicted(exports, predicted, c.opts.Logger))
}

type job struct {
	name string
	rec  node.Record
}

type result struct {
	job
	err error
}

func (c *Collector) lookupAll(parent context.Context, data node.GraphData) (node.GraphData, error) {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	jobs := make(chan job, c.opts.Workers*2)
	results := make(chan result, c.opts.Workers*2)

	var wg sync.WaitGroup
	for range c.opts.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- c.lookup(ctx, j)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, name := range data.ExportNames() {
			select {
			case jobs <- job{name: name, rec: data[name]}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make(node.GraphData, len(data))
	var firstErr error
	for r := range results {
		switch {
		case r.err == nil:
			out[r.name] = r.rec
		case c.opts.FailFast:
			if firstErr == nil {
				firstErr = fmt.Errorf("list imports of %s: %w", r.name, r.err)
				cancel()
			}
		default:
			c.opts.Logger.Error("import lookup failed, dropping export", "export", r.name, "err", r.err)
		}
	}

	if firstErr != nil {
		return nil, firstErr
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Collector) lookup(ctx context.Context, j job) result {
	start := time.Now()
	observability.Collect().OnLookupStart(ctx, j.name)
	rec, err := c.LookupImports(ctx, j.rec)
	observability.Collect().OnLookupComplete(ctx, j.name, len(rec.ImportingStacks), time.Since(start), err)
	return result{job: job{name: j.name, rec: rec}, err: err}
}
