// Package collect gathers deployed export/import relationships from
// CloudFormation.
//
// # Overview
//
// A [Collector] lists every export in the account and region, then asks
// CloudFormation which stacks import each export. The result is a
// [node.GraphData] ready for graph assembly:
//
//	c := collect.New(client, collect.Options{Logger: logger})
//	data, err := c.Collect(ctx, predicted)
//
// # Forward References
//
// Stacks that are synthesized but not yet deployed may already import an
// export. [MergePredicted] appends such predicted importers to the deployed
// ones before lookup. Predicted references to exports that do not exist yet
// are logged and dropped: they describe a first deployment of both sides.
//
// # Concurrency
//
// Importer lookups run on a bounded worker pool (10 workers by default).
// Each export is looked up independently and writes only its own entry, so
// the result does not depend on completion order. A failed lookup is logged
// and its export left out, unless [Options.FailFast] asks for the first
// error to abort the collection.
//
// CloudFormation reports an export without importers as an error; the
// collector maps that case to an empty importer list (see [IsNotImported]).
package collect
