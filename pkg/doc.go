// Package pkg holds the libraries behind cycl, a checker for circular
// dependencies between CloudFormation stacks created by cross-stack exports
// and imports.
//
// # Overview
//
// An export of one stack imported by another makes the importer depend on
// the exporter. CloudFormation refuses to update or delete an export while
// it is imported, so a cycle of such imports can only be broken by hand.
// cycl finds those cycles, including the ones a synthesized but not yet
// deployed CDK app would create.
//
// # Architecture
//
// The data flows through the packages in this order:
//
//	CloudFormation ListExports/ListImports      cdk.out templates
//	         ↓                                         ↓
//	    [collect] (exports + importers)   ←   [cdk] (forward references)
//	         ↓
//	    [node] GraphData (export name → record with importers)
//	         ↓
//	    [graph] Assemble (stack multigraph, exporter → importer)
//	         ↓
//	    [graph/analyze] Cycles, Generations
//	         ↓
//	    [render] JSON, DOT, SVG
//
// # Packages
//
//   - [cfn]: CloudFormation client with adaptive retries and a bounded
//     connection pool
//   - [collect]: concurrent export/import collection
//   - [cdk]: cloud assembly scanning for Fn::ImportValue
//   - [node]: the export/import record model
//   - [graph]: the stack multigraph and its assembler
//   - [graph/analyze]: elementary cycles and topological generations
//   - [render]: graph output
//   - [observability]: hooks for logging and metrics
//   - [errors]: coded errors shared by all packages
//   - [buildinfo]: version information injected at build time
//
// # Quick Start
//
//	client, _ := cfn.NewClient(ctx, cfn.Options{Region: "eu-west-1"})
//	refs, _ := cdk.ForwardReferences("cdk.out", logger)
//	data, _ := collect.New(client, collect.Options{Logger: logger}).Collect(ctx, refs)
//	g := graph.Assemble(data, graph.Options{})
//	for _, cycle := range analyze.Cycles(g) {
//	    fmt.Println(cycle)
//	}
package pkg
