// Package node defines the unit of cross-stack relationship data that cycl
// reasons about.
//
// # Records
//
// A [Record] describes one CloudFormation stack in the role of an exporter
// or an importer. Exporter records carry the export name and value and list
// the stacks that import the export in [Record.ImportingStacks]. Importer
// records only carry a stack name and are reachable from an exporter's
// importer list:
//
//	r := node.Record{
//	    StackName:  "network",
//	    ExportName: "network-VpcId",
//	    ImportingStacks: []node.Record{
//	        {StackName: "app"},
//	    },
//	}
//
// # Graph Data
//
// [GraphData] maps export names to their exporter records. It is assembled
// once per run from deployed state (see the collect package) merged with
// forward references found in synthesized templates (see the cdk package)
// and is handed to the graph assembler without further mutation.
//
// # Stack Identifiers
//
// CloudFormation stack ids are ARNs of the form
//
//	arn:aws:cloudformation:<region>:<account>:stack/<name>/<uuid>
//
// [ParseNameFromID] recovers the stack name from such an id.
package node
