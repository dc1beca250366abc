// Package cdk predicts cross-stack imports from a synthesized CDK cloud
// assembly.
//
// Stacks that have been synthesized but not deployed yet are invisible to
// CloudFormation's ListImports. Their templates, however, already contain
// the Fn::ImportValue references they will create. [ForwardReferences]
// scans every *.template.json and *.template.yaml file under a cdk.out
// directory and maps each imported export name to the importing stacks.
//
// # Stack Names
//
// A template's stack name comes from the manifest.json next to it. The
// artifact id is the template file name up to its first dot. An explicit
// properties.stackName wins over the last path segment of displayName:
//
//	{
//	  "artifacts": {
//	    "AppStack": {
//	      "displayName": "Prod/AppStack",
//	      "properties": {"stackName": "prod-app"}
//	    }
//	  }
//	}
//
// Templates whose stack name cannot be resolved are skipped with a warning.
//
// # Limitations
//
// Only literal export names are resolved. An import whose value is built at
// deploy time (Fn::Sub, Fn::Join, Ref) is skipped.
package cdk
