package node

import (
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// Record is a single stack/export relationship unit.
//
// Empty strings mean "absent". A record with an empty ExportName is an
// importer leaf and never carries importers of its own.
type Record struct {
	StackName   string `json:"stack_name"`             // Graph key by default
	StackID     string `json:"stack_id,omitempty"`     // Remote stack ARN
	ExportName  string `json:"export_name,omitempty"`  // Empty for importers
	ExportValue string `json:"export_value,omitempty"` // Resolved output value

	// ImportingStacks lists the stacks importing ExportName, in lookup order.
	ImportingStacks []Record `json:"importing_stacks,omitempty"`
}

// GraphData maps export names to the record of the exporting stack.
type GraphData map[string]Record

// IsImporter reports whether r only describes an importing stack.
func (r Record) IsImporter() bool { return r.ExportName == "" }

// Equal reports whether r and o have identical fields. ImportingStacks is
// compared element by element, in order.
func (r Record) Equal(o Record) bool {
	if r.StackName != o.StackName || r.StackID != o.StackID ||
		r.ExportName != o.ExportName || r.ExportValue != o.ExportValue {
		return false
	}
	return slices.EqualFunc(r.ImportingStacks, o.ImportingStacks, Record.Equal)
}

// Clone returns a deep copy of r.
func (r Record) Clone() Record {
	if r.ImportingStacks != nil {
		imps := make([]Record, len(r.ImportingStacks))
		for i, imp := range r.ImportingStacks {
			imps[i] = imp.Clone()
		}
		r.ImportingStacks = imps
	}
	return r
}

// Clone returns a deep copy of d.
func (d GraphData) Clone() GraphData {
	out := make(GraphData, len(d))
	for k, r := range d {
		out[k] = r.Clone()
	}
	return out
}

// ExportNames returns the export names of d in sorted order.
func (d GraphData) ExportNames() []string {
	names := make([]string, 0, len(d))
	for k := range d {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// ParseNameFromID extracts the stack name from a CloudFormation stack id.
//
// The id is split on "/" and the second segment is returned. Ids with fewer
// than two segments are malformed: a warning is logged and "" is returned.
// A nil logger falls back to log.Default().
func ParseNameFromID(id string, logger *log.Logger) string {
	parts := strings.Split(id, "/")
	if len(parts) < 2 {
		if logger == nil {
			logger = log.Default()
		}
		logger.Warn("malformed stack id, cannot parse stack name", "stack_id", id)
		return ""
	}
	return parts[1]
}
