package cdk

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// manifest is the subset of a cloud assembly manifest.json that names stacks.
type manifest struct {
	Artifacts map[string]artifact `json:"artifacts"`
}

type artifact struct {
	DisplayName string `json:"displayName"`
	Properties  struct {
		StackName string `json:"stackName"`
	} `json:"properties"`
}

func readManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &m, nil
}

// artifactID returns the template file name up to its first dot.
func artifactID(templateFile string) string {
	id, _, _ := strings.Cut(templateFile, ".")
	return id
}

// stackName returns the deployed stack name of the artifact, or "" when it
// cannot be determined.
func (m *manifest) stackName(id string) string {
	a, ok := m.Artifacts[id]
	if !ok {
		return ""
	}
	if a.Properties.StackName != "" {
		return a.Properties.StackName
	}
	return a.DisplayName[strings.LastIndex(a.DisplayName, "/")+1:]
}
