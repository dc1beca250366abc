// Package buildinfo holds the version of the cycl binary.
//
// The values are injected at link time:
//
//	go build -ldflags "-X github.com/matzehuels/cycl/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/cycl/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/cycl/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/cycl
package buildinfo

import (
	"fmt"
	"strings"
)

// Name is the application name reported to users and AWS.
const Name = "cycl"

var (
	Version = "dev"     // semantic version, e.g. "v1.2.3"
	Commit  = "none"    // git commit SHA
	Date    = "unknown" // build timestamp
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// AppID identifies cycl in the User-Agent of AWS API calls, e.g.
// "cycl/v1.2.3". AWS limits app ids to 50 characters.
func AppID() string {
	id := Name + "/" + strings.TrimSpace(Version)
	if len(id) > 50 {
		id = id[:50]
	}
	return id
}
