// Package buildtime tells how the studio command has been built.
package buildtime

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

//go:embed revision
var revision string

// Info is build information of the studio command.
type Info struct {
	Version  string
	Revision string
}

// Get returns the build information embedded at build time.
func Get() Info {
	return Info{
		Version:  strings.TrimSpace(version),
		Revision: strings.TrimSpace(revision),
	}
}

// String is like "v0.1.0 (commit: 1a2b3c)".
//
// The commit part is omitted when the revision is not recorded.
func (i Info) String() string {
	if i.Revision == "" || i.Revision == "unknown" {
		return i.Version
	}
	return i.Version + " (commit: " + i.Revision + ")"
}

// UserAgent is the value of User-Agent header sent to the backend.
func (i Info) UserAgent() string {
	return "synthstudio-cli/" + strings.TrimPrefix(i.Version, "v")
}

func VersionString() string {
	return Get().String()
}
