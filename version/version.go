// Package version reports build information for the tsgen binary.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Build information, set at build time via ldflags:
//
//	go build -ldflags "-X github.com/teranos/tsgen/version.Version=v1.2.0 ..."
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// Info contains version and build information
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Semver parses Version. Untagged builds ("dev") have no semantic version.
func (i Info) Semver() (*semver.Version, bool) {
	v, err := semver.NewVersion(i.Version)
	if err != nil {
		return nil, false
	}
	return v, true
}

// String returns a human-readable version string
func (i Info) String() string {
	if v, ok := i.Semver(); ok {
		return fmt.Sprintf("tsgen v%s (commit %s, built %s)", v, i.Short(), i.BuildTime)
	}
	return fmt.Sprintf("tsgen dev (commit %s, built %s)", i.Short(), i.BuildTime)
}

// Short returns a short version string with just the commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
