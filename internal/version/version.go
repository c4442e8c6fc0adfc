// Package version provides version information for the coursekit CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// cueModule is the module path of the CUE SDK used for config validation.
const cueModule = "cuelang.org/go"

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version" yaml:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit" yaml:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate" yaml:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion" yaml:"goVersion"`

	// CUESDKVersion is the CUE SDK version linked into the binary.
	CUESDKVersion string `json:"cueSDKVersion" yaml:"cueSDKVersion"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:       Version,
		GitCommit:     GitCommit,
		BuildDate:     BuildDate,
		GoVersion:     runtime.Version(),
		CUESDKVersion: moduleVersion(cueModule),
	}
}

// moduleVersion returns the version of a linked dependency, or "unknown"
// when build info is unavailable (as in tests).
func moduleVersion(path string) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range bi.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("coursekit version %s\n  Commit:    %s\n  Built:     %s\n  Go:        %s\n  CUE SDK:   %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.CUESDKVersion)
}
