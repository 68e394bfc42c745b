// Package version exposes build metadata for the draftdeck binary.
// Values are set via -ldflags at release time and fall back to module
// build info for plain `go install` builds.
package version

import "runtime/debug"

var (
	// GitRelease is the release tag (e.g. v0.3.0).
	GitRelease = "dev"

	// GitCommit is the commit hash the binary was built from.
	GitCommit = "unknown"

	// GitCommitDate is the commit date.
	GitCommitDate = "unknown"

	// GoInfo is the Go toolchain version.
	GoInfo = "unknown"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	if GoInfo == "unknown" {
		GoInfo = info.GoVersion
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if GitCommit == "unknown" {
				GitCommit = setting.Value
			}
		case "vcs.time":
			if GitCommitDate == "unknown" {
				GitCommitDate = setting.Value
			}
		}
	}
}
