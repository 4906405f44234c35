// Package version holds the build fingerprint printed by `tokgen version`.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/fatih/color"
)

// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Info is the build fingerprint.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
}

// Current returns the fingerprint, filling the commit from the embedded
// VCS stamp when ldflags did not set it.
func Current() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
	if info.GitCommit != "" {
		return info
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.GitCommit = s.Value
			case "vcs.time":
				if info.BuildDate == "" {
					info.BuildDate = s.Value
				}
			}
		}
	}
	return info
}

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
	dimColor   = color.New(color.Faint)
)

// Pretty renders the fingerprint for a terminal, one field per line.
func (i Info) Pretty() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tokgen %s\n", colorVersion(i.Version))
	if i.GitCommit != "" {
		fmt.Fprintf(&b, "%s %s\n", dimColor.Sprint("commit:"), i.GitCommit)
	}
	if i.BuildDate != "" {
		fmt.Fprintf(&b, "%s %s\n", dimColor.Sprint("built: "), i.BuildDate)
	}
	fmt.Fprintf(&b, "%s %s\n", dimColor.Sprint("go:    "), i.GoVersion)
	return b.String()
}

// colorVersion paints major.minor.patch and leaves any suffix plain.
func colorVersion(v string) string {
	core, suffix := v, ""
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		core, suffix = v[:i], v[i:]
	}
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}
	return majorColor.Sprint(parts[0]) + "." + minorColor.Sprint(parts[1]) + "." + patchColor.Sprint(parts[2]) + suffix
}
