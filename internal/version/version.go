package version

import (
	"fmt"
	"runtime/debug"
)

// Set at link time by the release build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
	BuiltBy = ""
)

var readBuildInfo = debug.ReadBuildInfo

// Info is the resolved build identity of the running binary.
type Info struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

// Current returns the link-time values, filled in from the module build
// info when the binary was installed with `go install` instead.
func Current() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date, BuiltBy: BuiltBy}
	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	dirty := false
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" && s.Value != "" {
				info.Commit = s.Value
				if len(info.Commit) > 12 {
					info.Commit = info.Commit[:12]
				}
			}
		case "vcs.time":
			if info.Date == "unknown" && s.Value != "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty && Commit == "none" && info.Commit != "none" {
		info.Commit += "-dirty"
	}
	return info
}

func Full() string {
	info := Current()
	result := fmt.Sprintf("minutes %s, commit %s, built at %s", info.Version, info.Commit, info.Date)
	if info.BuiltBy != "" {
		result += fmt.Sprintf(" by %s", info.BuiltBy)
	}
	return result
}
