// Package version reports which listcraft build is running.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at link time, e.g.
//
//	go build -ldflags "-X github.com/listcraft/listcraft/internal/version.Version=v1.2.0 \
//	    -X github.com/listcraft/listcraft/internal/version.Commit=3f9c2ab"
//
// Empty values are filled from the module build info in init.
var (
	Version = ""
	Commit  = ""
)

const (
	devVersion    = "dev"
	unknownCommit = "unknown"
	shortHashLen  = 7
)

func init() {
	info, _ := debug.ReadBuildInfo()
	Version, Commit = fromBuildInfo(Version, Commit, info)
}

// fromBuildInfo keeps ldflags values when present and otherwise derives them
// from info. A `go install ...@v1.2.0` build carries the module version; a
// checkout build carries vcs.* settings instead.
func fromBuildInfo(ver, commit string, info *debug.BuildInfo) (string, string) {
	if info != nil {
		if ver == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			ver = info.Main.Version
		}
		if commit == "" {
			commit = vcsCommit(info.Settings)
		}
	}
	if ver == "" {
		ver = devVersion
	}
	if commit == "" {
		commit = unknownCommit
	}
	return ver, commit
}

func vcsCommit(settings []debug.BuildSetting) string {
	var rev string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if rev == "" {
		return ""
	}
	if len(rev) > shortHashLen {
		rev = rev[:shortHashLen]
	}
	if dirty {
		rev += "+dirty"
	}
	return rev
}

// Full is the `listcraft version` line: version, commit and toolchain.
func Full() string {
	return fmt.Sprintf("%s (commit %s, %s)", Version, Commit, runtime.Version())
}

// UserAgent is sent with every request to the list service.
func UserAgent() string {
	return "listcraft/" + strings.TrimPrefix(Version, "v")
}
