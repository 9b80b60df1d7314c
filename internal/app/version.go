package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are stamped at release build time:
//
//	go build -ldflags "-X github.com/ryankelly77/raptor-portal-sub000/internal/app.Version=1.4.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion reports the running build for startup logs and /health.
// Unstamped builds fall back to the VCS metadata the toolchain embeds.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		rev, at, modified := vcsInfo()
		if commit == "" {
			commit = rev
			if modified && rev != "" {
				commit += "-dirty"
			}
		}
		if built == "" {
			built = at
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func vcsInfo() (revision, at string, modified bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
			if len(revision) > 12 {
				revision = revision[:12]
			}
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return revision, at, modified
}
