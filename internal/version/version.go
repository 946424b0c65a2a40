// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set at build time using ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	if Commit == "none" {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
				Commit = setting.Value[:7]
			}
		}
	}
}

// Info returns formatted version information.
func Info() string {
	return fmt.Sprintf("jsonflat version %s (commit: %s, go: %s)", Version, Commit, runtime.Version())
}
