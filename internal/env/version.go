package env

import (
	"runtime/debug"
)

type VersionInfo struct {
	BuildVersion string
	Commit       string
}

// Set at link time with -ldflags "-X trunkctl/internal/env.BuildVersion=...".
var BuildVersion string
var Commit string

func GetBuildVersion() (versionInfo VersionInfo) {
	versionInfo.BuildVersion = BuildVersion
	versionInfo.Commit = Commit

	if info, ok := debug.ReadBuildInfo(); ok {
		if versionInfo.BuildVersion == "" {
			versionInfo.BuildVersion = info.Main.Version
		}
		if versionInfo.Commit == "" {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					versionInfo.Commit = setting.Value
				}
			}
		}
	}

	if versionInfo.BuildVersion == "" {
		versionInfo.BuildVersion = "(devel)"
	}
	if versionInfo.Commit == "" {
		versionInfo.Commit = "unknown"
	}
	return
}
