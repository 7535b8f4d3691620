package api

import (
	"runtime/debug"

	"github.com/samber/lo"
)

// Version, VersionCommit and VersionDate hold the version information.
// VersionCommit and VersionDate come from the VCS stamp Go embeds in module builds.
var (
	Version       = "0.1.0"
	VersionCommit = ""
	VersionDate   = ""
)

func init() {
	if i, ok := debug.ReadBuildInfo(); ok {
		VersionCommit = buildSetting(i.Settings, "vcs.revision")
		VersionDate = buildSetting(i.Settings, "vcs.time")
	}
}

// buildSetting returns the value of key in settings, or "" when absent
func buildSetting(settings []debug.BuildSetting, key string) string {
	s, ok := lo.Find(settings, func(s debug.BuildSetting) bool {
		return s.Key == key
	})
	if !ok {
		return ""
	}
	return s.Value
}
