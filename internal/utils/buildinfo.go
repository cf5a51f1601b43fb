package utils

import (
	"runtime/debug"
)

const (
	unknownVersion          = "unknown"
	developmentVersion      = "(devel)"
	revisionSettingKey      = "vcs.revision"
	modifiedSettingKey      = "vcs.modified"
	dirtyVersionSuffix      = "-dirty"
	shortRevisionCharacters = 12
)

// GetApplicationVersion reports the module version embedded by the Go toolchain.
// Development builds fall back to the VCS revision recorded at build time.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable {
		return unknownVersion
	}
	if buildInfo.Main.Version != "" && buildInfo.Main.Version != developmentVersion {
		return buildInfo.Main.Version
	}
	return versionFromSettings(buildInfo.Settings)
}

func versionFromSettings(settings []debug.BuildSetting) string {
	revision := ""
	modified := false
	for _, setting := range settings {
		switch setting.Key {
		case revisionSettingKey:
			revision = setting.Value
		case modifiedSettingKey:
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return unknownVersion
	}
	if len(revision) > shortRevisionCharacters {
		revision = revision[:shortRevisionCharacters]
	}
	if modified {
		revision += dirtyVersionSuffix
	}
	return revision
}
