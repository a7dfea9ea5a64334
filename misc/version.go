// Package misc carries build-time information about the program.
package misc

// Set by the linker, see Taskfile.yml.
var (
	appName = "twc"
	version = "dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
