package osutil

import (
	"os"
)

// IsDevEnvironment checks if the application is running in a development environment
// based on environment variables
func IsDevEnvironment() bool {
	// Check for typical development environment indicators
	return os.Getenv("PROJECT_TRACKER_ENV") == "development" ||
		os.Getenv("PROJECT_TRACKER_DEV") == "true" ||
		os.Getenv("PROJECT_TRACKER_DEBUG") == "true" ||
		os.Getenv("DEV") == "true" ||
		os.Getenv("DEBUG") == "true"
}

// IsRunningInPipeline detects common CI systems so config search paths can
// include the pipeline workspace.
func IsRunningInPipeline() bool {
	return os.Getenv("CI") == "true" ||
		os.Getenv("GITHUB_ACTIONS") == "true" ||
		os.Getenv("GITLAB_CI") == "true" ||
		os.Getenv("JENKINS_URL") != "" ||
		os.Getenv("TF_BUILD") == "True"
}
