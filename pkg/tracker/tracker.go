// Package tracker is the stable API surface for embedding the status
// document operations in other tooling. All document operations work on
// in-memory text and perform no I/O; Initialize only wires up the optional
// config and logging plumbing used by long-running callers.
package tracker

import (
	"fmt"

	"github.com/deploymenttheory/go-project-tracker/internal/config"
	"github.com/deploymenttheory/go-project-tracker/internal/logger"
	"github.com/deploymenttheory/go-project-tracker/internal/sprint"
	"github.com/deploymenttheory/go-project-tracker/internal/workflow"
	"github.com/deploymenttheory/go-project-tracker/internal/workspace"
)

// InitOptions contains options for initializing the tracker API
type InitOptions struct {
	ConfigFile  string // Path to configuration file
	Debug       bool   // Enable debug logging
	LogFormat   string // Log format: "human" or "json"
	LogFile     string // Path to log file
	SuppressLog bool   // Suppress all logging
}

var (
	initialized bool
	logging     bool
)

// Initialize initializes the tracker API with the given options
func Initialize(options InitOptions) error {
	if initialized {
		return nil // Already initialized
	}

	// Initialize configuration
	configErr := config.Initialize(options.ConfigFile)

	// Update config with provided options
	if options.Debug {
		config.Instance.Debug = true
	}

	if options.LogFormat != "" {
		config.Instance.LogFormat = options.LogFormat
	}

	if options.LogFile != "" {
		config.Instance.LogFile = options.LogFile
	}

	// Initialize logging
	if !options.SuppressLog {
		logConfig := logger.LoggerConfig{
			Debug:     config.Instance.Debug,
			LogFormat: config.Instance.LogFormat,
			LogFile:   config.Instance.LogFile,
		}

		if err := logger.InitLogger(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.LogInfo("Tracker API initialized", map[string]interface{}{
			"config_file": options.ConfigFile,
			"debug":       options.Debug,
			"log_format":  options.LogFormat,
		})

		// Log configuration error if any
		if configErr != nil {
			logger.LogWarn("Configuration initialization warning", map[string]interface{}{
				"error": configErr.Error(),
			})
		}

		logging = true
	}

	initialized = true
	return nil
}

// DefaultOptions returns the default initialization options
func DefaultOptions() InitOptions {
	logConfig := logger.DefaultConfig()
	return InitOptions{
		Debug:     logConfig.Debug,
		LogFormat: logConfig.LogFormat,
		LogFile:   logConfig.LogFile,
	}
}

// ParseWorkflowStatus parses a workflow status document in any of the
// supported shapes and returns the normalized model.
func ParseWorkflowStatus(yamlContent string) (*workflow.WorkflowData, error) {
	return workflow.Parse(yamlContent)
}

// UpdateWorkflowStatus rewrites the status of one workflow item in the
// document text, leaving everything else byte-for-byte intact.
func UpdateWorkflowStatus(yamlContent, itemID, newStatus string) (string, error) {
	return workflow.Update(yamlContent, itemID, newStatus)
}

// ParseSprintStatus parses a sprint status document into its epic and
// story hierarchy.
func ParseSprintStatus(yamlContent string) (*sprint.SprintData, error) {
	return sprint.Parse(yamlContent)
}

// UpdateStoryStatus rewrites the status of one story in the document text,
// leaving everything else byte-for-byte intact.
func UpdateStoryStatus(yamlContent, storyID, newStatus string) (string, error) {
	return sprint.Update(yamlContent, storyID, newStatus)
}

// IsInsideWorkspace reports whether filePath stays within workspaceRoot.
// The check is purely lexical; no filesystem access happens.
func IsInsideWorkspace(filePath, workspaceRoot string) bool {
	return workspace.IsInside(filePath, workspaceRoot)
}

// GetValidatedPath returns filePath unchanged when it is inside
// workspaceRoot, with the second return reporting containment.
func GetValidatedPath(filePath, workspaceRoot string) (string, bool) {
	return workspace.ValidatedPath(filePath, workspaceRoot)
}

// GetVersion returns the current version of the tracker API
func GetVersion() string {
	return "0.1.0"
}

// Shutdown performs any necessary cleanup before the application exits
func Shutdown() error {
	if initialized && logging {
		logger.LogInfo("Tracker API shutting down", nil)
		logger.Sync()
	}
	return nil
}
