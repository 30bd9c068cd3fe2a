package main

import (
	"fmt"
	"os"

	"github.com/deploymenttheory/go-project-tracker/cmd"
	"github.com/deploymenttheory/go-project-tracker/internal/config"
	"github.com/deploymenttheory/go-project-tracker/internal/logger"
)

func main() {
	// Get app configuration file from environment if specified
	configFile := os.Getenv("PROJECT_TRACKER_CONFIG")

	// 1. Initialize application configuration
	if err := config.Initialize(configFile); err != nil {
		// Report through a stdout-only logger when possible; LogFatal exits
		if lerr := logger.InitLogger(logger.DefaultConfig()); lerr != nil {
			fmt.Fprintf(os.Stderr, "Error initializing configuration: %v\n", err)
			os.Exit(1)
		}
		logger.LogFatal("Failed to initialize configuration", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// 2. Initialize logging based on application configuration
	if err := initLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}

	// 3. Hand off to the CLI
	cmd.Execute()

	// Ensure logs are flushed before exit
	logger.Sync()
}

// initLogging initializes the logger based on configuration settings
func initLogging() error {
	logConfig := logger.LoggerConfig{
		Debug:     config.Instance.Debug,
		LogFormat: config.Instance.LogFormat,
		LogFile:   config.Instance.LogFile,
	}

	return logger.InitLogger(logConfig)
}
