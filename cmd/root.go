package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/deploymenttheory/go-project-tracker/internal/config"
	"github.com/deploymenttheory/go-project-tracker/internal/logger"
	"github.com/deploymenttheory/go-project-tracker/pkg/tracker"
)

var cfgFile string

// rootCmd represents the base CLI command
var rootCmd = &cobra.Command{
	Use:   "project-tracker",
	Short: "A CLI tool for BMad project status documents",
	Long: `project-tracker is a command line tool for reading and updating the
status documents a BMad-method project keeps in its workspace.

It parses every historical shape of the workflow status file, groups
sprint entries into epics and stories, and rewrites single status
fields in place without disturbing comments or formatting.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// CLI flags can override config settings
		debug, _ := cmd.Flags().GetBool("debug")
		logFormat, _ := cmd.Flags().GetString("log-format")
		logFile, _ := cmd.Flags().GetString("log-file")
		workspaceRoot, _ := cmd.Flags().GetString("workspace-root")

		// If CLI flags were explicitly provided, update the global config
		logChanged := false
		if cmd.Flags().Changed("debug") {
			config.Instance.Debug = debug
			logChanged = true
		}

		if cmd.Flags().Changed("log-format") {
			config.Instance.LogFormat = logFormat
			logChanged = true
		}

		if cmd.Flags().Changed("log-file") {
			config.Instance.LogFile = logFile
			logChanged = true
		}

		if cmd.Flags().Changed("workspace-root") {
			config.Instance.Workspace.Root = workspaceRoot
		}

		// If config file was explicitly specified via flag, reinitialize
		if cmd.Flags().Changed("config") && cfgFile != "" {
			// Only log an error, don't exit, as the config may still be usable
			if err := config.Initialize(cfgFile); err != nil {
				logger.LogError("Error loading config file", err, map[string]interface{}{
					"config_file": cfgFile,
				})
			}
		}

		// Rebuild the logger so overrides take effect for this invocation
		if logChanged {
			logConfig := logger.LoggerConfig{
				Debug:     config.Instance.Debug,
				LogFormat: config.Instance.LogFormat,
				LogFile:   config.Instance.LogFile,
			}
			if err := logger.InitLogger(logConfig); err != nil {
				logger.LogError("Error reconfiguring logger", err, nil)
			}
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.LogError("Command execution failed", err, nil)
		// Let Cobra handle the exit
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is search in standard locations)")

	// Debug flag
	rootCmd.PersistentFlags().Bool("debug", config.Instance.Debug, "Enable debug logging")

	// Log format flag
	rootCmd.PersistentFlags().String("log-format", config.Instance.LogFormat, "Log format: json or human")

	// Log file flag
	rootCmd.PersistentFlags().String("log-file", config.Instance.LogFile, "Log file path")

	// Workspace root flag
	rootCmd.PersistentFlags().String("workspace-root", config.Instance.Workspace.Root, "Workspace root directory containing the status documents")

	// Bind flags to viper settings
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("workspace.root", rootCmd.PersistentFlags().Lookup("workspace-root"))

	// Add version command
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows the application version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("project-tracker v%s\n", tracker.GetVersion())
	},
}
