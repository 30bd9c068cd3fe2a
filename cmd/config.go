package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-project-tracker/internal/config"
	"github.com/deploymenttheory/go-project-tracker/internal/logger"
)

// configCmd groups configuration inspection and persistence
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or persist the effective configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Run: func(cmd *cobra.Command, args []string) {
		if config.ConfigLoaded {
			fmt.Printf("config file: %s\n", config.ConfigFile)
		} else {
			fmt.Println("config file: (none, defaults and environment only)")
		}
		fmt.Printf("debug: %t\n", config.Instance.Debug)
		fmt.Printf("log_format: %s\n", config.Instance.LogFormat)
		fmt.Printf("log_file: %s\n", config.Instance.LogFile)
		fmt.Printf("workspace.root: %s\n", config.Instance.Workspace.Root)
		fmt.Printf("workspace.status_file: %s\n", config.Instance.Workspace.StatusFile)
		fmt.Printf("workspace.sprint_file: %s\n", config.Instance.Workspace.SprintFile)
		fmt.Printf("backup.enabled: %t\n", config.Instance.Backup.Enabled)
		fmt.Printf("backup.dir: %s\n", config.Instance.Backup.Dir)
		fmt.Printf("backup.format: %s\n", config.Instance.Backup.Format)
		fmt.Printf("audit.hash_algorithm: %s\n", config.Instance.Audit.HashAlgorithm)
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save <path>",
	Short: "Write the effective configuration to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SaveConfig(args[0]); err != nil {
			return err
		}
		logger.LogInfo("Configuration saved", map[string]interface{}{
			"file": args[0],
		})
		fmt.Printf("wrote %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSaveCmd)
}
