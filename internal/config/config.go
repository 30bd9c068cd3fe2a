package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	compression "github.com/deploymenttheory/go-project-tracker/internal/common/compressionutil"
	commonerrors "github.com/deploymenttheory/go-project-tracker/internal/common/errors"
	"github.com/deploymenttheory/go-project-tracker/internal/common/fsutil"
	"github.com/deploymenttheory/go-project-tracker/internal/common/osutil"
)

const (
	// AppName is the application name used for config files and directories
	AppName = "project-tracker"

	// EnvPrefix is the prefix for environment variables
	EnvPrefix = "PROJECT_TRACKER"
)

// AppConfig holds the application configuration
type AppConfig struct {
	// Core settings
	Debug     bool   `mapstructure:"debug"`
	LogFormat string `mapstructure:"log_format"`
	LogFile   string `mapstructure:"log_file"`

	// Workspace settings
	Workspace struct {
		Root       string `mapstructure:"root"`
		StatusFile string `mapstructure:"status_file"`
		SprintFile string `mapstructure:"sprint_file"`
	} `mapstructure:"workspace"`

	// Backup settings
	Backup struct {
		Enabled bool   `mapstructure:"enabled"`
		Dir     string `mapstructure:"dir"`
		Format  string `mapstructure:"format"` // gzip, bzip2 or xz
	} `mapstructure:"backup"`

	// Audit settings
	Audit struct {
		HashAlgorithm string `mapstructure:"hash_algorithm"` // md5, sha1, sha256, sha512 or sha3-256
	} `mapstructure:"audit"`
}

// Global variables
var (
	// Global configuration instance
	Instance AppConfig

	// Status indicators
	ConfigLoaded bool
	ConfigFile   string

	// Viper instance
	v *viper.Viper

	// Ensure thread safety
	initOnce sync.Once
)

// Initialize sets up the configuration system
func Initialize(cfgFile string) error {
	var err error

	initOnce.Do(func() {
		// Create a new viper instance
		v = viper.New()

		// Set default values
		setDefaults(v)

		// Load configuration from file if specified
		if cfgFile != "" {
			v.SetConfigFile(cfgFile)
		} else {
			// Set config name and type
			v.SetConfigName(AppName)
			v.SetConfigType("yaml")

			// Add default search paths
			addSearchPaths(v)
		}

		// Set up environment variables
		v.SetEnvPrefix(EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
		v.AutomaticEnv()

		// Read configuration file
		if readErr := v.ReadInConfig(); readErr != nil {
			if _, ok := readErr.(viper.ConfigFileNotFoundError); !ok {
				// Only capture error if the config file was found but couldn't be read
				err = fmt.Errorf("%w: %v", commonerrors.ErrConfigParseError, readErr)
			}
			// Config file not found, using defaults and environment variables
			ConfigLoaded = false
			ConfigFile = ""
		} else {
			ConfigLoaded = true
			ConfigFile = v.ConfigFileUsed()
		}

		// Unmarshal config into struct
		if unmarshalErr := v.Unmarshal(&Instance); unmarshalErr != nil {
			err = fmt.Errorf("%w: %v", commonerrors.ErrConfigInvalid, unmarshalErr)
			return
		}

		// Ensure required directories exist
		ensureDirectories()
	})

	return err
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Core settings
	v.SetDefault("debug", false)
	v.SetDefault("log_format", "human")

	// Set default log file based on OS
	logDir, err := fsutil.GetLogDir(AppName)
	if err == nil {
		v.SetDefault("log_file", filepath.Join(logDir, "tracker.log"))
	} else {
		v.SetDefault("log_file", "logs/tracker.log")
	}

	// Workspace defaults
	v.SetDefault("workspace.root", "")
	v.SetDefault("workspace.status_file", "bmm-workflow-status.yaml")
	v.SetDefault("workspace.sprint_file", "sprint-status.yaml")

	// Backup defaults
	v.SetDefault("backup.enabled", false)
	v.SetDefault("backup.dir", ".backups")
	v.SetDefault("backup.format", "gzip")

	// Audit defaults
	v.SetDefault("audit.hash_algorithm", "sha256")
}

// addSearchPaths adds config search paths
func addSearchPaths(v *viper.Viper) {
	// Always check current directory first
	v.AddConfigPath(".")

	// Check for development environment
	if osutil.IsDevEnvironment() {
		// In dev mode, only use current directory and user home
		configDir, err := fsutil.GetConfigDir(AppName)
		if err == nil {
			v.AddConfigPath(configDir)
		}
		return
	}

	// Check for CI/Pipeline environment
	if osutil.IsRunningInPipeline() {
		// In CI/Pipeline, only use current directory and explicit CI directories
		v.AddConfigPath("/etc/" + AppName)
		return
	}

	// Standard operation - add user config directory
	configDir, err := fsutil.GetConfigDir(AppName)
	if err == nil {
		v.AddConfigPath(configDir)
	}

	// Add system-wide config directory
	systemConfigDir, err := fsutil.GetSystemConfigDir(AppName)
	if err == nil {
		v.AddConfigPath(systemConfigDir)
	}
}

// ensureDirectories creates necessary directories based on configuration
func ensureDirectories() {
	// Don't create directories in a pipeline environment unless explicitly requested
	if osutil.IsRunningInPipeline() && os.Getenv("CREATE_DIRS") != "true" {
		return
	}

	// Create log directory
	if Instance.LogFile != "" {
		logDir := filepath.Dir(Instance.LogFile)
		_ = fsutil.CreateDirIfNotExists(logDir)
	}
}

// GetWorkspaceRoot returns the configured workspace root
func GetWorkspaceRoot() (string, error) {
	if Instance.Workspace.Root == "" {
		return "", commonerrors.ErrWorkspaceNotSet
	}
	return Instance.Workspace.Root, nil
}

// StatusFilePath returns the resolved workflow status document path
func StatusFilePath() (string, error) {
	root, err := GetWorkspaceRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, Instance.Workspace.StatusFile), nil
}

// SprintFilePath returns the resolved sprint status document path
func SprintFilePath() (string, error) {
	root, err := GetWorkspaceRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, Instance.Workspace.SprintFile), nil
}

// GetBackupFormat validates and returns the configured backup compression format
func GetBackupFormat() (compression.Format, error) {
	return compression.ParseFormat(Instance.Backup.Format)
}

// SaveConfig saves the current configuration to a file
func SaveConfig(filePath string) error {
	// Create a new viper instance for saving
	saveV := viper.New()

	// Set the configuration to match our current Instance
	saveV.SetConfigFile(filePath)

	// Convert the struct to a map
	configMap := structToMap(Instance)

	// Set the values in viper
	for k, v := range configMap {
		saveV.Set(k, v)
	}

	// Ensure the directory exists
	configDir := filepath.Dir(filePath)
	if err := fsutil.CreateDirIfNotExists(configDir); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write the configuration to file
	return saveV.WriteConfig()
}

// structToMap converts a struct to a map using viper
func structToMap(config interface{}) map[string]interface{} {
	tempV := viper.New()
	tempV.SetConfigType("yaml")

	// Use a temporary key to store the struct
	tempV.Set("temp", config)

	// Extract the map
	if allSettings := tempV.AllSettings(); allSettings != nil {
		if tempMap, ok := allSettings["temp"].(map[string]interface{}); ok {
			return tempMap
		}
	}

	// Fallback to empty map
	return make(map[string]interface{})
}
