package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-project-tracker/internal/config"
	"github.com/deploymenttheory/go-project-tracker/pkg/tracker"
)

var pathCheckRoot string

// pathCmd groups the workspace containment operations
var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Validate paths against the workspace root",
}

var pathCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Report whether a path stays inside the workspace root",
	Long: `Checks a candidate path against the workspace root using purely
lexical resolution: '.' and '..' segments collapse, both POSIX and
drive-letter conventions are understood, and no filesystem access
happens. Traversal attempts and sibling-prefix lookalikes are rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: runPathCheck,
}

func init() {
	rootCmd.AddCommand(pathCmd)
	pathCmd.AddCommand(pathCheckCmd)

	pathCheckCmd.Flags().StringVar(&pathCheckRoot, "root", "", "workspace root to check against (default is the configured root)")
}

func runPathCheck(cmd *cobra.Command, args []string) error {
	candidate := args[0]

	root := pathCheckRoot
	if root == "" {
		var err error
		root, err = config.GetWorkspaceRoot()
		if err != nil {
			return err
		}
	}

	if validated, ok := tracker.GetValidatedPath(candidate, root); ok {
		fmt.Printf("inside: %s\n", validated)
		return nil
	}

	fmt.Printf("outside: %s is not contained in %s\n", candidate, root)
	return nil
}
