package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-project-tracker/internal/common/jsonutil"
	"github.com/deploymenttheory/go-project-tracker/internal/config"
	"github.com/deploymenttheory/go-project-tracker/internal/logger"
	"github.com/deploymenttheory/go-project-tracker/pkg/tracker"
)

var (
	workflowFile     string
	workflowShowJSON bool
)

// workflowCmd groups the workflow status document operations
var workflowCmd = &cobra.Command{
	Use:   "workflow",
	Short: "Inspect and update the workflow status document",
}

var workflowShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Parse the workflow status document and display its items",
	RunE:  runWorkflowShow,
}

var workflowSetCmd = &cobra.Command{
	Use:   "set <item-id> <status>",
	Short: "Rewrite the status of one workflow item in place",
	Long: `Rewrites the status value of a single workflow item directly in the
document text. Comments, key order and formatting of every other line
survive unchanged.`,
	Args: cobra.ExactArgs(2),
	RunE: runWorkflowSet,
}

func init() {
	rootCmd.AddCommand(workflowCmd)
	workflowCmd.AddCommand(workflowShowCmd)
	workflowCmd.AddCommand(workflowSetCmd)

	workflowCmd.PersistentFlags().StringVarP(&workflowFile, "file", "f", "", "workflow status document (default is the configured workspace file)")
	workflowShowCmd.Flags().BoolVar(&workflowShowJSON, "json", false, "Print the parsed model as JSON")
}

func runWorkflowShow(cmd *cobra.Command, args []string) error {
	path, err := resolveDocumentPath(workflowFile, config.StatusFilePath)
	if err != nil {
		return err
	}

	content, err := loadDocument(path)
	if err != nil {
		return err
	}

	data, err := tracker.ParseWorkflowStatus(content)
	if err != nil {
		return err
	}

	if workflowShowJSON {
		out, err := jsonutil.MarshalPretty(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(out))
		return nil
	}

	if data.Project != "" {
		fmt.Printf("Project: %s\n", data.Project)
	}
	if data.Status != "" {
		fmt.Printf("Status: %s", data.Status)
		if data.StatusNote != "" {
			fmt.Printf(" (%s)", data.StatusNote)
		}
		fmt.Println()
	}
	if data.LastUpdated != "" {
		fmt.Printf("Last updated: %s\n", data.LastUpdated)
	}
	fmt.Println()

	for _, item := range data.Items {
		fmt.Printf("  [phase %s] %-30s %s", item.Phase, item.ID, item.Status)
		if item.Agent != "" {
			fmt.Printf("  (%s)", item.Agent)
		}
		fmt.Println()
	}
	if len(data.Items) == 0 {
		fmt.Println("  no workflow items")
	}
	return nil
}

func runWorkflowSet(cmd *cobra.Command, args []string) error {
	itemID := args[0]
	newStatus := args[1]

	path, err := resolveDocumentPath(workflowFile, config.StatusFilePath)
	if err != nil {
		return err
	}

	content, err := loadDocument(path)
	if err != nil {
		return err
	}

	updated, err := tracker.UpdateWorkflowStatus(content, itemID, newStatus)
	if err != nil {
		return err
	}

	if err := writeDocument(path, content, updated); err != nil {
		return err
	}

	logger.LogDebug("Workflow item updated", map[string]interface{}{
		"item":   itemID,
		"status": newStatus,
	})
	fmt.Printf("%s -> %s\n", itemID, newStatus)
	return nil
}
