package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-project-tracker/internal/config"
	"github.com/deploymenttheory/go-project-tracker/internal/export"
	"github.com/deploymenttheory/go-project-tracker/pkg/tracker"
)

var (
	exportFile   string
	exportKind   string
	exportFormat string
	exportOut    string
)

// exportCmd renders a parsed status document in an alternate format
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the normalized status model in another format",
	Long: `Parses a status document into its normalized model and renders it as
JSON, YAML, TOML or an XML property list. The source document is never
modified; exports are derived views.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "status document to export (default is the configured workspace file)")
	exportCmd.Flags().StringVar(&exportKind, "kind", "workflow", "document kind: workflow or sprint")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json, yaml, toml or plist")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default is stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	var model interface{}
	switch exportKind {
	case "workflow":
		path, err := resolveDocumentPath(exportFile, config.StatusFilePath)
		if err != nil {
			return err
		}
		content, err := loadDocument(path)
		if err != nil {
			return err
		}
		model, err = tracker.ParseWorkflowStatus(content)
		if err != nil {
			return err
		}
	case "sprint":
		path, err := resolveDocumentPath(exportFile, config.SprintFilePath)
		if err != nil {
			return err
		}
		content, err := loadDocument(path)
		if err != nil {
			return err
		}
		model, err = tracker.ParseSprintStatus(content)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown document kind %q (want workflow or sprint)", exportKind)
	}

	if exportOut == "" {
		data, err := export.Marshal(model, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	if err := export.WriteFile(exportOut, model, format); err != nil {
		return err
	}
	fmt.Printf("exported %s model to %s\n", exportKind, exportOut)
	return nil
}
