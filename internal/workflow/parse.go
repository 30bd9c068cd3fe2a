package workflow

import (
	"sort"

	"gopkg.in/yaml.v3"

	errs "github.com/deploymenttheory/go-project-tracker/internal/common/errors"
	"github.com/deploymenttheory/go-project-tracker/internal/common/yamlutil"
)

// Parse reads a workflow status document and returns the normalized data.
// Three document shapes are supported and detected in order:
//
//   - nested: a 'workflows' mapping whose values hold status fields
//   - flat: a 'workflow_status' mapping of id to status value
//   - legacy: a 'workflow_status' sequence of item mappings
//
// Unknown shapes yield an empty item list rather than an error; only
// unparseable YAML fails.
func Parse(yamlContent string) (*WorkflowData, error) {
	root, err := yamlutil.Decode(yamlContent)
	if err != nil {
		return nil, &errs.ParseError{Detail: err.Error()}
	}

	var items []WorkflowItem
	switch {
	case yamlutil.IsMapping(yamlutil.MapGet(root, "workflows")):
		items = parseNestedFormat(root)
	case yamlutil.IsMapping(yamlutil.MapGet(root, "workflow_status")):
		items = parseFlatFormat(root)
	default:
		items = parseLegacyFormat(root)
	}

	return &WorkflowData{
		LastUpdated:   getStr(root, "last_updated"),
		Status:        getStr(root, "status"),
		StatusNote:    getStr(root, "status_note"),
		Project:       projectName(root),
		ProjectType:   getStr(root, "project_type"),
		SelectedTrack: getStr(root, "selected_track"),
		FieldType:     getStr(root, "field_type"),
		WorkflowPath:  getStr(root, "workflow_path"),
		Items:         items,
	}, nil
}

// parseNestedFormat handles the 'workflows' mapping with nested status
// fields. A raw status of 'complete' is replaced by the output file path
// when one is present, and 'not_started' becomes 'required'.
func parseNestedFormat(root *yaml.Node) []WorkflowItem {
	items := []WorkflowItem{}

	yamlutil.MapPairs(yamlutil.MapGet(root, "workflows"), func(id string, data *yaml.Node) {
		rawStatus, ok := yamlutil.ScalarString(yamlutil.MapGet(data, "status"))
		if !ok {
			rawStatus = "not_started"
		}
		outputFile, hasOutput := yamlutil.ScalarString(yamlutil.MapGet(data, "output_file"))

		var status string
		switch rawStatus {
		case "complete":
			if hasOutput {
				status = outputFile
			} else {
				status = "complete"
			}
		case "not_started":
			status = "required"
		default:
			status = rawStatus
		}

		noteNode := yamlutil.MapGet(data, "notes")
		if noteNode == nil {
			noteNode = yamlutil.MapGet(data, "note")
		}
		note, _ := yamlutil.ScalarString(noteNode)

		items = append(items, WorkflowItem{
			ID:         id,
			Phase:      inferPhase(id),
			Status:     status,
			Agent:      inferAgent(id),
			Command:    inferCommand(id),
			Note:       note,
			OutputFile: outputFile,
		})
	})

	sortItems(items)
	return items
}

// parseFlatFormat handles the 'workflow_status' mapping of id to status
// value. Values that look like file paths are also recorded as the item's
// output file.
func parseFlatFormat(root *yaml.Node) []WorkflowItem {
	items := []WorkflowItem{}

	yamlutil.MapPairs(yamlutil.MapGet(root, "workflow_status"), func(id string, value *yaml.Node) {
		status, _ := yamlutil.ScalarString(value)

		outputFile := ""
		if isFilePath(status) {
			outputFile = status
		}

		items = append(items, WorkflowItem{
			ID:         id,
			Phase:      inferPhase(id),
			Status:     status,
			Agent:      inferAgent(id),
			Command:    inferCommand(id),
			OutputFile: outputFile,
		})
	})

	sortItems(items)
	return items
}

// parseLegacyFormat handles the 'workflow_status' sequence of item mappings
// with explicit fields. Items keep their document order.
func parseLegacyFormat(root *yaml.Node) []WorkflowItem {
	items := []WorkflowItem{}

	for _, item := range yamlutil.SequenceItems(yamlutil.MapGet(root, "workflow_status")) {
		id, _ := yamlutil.ScalarString(yamlutil.MapGet(item, "id"))

		phase := inferPhase(id)
		if n, ok := yamlutil.ScalarInt(yamlutil.MapGet(item, "phase")); ok {
			phase = PhaseNumber(n)
		}

		status, _ := yamlutil.ScalarString(yamlutil.MapGet(item, "status"))
		agent, _ := yamlutil.ScalarString(yamlutil.MapGet(item, "agent"))
		command, _ := yamlutil.ScalarString(yamlutil.MapGet(item, "command"))
		note, _ := yamlutil.ScalarString(yamlutil.MapGet(item, "note"))

		items = append(items, WorkflowItem{
			ID:      id,
			Phase:   phase,
			Status:  status,
			Agent:   agent,
			Command: command,
			Note:    note,
		})
	}

	return items
}

// sortItems orders by phase, then id, keeping document order for ties.
func sortItems(items []WorkflowItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if c := items[i].Phase.Compare(items[j].Phase); c != 0 {
			return c < 0
		}
		return items[i].ID < items[j].ID
	})
}

func getStr(root *yaml.Node, key string) string {
	s, _ := yamlutil.ScalarString(yamlutil.MapGet(root, key))
	return s
}

// projectName falls back to the older 'project_name' key only when
// 'project' is absent entirely.
func projectName(root *yaml.Node) string {
	node := yamlutil.MapGet(root, "project")
	if node == nil {
		node = yamlutil.MapGet(root, "project_name")
	}
	s, _ := yamlutil.ScalarString(node)
	return s
}
