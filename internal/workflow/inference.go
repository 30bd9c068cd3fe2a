package workflow

import "strings"

// Phase assignments for the known workflow ids, by methodology stage.
var phaseByID = map[string]int{
	// Phase 0 - Discovery
	"brainstorm":         0,
	"brainstorm-project": 0,
	"research":           0,
	"product-brief":      0,
	// Phase 1 - Planning
	"prd":              1,
	"validate-prd":     1,
	"ux-design":        1,
	"create-ux-design": 1,
	// Phase 2 - Solutioning
	"architecture":             2,
	"create-architecture":      2,
	"epics-stories":            2,
	"create-epics-and-stories": 2,
	"test-design":              2,
	"implementation-readiness": 2,
	// Phase 3 - Implementation
	"sprint-planning": 3,
}

// Agent assignments for the known workflow ids.
var agentByID = map[string]string{
	"brainstorm":               "analyst",
	"brainstorm-project":       "analyst",
	"research":                 "analyst",
	"product-brief":            "analyst",
	"prd":                      "pm",
	"validate-prd":             "pm",
	"ux-design":                "ux-designer",
	"create-ux-design":         "ux-designer",
	"architecture":             "architect",
	"create-architecture":      "architect",
	"epics-stories":            "pm",
	"create-epics-and-stories": "pm",
	"test-design":              "tea",
	"implementation-readiness": "architect",
	"sprint-planning":          "sm",
}

func inferPhase(workflowID string) Phase {
	if n, ok := phaseByID[workflowID]; ok {
		return PhaseNumber(n)
	}
	return DefaultPhase()
}

func inferAgent(workflowID string) string {
	if agent, ok := agentByID[workflowID]; ok {
		return agent
	}
	return "pm"
}

func inferCommand(workflowID string) string {
	return workflowID
}

// isFilePath reports whether a status value looks like a file path rather
// than a status keyword.
func isFilePath(value string) bool {
	return strings.Contains(value, "/") ||
		strings.HasSuffix(value, ".md") ||
		strings.HasSuffix(value, ".yaml") ||
		strings.HasSuffix(value, ".yml") ||
		strings.HasSuffix(value, ".json") ||
		strings.HasSuffix(value, ".txt")
}
