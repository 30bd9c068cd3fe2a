package sprint

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	errs "github.com/deploymenttheory/go-project-tracker/internal/common/errors"
	"github.com/deploymenttheory/go-project-tracker/internal/common/yamlutil"
)

var (
	epicIDPattern      = regexp.MustCompile(`^epic-(\d+)$`)
	storyPrefixPattern = regexp.MustCompile(`^(\d+)-`)
)

// Parse reads a sprint status document and groups the entries of its
// 'development_status' mapping into epics and their stories. Epic entries
// are keys of the form 'epic-N'; every other key with a leading 'N-' prefix
// is a story of epic N. Retrospective entries and stories without a
// matching epic are dropped. Epics come back sorted by number.
func Parse(yamlContent string) (*SprintData, error) {
	root, err := yamlutil.Decode(yamlContent)
	if err != nil {
		return nil, &errs.ParseError{Detail: err.Error()}
	}

	project := "Unknown"
	if s, ok := yamlutil.ScalarString(yamlutil.MapGet(root, "project")); ok {
		project = s
	}
	projectKey, _ := yamlutil.ScalarString(yamlutil.MapGet(root, "project_key"))

	devStatus := yamlutil.MapGet(root, "development_status")

	// First pass: collect epics, keyed by their literal number text so a
	// story prefix like '01-' only binds to 'epic-01'.
	epicsByNum := map[string]*Epic{}
	yamlutil.MapPairs(devStatus, func(key string, value *yaml.Node) {
		m := epicIDPattern.FindStringSubmatch(key)
		if m == nil {
			return
		}
		status, _ := yamlutil.ScalarString(value)
		epicsByNum[m[1]] = &Epic{
			ID:      key,
			Name:    "Epic " + m[1],
			Status:  status,
			Stories: []Story{},
		}
	})

	// Second pass: assign stories to their epics in document order.
	yamlutil.MapPairs(devStatus, func(key string, value *yaml.Node) {
		if epicIDPattern.MatchString(key) || strings.Contains(key, "retrospective") {
			return
		}
		m := storyPrefixPattern.FindStringSubmatch(key)
		if m == nil {
			return
		}
		epic, ok := epicsByNum[m[1]]
		if !ok {
			return
		}
		status, _ := yamlutil.ScalarString(value)
		epic.Stories = append(epic.Stories, Story{
			ID:     key,
			Status: status,
			EpicID: "epic-" + m[1],
		})
	})

	epics := make([]Epic, 0, len(epicsByNum))
	for _, epic := range epicsByNum {
		epics = append(epics, *epic)
	}
	sort.Slice(epics, func(i, j int) bool {
		return epicNumber(epics[i].ID) < epicNumber(epics[j].ID)
	})

	return &SprintData{
		Project:    project,
		ProjectKey: projectKey,
		Epics:      epics,
	}, nil
}

func epicNumber(id string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(id, "epic-", ""))
	if err != nil {
		return 0
	}
	return n
}
