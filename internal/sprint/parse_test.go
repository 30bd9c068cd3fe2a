package sprint

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	errs "github.com/deploymenttheory/go-project-tracker/internal/common/errors"
)

const sprintYAML = `
project: Demo Project
project_key: DMO
development_status:
  epic-2: backlog
  epic-1: in-progress
  1-story-one: ready-for-dev
  1-story-two: review
  2-story-alpha: backlog
  retrospective: done
`

func findEpic(t *testing.T, epics []Epic, id string) Epic {
	t.Helper()
	for _, epic := range epics {
		if epic.ID == id {
			return epic
		}
	}
	t.Fatalf("Epic %q not found in %d epics", id, len(epics))
	return Epic{}
}

func TestParseSprintStatus(t *testing.T) {
	data, err := Parse(sprintYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if data.Project != "Demo Project" {
		t.Errorf("Expected project %q, got %q", "Demo Project", data.Project)
	}
	if data.ProjectKey != "DMO" {
		t.Errorf("Expected project key %q, got %q", "DMO", data.ProjectKey)
	}
	if len(data.Epics) != 2 {
		t.Fatalf("Expected 2 epics, got %d", len(data.Epics))
	}

	// epic-1 sorts first regardless of document order
	epic1 := data.Epics[0]
	if epic1.ID != "epic-1" {
		t.Errorf("Expected first epic %q, got %q", "epic-1", epic1.ID)
	}
	if epic1.Name != "Epic 1" {
		t.Errorf("Expected epic name %q, got %q", "Epic 1", epic1.Name)
	}
	if epic1.Status != "in-progress" {
		t.Errorf("Expected epic status %q, got %q", "in-progress", epic1.Status)
	}
	if len(epic1.Stories) != 2 {
		t.Errorf("Expected 2 stories in epic-1, got %d", len(epic1.Stories))
	}

	epic2 := data.Epics[1]
	if epic2.ID != "epic-2" {
		t.Errorf("Expected second epic %q, got %q", "epic-2", epic2.ID)
	}
	if len(epic2.Stories) != 1 {
		t.Errorf("Expected 1 story in epic-2, got %d", len(epic2.Stories))
	}
}

func TestStoriesAssignedToCorrectEpics(t *testing.T) {
	data, err := Parse(sprintYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	epic1 := findEpic(t, data.Epics, "epic-1")
	ids := make(map[string]bool)
	for _, story := range epic1.Stories {
		ids[story.ID] = true
	}
	if !ids["1-story-one"] || !ids["1-story-two"] {
		t.Errorf("Expected both epic-1 stories, got %v", epic1.Stories)
	}

	epic2 := findEpic(t, data.Epics, "epic-2")
	if len(epic2.Stories) != 1 || epic2.Stories[0].ID != "2-story-alpha" {
		t.Errorf("Expected 2-story-alpha in epic-2, got %v", epic2.Stories)
	}
}

func TestStoriesKeepDocumentOrder(t *testing.T) {
	data, err := Parse(sprintYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	epic1 := findEpic(t, data.Epics, "epic-1")
	if epic1.Stories[0].ID != "1-story-one" || epic1.Stories[1].ID != "1-story-two" {
		t.Errorf("Expected stories in document order, got %v", epic1.Stories)
	}
}

func TestRetrospectiveExcluded(t *testing.T) {
	data, err := Parse(sprintYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for _, epic := range data.Epics {
		for _, story := range epic.Stories {
			if strings.Contains(story.ID, "retrospective") {
				t.Errorf("Retrospective entry assigned as story: %q", story.ID)
			}
		}
	}
}

func TestParseMissingDevelopmentStatus(t *testing.T) {
	yaml := `
project: Empty Project
project_key: EMP
`
	data, err := Parse(yaml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if data.Project != "Empty Project" {
		t.Errorf("Expected project %q, got %q", "Empty Project", data.Project)
	}
	if len(data.Epics) != 0 {
		t.Errorf("Expected no epics, got %d", len(data.Epics))
	}
}

func TestParseEmptyDevelopmentStatus(t *testing.T) {
	yaml := `
project: Empty Sprint
project_key: EMP
development_status: {}
`
	data, err := Parse(yaml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(data.Epics) != 0 {
		t.Errorf("Expected no epics, got %d", len(data.Epics))
	}
}

func TestParseMissingProjectDefaults(t *testing.T) {
	yaml := `
development_status:
  epic-1: backlog
`
	data, err := Parse(yaml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if data.Project != "Unknown" {
		t.Errorf("Expected default project %q, got %q", "Unknown", data.Project)
	}
	if data.ProjectKey != "" {
		t.Errorf("Expected empty project key, got %q", data.ProjectKey)
	}
}

func TestEpicSorting(t *testing.T) {
	yaml := `
project: Sort Test
project_key: SRT
development_status:
  epic-10: backlog
  epic-2: backlog
  epic-1: backlog
  epic-5: backlog
`
	data, err := Parse(yaml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"epic-1", "epic-2", "epic-5", "epic-10"}
	if len(data.Epics) != len(want) {
		t.Fatalf("Expected %d epics, got %d", len(want), len(data.Epics))
	}
	for i, id := range want {
		if data.Epics[i].ID != id {
			t.Errorf("Position %d: expected %q, got %q", i, id, data.Epics[i].ID)
		}
	}
}

func TestStoryEpicIDReference(t *testing.T) {
	yaml := `
project: Reference Test
project_key: REF
development_status:
  epic-3: in-progress
  3-my-story: backlog
`
	data, err := Parse(yaml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if data.Epics[0].Stories[0].EpicID != "epic-3" {
		t.Errorf("Expected story epic id %q, got %q", "epic-3", data.Epics[0].Stories[0].EpicID)
	}
}

func TestOrphanStoriesDropped(t *testing.T) {
	yaml := `
project: Orphan Test
project_key: ORP
development_status:
  99-orphan-story: backlog
`
	data, err := Parse(yaml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(data.Epics) != 0 {
		t.Errorf("Expected orphan story dropped, got epics %v", data.Epics)
	}
}

func TestMalformedEpicIDsHandled(t *testing.T) {
	yaml := `
project: Edge Case Project
project_key: ECP
development_status:
  epic-: in-progress
  -1-story: backlog
  epic-abc: done
  "": empty-key
`
	data, err := Parse(yaml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if data.Project != "Edge Case Project" {
		t.Errorf("Expected project preserved, got %q", data.Project)
	}
	if len(data.Epics) != 0 {
		t.Errorf("Expected no epics from malformed ids, got %d", len(data.Epics))
	}
}

func TestNullValuesInDocument(t *testing.T) {
	yaml := `
project: Null Test
project_key: ~
development_status:
  epic-1: ~
  1-story: ~
`
	data, err := Parse(yaml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if data.Project != "Null Test" {
		t.Errorf("Expected project %q, got %q", "Null Test", data.Project)
	}
	if data.ProjectKey != "" {
		t.Errorf("Expected empty project key for null, got %q", data.ProjectKey)
	}
	if len(data.Epics) != 1 {
		t.Fatalf("Expected 1 epic, got %d", len(data.Epics))
	}
	if data.Epics[0].Status != "" {
		t.Errorf("Expected empty epic status for null, got %q", data.Epics[0].Status)
	}
	if len(data.Epics[0].Stories) != 1 || data.Epics[0].Stories[0].Status != "" {
		t.Errorf("Expected one story with empty status, got %v", data.Epics[0].Stories)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse("invalid: yaml: content: [")
	if err == nil {
		t.Fatal("Expected parse error for invalid YAML")
	}
	if !errors.Is(err, errs.ErrDocumentParseError) {
		t.Errorf("Expected parse error sentinel, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "Failed to parse YAML: ") {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	data, err := Parse("")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if data.Project != "Unknown" {
		t.Errorf("Expected default project %q, got %q", "Unknown", data.Project)
	}
	if data.Epics == nil || len(data.Epics) != 0 {
		t.Errorf("Expected non-nil empty epic list, got %v", data.Epics)
	}
}

func TestStoryWithLeadingWhitespace(t *testing.T) {
	yaml := `
project: Whitespace Test
project_key: WS
development_status:
    epic-1: backlog
    1-story: backlog
`
	data, err := Parse(yaml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(data.Epics) != 1 {
		t.Errorf("Expected 1 epic, got %d", len(data.Epics))
	}
}

func TestLargeEpicNumbers(t *testing.T) {
	yaml := `
project: Large Numbers
project_key: LRG
development_status:
  epic-999: backlog
  999-story: in-progress
`
	data, err := Parse(yaml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if data.Epics[0].ID != "epic-999" {
		t.Errorf("Expected epic id %q, got %q", "epic-999", data.Epics[0].ID)
	}
	if data.Epics[0].Stories[0].EpicID != "epic-999" {
		t.Errorf("Expected story epic id %q, got %q", "epic-999", data.Epics[0].Stories[0].EpicID)
	}
}

func TestLiteralNumberPrefixBinding(t *testing.T) {
	// '1-' binds to epic-1, not to epic-01; the digits match literally
	yaml := `
project: Prefix Test
project_key: PFX
development_status:
  epic-01: backlog
  1-stray-story: backlog
  01-bound-story: backlog
`
	data, err := Parse(yaml)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(data.Epics) != 1 {
		t.Fatalf("Expected 1 epic, got %d", len(data.Epics))
	}
	if len(data.Epics[0].Stories) != 1 || data.Epics[0].Stories[0].ID != "01-bound-story" {
		t.Errorf("Expected only the literal prefix match, got %v", data.Epics[0].Stories)
	}
}

func TestParseLargeSprint(t *testing.T) {
	var b strings.Builder
	b.WriteString("project: Large Sprint\nproject_key: LRG\ndevelopment_status:\n")
	for epic := 1; epic <= 50; epic++ {
		fmt.Fprintf(&b, "  epic-%d: backlog\n", epic)
		for story := 1; story <= 20; story++ {
			fmt.Fprintf(&b, "  %d-story-%d: backlog\n", epic, story)
		}
	}

	data, err := Parse(b.String())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(data.Epics) != 50 {
		t.Fatalf("Expected 50 epics, got %d", len(data.Epics))
	}

	total := 0
	for _, epic := range data.Epics {
		total += len(epic.Stories)
	}
	if total != 1000 {
		t.Errorf("Expected 1000 stories, got %d", total)
	}
}

func TestEpicPatternEdgeCases(t *testing.T) {
	matches := []string{"epic-0", "epic-1", "epic-99", "epic-999", "epic-12345"}
	for _, s := range matches {
		if !epicIDPattern.MatchString(s) {
			t.Errorf("Expected %q to match the epic pattern", s)
		}
	}

	rejects := []string{"epic-", "not-an-epic", "EPIC-1", "epic--1", "epic-1-extra", "prefix-epic-1"}
	for _, s := range rejects {
		if epicIDPattern.MatchString(s) {
			t.Errorf("Expected %q to be rejected by the epic pattern", s)
		}
	}
}

func TestStoryPatternEdgeCases(t *testing.T) {
	matches := []string{"1-x", "1-story", "99-another-story", "123-long-story-name", "0-zero-prefix"}
	for _, s := range matches {
		if !storyPrefixPattern.MatchString(s) {
			t.Errorf("Expected %q to match the story pattern", s)
		}
	}

	rejects := []string{"-1-negative", "abc-story", "story-no-prefix"}
	for _, s := range rejects {
		if storyPrefixPattern.MatchString(s) {
			t.Errorf("Expected %q to be rejected by the story pattern", s)
		}
	}
}

func TestSprintDataJSONShape(t *testing.T) {
	data, err := Parse(sprintYAML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	out, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	s := string(out)
	for _, key := range []string{`"project"`, `"projectKey"`, `"epics"`, `"stories"`, `"epicId"`, `"name"`} {
		if !strings.Contains(s, key) {
			t.Errorf("Expected key %s in %s", key, s)
		}
	}

	empty, err := Parse("")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out, err = json.Marshal(empty)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(out), `"epics":[]`) {
		t.Errorf("Expected empty epic list in JSON, got %s", out)
	}
}
