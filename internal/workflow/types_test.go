package workflow

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestPhaseCompare(t *testing.T) {
	cases := []struct {
		a, b Phase
		want int
	}{
		{PhaseNumber(0), PhaseNumber(1), -1},
		{PhaseNumber(1), PhaseNumber(0), 1},
		{PhaseNumber(2), PhaseNumber(2), 0},
		{PhaseNumber(-1), PhaseNumber(0), -1},
		{PhaseNumber(3), PhasePrerequisite(), -1},
		{PhasePrerequisite(), PhaseNumber(3), 1},
		{PhasePrerequisite(), PhasePrerequisite(), 0},
	}

	for _, tc := range cases {
		if got := tc.a.Compare(tc.b); got != tc.want {
			t.Errorf("Compare(%v, %v) = %d, expected %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestPhaseSortOrder(t *testing.T) {
	phases := []Phase{PhasePrerequisite(), PhaseNumber(3), PhaseNumber(0), PhaseNumber(1)}
	sort.Slice(phases, func(i, j int) bool {
		return phases[i].Compare(phases[j]) < 0
	})

	want := []Phase{PhaseNumber(0), PhaseNumber(1), PhaseNumber(3), PhasePrerequisite()}
	for i := range want {
		if phases[i] != want[i] {
			t.Errorf("Position %d: expected %v, got %v", i, want[i], phases[i])
		}
	}
}

func TestPhaseString(t *testing.T) {
	if got := PhaseNumber(2).String(); got != "2" {
		t.Errorf("Expected %q, got %q", "2", got)
	}
	if got := PhasePrerequisite().String(); got != "prerequisite" {
		t.Errorf("Expected %q, got %q", "prerequisite", got)
	}
}

func TestPhaseJSONRoundTrip(t *testing.T) {
	out, err := json.Marshal(PhaseNumber(2))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != "2" {
		t.Errorf("Expected bare integer, got %s", out)
	}

	out, err = json.Marshal(PhasePrerequisite())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(out) != `"prerequisite"` {
		t.Errorf("Expected quoted marker, got %s", out)
	}

	var p Phase
	if err := json.Unmarshal([]byte("3"), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p != PhaseNumber(3) {
		t.Errorf("Expected phase 3, got %v", p)
	}

	if err := json.Unmarshal([]byte(`"prerequisite"`), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p != PhasePrerequisite() {
		t.Errorf("Expected prerequisite phase, got %v", p)
	}
}

func TestPhaseJSONRejectsUnknownValues(t *testing.T) {
	var p Phase
	if err := json.Unmarshal([]byte(`"bogus"`), &p); err == nil {
		t.Error("Expected error for unknown phase string")
	}
	if err := json.Unmarshal([]byte("true"), &p); err == nil {
		t.Error("Expected error for boolean phase value")
	}
}

func TestPhaseYAMLRoundTrip(t *testing.T) {
	out, err := yaml.Marshal(PhaseNumber(2))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if strings.TrimSpace(string(out)) != "2" {
		t.Errorf("Expected bare integer, got %q", out)
	}

	var p Phase
	if err := yaml.Unmarshal([]byte("prerequisite"), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p != PhasePrerequisite() {
		t.Errorf("Expected prerequisite phase, got %v", p)
	}

	if err := yaml.Unmarshal([]byte("0"), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if p != PhaseNumber(0) {
		t.Errorf("Expected phase 0, got %v", p)
	}

	if err := yaml.Unmarshal([]byte("nonsense"), &p); err == nil {
		t.Error("Expected error for unknown phase value")
	}
}

func TestWorkflowItemJSONShape(t *testing.T) {
	full := WorkflowItem{
		ID:         "prd",
		Phase:      PhaseNumber(1),
		Status:     "complete",
		Agent:      "pm",
		Command:    "prd",
		Note:       "reviewed",
		OutputFile: "docs/prd.md",
	}
	out, err := json.Marshal(full)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, key := range []string{`"id"`, `"phase"`, `"status"`, `"agent"`, `"command"`, `"note"`, `"outputFile"`} {
		if !strings.Contains(string(out), key) {
			t.Errorf("Expected key %s in %s", key, out)
		}
	}

	bare := WorkflowItem{ID: "prd", Phase: PhaseNumber(1), Status: "required"}
	out, err = json.Marshal(bare)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, key := range []string{`"agent"`, `"command"`, `"note"`, `"outputFile"`} {
		if strings.Contains(string(out), key) {
			t.Errorf("Expected key %s omitted from %s", key, out)
		}
	}
}

func TestWorkflowDataJSONShape(t *testing.T) {
	data := WorkflowData{
		LastUpdated: "2025-12-01",
		Status:      "active",
		Project:     "Demo",
		Items:       []WorkflowItem{},
	}
	out, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	s := string(out)
	for _, key := range []string{`"lastUpdated"`, `"status"`, `"project"`, `"projectType"`, `"selectedTrack"`, `"fieldType"`, `"workflowPath"`} {
		if !strings.Contains(s, key) {
			t.Errorf("Expected key %s in %s", key, s)
		}
	}
	if strings.Contains(s, `"statusNote"`) {
		t.Errorf("Expected empty status note omitted from %s", s)
	}
	if !strings.Contains(s, `"items":[]`) {
		t.Errorf("Expected empty item list in %s", s)
	}
}
