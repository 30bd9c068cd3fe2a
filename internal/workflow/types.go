package workflow

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Phase is either a numbered methodology phase (0-3 in practice, any integer
// accepted) or the prerequisite marker. Prerequisite orders after every
// numbered phase. The zero value is phase 0; use DefaultPhase for the
// fallback used when nothing is known about an item.
type Phase struct {
	Number       int
	Prerequisite bool
}

// PhaseNumber returns a numbered phase.
func PhaseNumber(n int) Phase {
	return Phase{Number: n}
}

// PhasePrerequisite returns the prerequisite phase marker.
func PhasePrerequisite() Phase {
	return Phase{Prerequisite: true}
}

// DefaultPhase is the phase assumed for unrecognized workflow ids.
func DefaultPhase() Phase {
	return PhaseNumber(1)
}

// Compare orders phases: numbers ascending, prerequisite after all numbers.
func (p Phase) Compare(o Phase) int {
	if p.Prerequisite || o.Prerequisite {
		switch {
		case p.Prerequisite && o.Prerequisite:
			return 0
		case p.Prerequisite:
			return 1
		default:
			return -1
		}
	}
	switch {
	case p.Number < o.Number:
		return -1
	case p.Number > o.Number:
		return 1
	}
	return 0
}

func (p Phase) String() string {
	if p.Prerequisite {
		return "prerequisite"
	}
	return strconv.Itoa(p.Number)
}

// MarshalJSON encodes numbered phases as bare integers and the prerequisite
// marker as the string "prerequisite".
func (p Phase) MarshalJSON() ([]byte, error) {
	if p.Prerequisite {
		return json.Marshal("prerequisite")
	}
	return json.Marshal(p.Number)
}

func (p *Phase) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = PhaseNumber(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "prerequisite" {
			*p = PhasePrerequisite()
			return nil
		}
		return fmt.Errorf("invalid phase %q", s)
	}
	return fmt.Errorf("invalid phase value %s", string(data))
}

func (p Phase) MarshalYAML() (interface{}, error) {
	if p.Prerequisite {
		return "prerequisite", nil
	}
	return p.Number, nil
}

func (p *Phase) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		*p = PhaseNumber(n)
		return nil
	}
	var s string
	if err := value.Decode(&s); err == nil && s == "prerequisite" {
		*p = PhasePrerequisite()
		return nil
	}
	return fmt.Errorf("invalid phase %q", value.Value)
}

// MarshalTOML satisfies the TOML encoder's marshaler interface.
func (p Phase) MarshalTOML() ([]byte, error) {
	if p.Prerequisite {
		return []byte(`"prerequisite"`), nil
	}
	return []byte(strconv.Itoa(p.Number)), nil
}

// MarshalPlist satisfies the plist encoder's marshaler interface.
func (p Phase) MarshalPlist() (interface{}, error) {
	if p.Prerequisite {
		return "prerequisite", nil
	}
	return p.Number, nil
}

// WorkflowItem is one tracked workflow entry of a status document. Agent,
// Command, Note and OutputFile are optional; empty means absent.
type WorkflowItem struct {
	ID         string `json:"id" yaml:"id" toml:"id" plist:"id"`
	Phase      Phase  `json:"phase" yaml:"phase" toml:"phase" plist:"phase"`
	Status     string `json:"status" yaml:"status" toml:"status" plist:"status"`
	Agent      string `json:"agent,omitempty" yaml:"agent,omitempty" toml:"agent,omitempty" plist:"agent,omitempty"`
	Command    string `json:"command,omitempty" yaml:"command,omitempty" toml:"command,omitempty" plist:"command,omitempty"`
	Note       string `json:"note,omitempty" yaml:"note,omitempty" toml:"note,omitempty" plist:"note,omitempty"`
	OutputFile string `json:"outputFile,omitempty" yaml:"output_file,omitempty" toml:"output_file,omitempty" plist:"outputFile,omitempty"`
}

// WorkflowData is a parsed status document: top-level metadata plus the
// normalized item list.
type WorkflowData struct {
	LastUpdated   string         `json:"lastUpdated" yaml:"last_updated" toml:"last_updated" plist:"lastUpdated"`
	Status        string         `json:"status" yaml:"status" toml:"status" plist:"status"`
	StatusNote    string         `json:"statusNote,omitempty" yaml:"status_note,omitempty" toml:"status_note,omitempty" plist:"statusNote,omitempty"`
	Project       string         `json:"project" yaml:"project" toml:"project" plist:"project"`
	ProjectType   string         `json:"projectType" yaml:"project_type" toml:"project_type" plist:"projectType"`
	SelectedTrack string         `json:"selectedTrack" yaml:"selected_track" toml:"selected_track" plist:"selectedTrack"`
	FieldType     string         `json:"fieldType" yaml:"field_type" toml:"field_type" plist:"fieldType"`
	WorkflowPath  string         `json:"workflowPath" yaml:"workflow_path" toml:"workflow_path" plist:"workflowPath"`
	Items         []WorkflowItem `json:"items" yaml:"items" toml:"items" plist:"items"`
}
