package sprint

import "encoding/json"

// StoryStatus is the recognized story state vocabulary. Documents may hold
// arbitrary status strings; NormalizeStoryStatus maps anything unrecognized
// to StoryStatusUnknown.
type StoryStatus string

const (
	StoryStatusBacklog     StoryStatus = "backlog"
	StoryStatusDrafted     StoryStatus = "drafted"
	StoryStatusReadyForDev StoryStatus = "ready-for-dev"
	StoryStatusInProgress  StoryStatus = "in-progress"
	StoryStatusReview      StoryStatus = "review"
	StoryStatusDone        StoryStatus = "done"
	StoryStatusOptional    StoryStatus = "optional"
	StoryStatusCompleted   StoryStatus = "completed"
	StoryStatusUnknown     StoryStatus = "unknown"
)

// NormalizeStoryStatus maps a raw status string onto the known vocabulary.
func NormalizeStoryStatus(value string) StoryStatus {
	switch StoryStatus(value) {
	case StoryStatusBacklog, StoryStatusDrafted, StoryStatusReadyForDev,
		StoryStatusInProgress, StoryStatusReview, StoryStatusDone,
		StoryStatusOptional, StoryStatusCompleted:
		return StoryStatus(value)
	}
	return StoryStatusUnknown
}

func (s StoryStatus) String() string {
	return string(s)
}

// UnmarshalJSON accepts any string and normalizes it, so unrecognized
// states decode as unknown instead of failing.
func (s *StoryStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NormalizeStoryStatus(raw)
	return nil
}

// Story is one tracked story belonging to an epic.
type Story struct {
	ID     string `json:"id" yaml:"id" toml:"id" plist:"id"`
	Status string `json:"status" yaml:"status" toml:"status" plist:"status"`
	EpicID string `json:"epicId" yaml:"epic_id" toml:"epic_id" plist:"epicId"`
}

// Epic groups the stories sharing its number prefix.
type Epic struct {
	ID      string  `json:"id" yaml:"id" toml:"id" plist:"id"`
	Name    string  `json:"name" yaml:"name" toml:"name" plist:"name"`
	Status  string  `json:"status" yaml:"status" toml:"status" plist:"status"`
	Stories []Story `json:"stories" yaml:"stories" toml:"stories" plist:"stories"`
}

// SprintData is a parsed sprint status document.
type SprintData struct {
	Project    string `json:"project" yaml:"project" toml:"project" plist:"project"`
	ProjectKey string `json:"projectKey" yaml:"project_key" toml:"project_key" plist:"projectKey"`
	Epics      []Epic `json:"epics" yaml:"epics" toml:"epics" plist:"epics"`
}
