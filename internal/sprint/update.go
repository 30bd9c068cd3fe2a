package sprint

import (
	"regexp"

	errs "github.com/deploymenttheory/go-project-tracker/internal/common/errors"
)

// Update rewrites the status of one story directly in the document text.
// Only the first occurrence of the story is rewritten; everything else
// stays byte-for-byte intact. The new status is written bare, so callers
// pass plain keywords.
func Update(content, storyID, newStatus string) (string, error) {
	pattern := `(?m)(^\s*` + regexp.QuoteMeta(storyID) + `:\s*)\S+`
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", &errs.UpdateError{Detail: err.Error()}
	}

	loc := re.FindStringSubmatchIndex(content)
	if loc == nil {
		return "", &errs.StoryNotFoundError{ID: storyID}
	}

	return content[:loc[3]] + newStatus + content[loc[1]:], nil
}
