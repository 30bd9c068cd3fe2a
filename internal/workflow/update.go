package workflow

import (
	"regexp"
	"strings"

	errs "github.com/deploymenttheory/go-project-tracker/internal/common/errors"
	"github.com/deploymenttheory/go-project-tracker/internal/common/yamlutil"
)

// Update rewrites the status of one item directly in the document text,
// leaving untouched lines byte-for-byte intact (comments, ordering and
// indentation survive). The document shape picks the rewrite pattern, and
// only the first occurrence of the item is rewritten.
func Update(content, itemID, newStatus string) (string, error) {
	root, err := yamlutil.Decode(content)
	if err != nil {
		return "", &errs.ParseError{Detail: err.Error()}
	}

	switch {
	case yamlutil.IsMapping(yamlutil.MapGet(root, "workflows")):
		// Nested: "  itemId:" line followed by an indented "status:" line.
		pattern := `(?m)(^[ \t]*` + regexp.QuoteMeta(itemID) + `:\s*\n[ \t]*status:\s*)\S+`
		return replaceFirst(content, pattern, itemID, newStatus)

	case yamlutil.IsMapping(yamlutil.MapGet(root, "workflow_status")):
		// Flat: "  itemId: value" with the value possibly quoted. Values
		// holding '/' or ':' get double quotes so the result stays valid.
		quoted := newStatus
		if strings.Contains(newStatus, "/") || strings.Contains(newStatus, ":") {
			quoted = `"` + newStatus + `"`
		}
		pattern := `(?m)(^[ \t]*` + regexp.QuoteMeta(itemID) + `:\s*)["']?[^` + "\n" + `"']+["']?`
		return replaceFirst(content, pattern, itemID, quoted)

	default:
		// Legacy: "- id: itemId" entry with a "status:" field somewhere
		// after it. The new status is always double quoted.
		pattern := `(?m)(- id: ["']?` + regexp.QuoteMeta(itemID) + `["']?[\s\S]*?status:\s*)["']?[^\s"']+["']?`
		return replaceFirst(content, pattern, itemID, `"`+newStatus+`"`)
	}
}

// replaceFirst substitutes everything after the first capture group with
// newValue at the pattern's first match. A missing match reports the item
// as not found.
func replaceFirst(content, pattern, itemID, newValue string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", &errs.UpdateError{Detail: err.Error()}
	}

	loc := re.FindStringSubmatchIndex(content)
	if loc == nil {
		return "", &errs.ItemNotFoundError{ID: itemID}
	}

	return content[:loc[3]] + newValue + content[loc[1]:], nil
}
