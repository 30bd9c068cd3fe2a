// Package jsonutil provides utilities for encoding JSON documents
package jsonutil

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/deploymenttheory/go-project-tracker/internal/common/errors"
	"github.com/deploymenttheory/go-project-tracker/internal/common/fsutil"
)

// MarshalPretty serializes a value as indented JSON
func MarshalPretty(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrExportEncodeFailed, err.Error())
	}

	return data, nil
}

// WriteJSONFile writes a value to a JSON file with indentation, creating the
// parent directory when needed
func WriteJSONFile(path string, v interface{}) error {
	data, err := MarshalPretty(v)
	if err != nil {
		return err
	}

	if err := fsutil.CreateDirIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrFileWriteError, err.Error())
	}

	return fsutil.WriteFile(path, append(data, '\n'), fsutil.PermStandard)
}
