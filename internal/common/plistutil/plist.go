// Package plistutil provides utilities for encoding property list documents
package plistutil

import (
	"fmt"
	"path/filepath"

	"howett.net/plist"

	"github.com/deploymenttheory/go-project-tracker/internal/common/errors"
	"github.com/deploymenttheory/go-project-tracker/internal/common/fsutil"
)

// Marshal serializes a value as an indented XML property list
func Marshal(v interface{}) ([]byte, error) {
	data, err := plist.MarshalIndent(v, plist.XMLFormat, "\t")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrExportEncodeFailed, err.Error())
	}

	return data, nil
}

// WritePlistFile writes a value to an XML property list file, creating the
// parent directory when needed
func WritePlistFile(path string, v interface{}) error {
	data, err := Marshal(v)
	if err != nil {
		return err
	}

	if err := fsutil.CreateDirIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrFileWriteError, err.Error())
	}

	return fsutil.WriteFile(path, append(data, '\n'), fsutil.PermStandard)
}
