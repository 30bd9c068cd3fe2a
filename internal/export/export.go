// Package export renders parsed status documents in alternate formats
package export

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-project-tracker/internal/common/errors"
	"github.com/deploymenttheory/go-project-tracker/internal/common/fsutil"
	"github.com/deploymenttheory/go-project-tracker/internal/common/jsonutil"
	"github.com/deploymenttheory/go-project-tracker/internal/common/plistutil"
)

// Format represents a supported export format
type Format string

const (
	// JSON format
	JSON Format = "json"

	// YAML format
	YAML Format = "yaml"

	// TOML format
	TOML Format = "toml"

	// PLIST format (XML property list)
	PLIST Format = "plist"
)

// ParseFormat parses a format name, accepting common aliases
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	case "plist", "xml":
		return PLIST, nil
	default:
		return "", fmt.Errorf("%w: '%s'", errors.ErrUnsupportedExportFormat, name)
	}
}

// Marshal renders v in the given format
func Marshal(v interface{}, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return jsonutil.MarshalPretty(v)
	case YAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errors.ErrExportEncodeFailed, err.Error())
		}
		return data, nil
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return nil, fmt.Errorf("%w: %s", errors.ErrExportEncodeFailed, err.Error())
		}
		return buf.Bytes(), nil
	case PLIST:
		return plistutil.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: '%s'", errors.ErrUnsupportedExportFormat, format)
	}
}

// WriteFile renders v in the given format and writes it to path, creating
// the parent directory when needed
func WriteFile(path string, v interface{}, format Format) error {
	switch format {
	case JSON:
		return jsonutil.WriteJSONFile(path, v)
	case PLIST:
		return plistutil.WritePlistFile(path, v)
	}

	data, err := Marshal(v, format)
	if err != nil {
		return err
	}

	if err := fsutil.CreateDirIfNotExists(filepath.Dir(path)); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrFileWriteError, err.Error())
	}

	return fsutil.WriteFile(path, data, fsutil.PermStandard)
}
