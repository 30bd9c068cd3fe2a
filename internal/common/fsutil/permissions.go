// fsutil/permissions.go
package fsutil

import (
	"fmt"
	"os"

	commonerrors "github.com/deploymenttheory/go-project-tracker/internal/common/errors"
)

// Permission constants for files and directories this application writes
const (
	PermStandard  os.FileMode = 0644
	PermDirectory os.FileMode = 0755
)

// MakeReadOnly makes a file or directory read-only
func MakeReadOnly(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %v", commonerrors.ErrFilePermissionError, err)
	}

	mode := info.Mode()
	// Remove all write permissions
	newMode := mode &^ os.FileMode(0222)

	if err := os.Chmod(path, newMode); err != nil {
		return fmt.Errorf("%w: %v", commonerrors.ErrFilePermissionError, err)
	}
	return nil
}
