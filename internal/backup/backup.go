// Package backup creates compressed snapshots of status documents before mutation
package backup

import (
	"fmt"
	"path/filepath"
	"time"

	compression "github.com/deploymenttheory/go-project-tracker/internal/common/compressionutil"
	commonerrors "github.com/deploymenttheory/go-project-tracker/internal/common/errors"
	"github.com/deploymenttheory/go-project-tracker/internal/common/fsutil"
)

// Snapshot copies the document at path into dir as a timestamped compressed
// file and returns the snapshot path. The source file is left untouched.
func Snapshot(path, dir string, format compression.Format) (string, error) {
	if !fsutil.FileExists(path) {
		return "", fmt.Errorf("%w: %s", commonerrors.ErrFileNotFound, path)
	}

	if err := fsutil.CreateDirIfNotExists(dir); err != nil {
		return "", fmt.Errorf("%w: %v", commonerrors.ErrBackupFailed, err)
	}

	dest := snapshotPath(path, dir, format, time.Now().UTC())

	if err := compression.CompressFile(path, dest, format); err != nil {
		return "", fmt.Errorf("%w: %v", commonerrors.ErrBackupFailed, err)
	}

	// Snapshots are immutable records
	if err := fsutil.MakeReadOnly(dest); err != nil {
		return "", fmt.Errorf("%w: %v", commonerrors.ErrBackupFailed, err)
	}

	return dest, nil
}

// snapshotPath builds a timestamped destination name, appending a counter
// when snapshots of the same document land in the same second.
func snapshotPath(path, dir string, format compression.Format, now time.Time) string {
	base := fsutil.GetFileNameWithoutExt(path)
	ext := fsutil.GetExtension(path)
	stamp := now.Format("20060102-150405")

	dest := filepath.Join(dir, fmt.Sprintf("%s-%s%s%s", base, stamp, ext, format.Extension()))
	for counter := 1; fsutil.FileExists(dest); counter++ {
		dest = filepath.Join(dir, fmt.Sprintf("%s-%s-%d%s%s", base, stamp, counter, ext, format.Extension()))
	}

	return dest
}
