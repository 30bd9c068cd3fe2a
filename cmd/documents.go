package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/deploymenttheory/go-project-tracker/internal/backup"
	"github.com/deploymenttheory/go-project-tracker/internal/common/cryptoutil"
	errs "github.com/deploymenttheory/go-project-tracker/internal/common/errors"
	"github.com/deploymenttheory/go-project-tracker/internal/common/fsutil"
	"github.com/deploymenttheory/go-project-tracker/internal/config"
	"github.com/deploymenttheory/go-project-tracker/internal/logger"
	"github.com/deploymenttheory/go-project-tracker/internal/workspace"
)

// resolveDocumentPath picks the explicit flag path when given, otherwise the
// configured document location inside the workspace root.
func resolveDocumentPath(flagPath string, configured func() (string, error)) (string, error) {
	if flagPath != "" {
		return fsutil.ExpandTilde(flagPath)
	}
	return configured()
}

// loadDocument reads a status document into memory, refusing paths that
// escape a configured workspace root.
func loadDocument(path string) (string, error) {
	if root := config.Instance.Workspace.Root; root != "" {
		if _, ok := workspace.ValidatedPath(path, root); !ok {
			return "", fmt.Errorf("%w: %s", errs.ErrPathOutsideWorkspace, path)
		}
	}

	content, err := fsutil.ReadFileString(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", errs.ErrFileReadError, err.Error())
	}
	return content, nil
}

// writeDocument persists a mutated document. A compressed snapshot is taken
// first when backups are enabled, and content digests of the old and new
// text are logged so every mutation stays auditable.
func writeDocument(path, oldContent, newContent string) error {
	algorithm := cryptoutil.HashAlgorithm(config.Instance.Audit.HashAlgorithm)
	hasher, err := cryptoutil.NewHasher(algorithm)
	if err != nil {
		return err
	}

	if config.Instance.Backup.Enabled {
		format, err := config.GetBackupFormat()
		if err != nil {
			return err
		}

		snapshot, err := backup.Snapshot(path, backupDir(path), format)
		if err != nil {
			return err
		}
		snapshotDigest, err := hasher.HashFile(snapshot)
		if err != nil {
			return err
		}
		logger.LogInfo("Backup snapshot written", map[string]interface{}{
			"snapshot": snapshot,
			"digest":   snapshotDigest,
		})
	}

	digestBefore, err := hasher.Hash([]byte(oldContent))
	if err != nil {
		return err
	}
	digestAfter, err := hasher.Hash([]byte(newContent))
	if err != nil {
		return err
	}

	if err := fsutil.WriteFileString(path, newContent, fsutil.PermStandard); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrFileWriteError, err.Error())
	}

	logger.LogInfo("Status document updated", map[string]interface{}{
		"file":          path,
		"algorithm":     string(algorithm),
		"digest_before": digestBefore,
		"digest_after":  digestAfter,
	})
	return nil
}

// backupDir resolves the configured backup directory against the document's
// directory when it is relative.
func backupDir(docPath string) string {
	dir := config.Instance.Backup.Dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(filepath.Dir(docPath), dir)
	}
	return dir
}
