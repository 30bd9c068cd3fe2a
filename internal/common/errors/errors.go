package errors

import (
	"errors"
)

var (
	// Document Errors
	ErrDocumentParseError = errors.New("error parsing status document")
	ErrItemNotFound       = errors.New("workflow item not found")
	ErrStoryNotFound      = errors.New("story not found")
	ErrUpdateFailed       = errors.New("status update failed")

	// Workspace Errors
	ErrWorkspaceNotSet      = errors.New("workspace root is not configured")
	ErrPathOutsideWorkspace = errors.New("path is outside the workspace root")

	// File & Directory Errors
	ErrFileNotFound        = errors.New("file not found")
	ErrFilePermissionError = errors.New("error setting file permissions")
	ErrFileReadError       = errors.New("error reading file")
	ErrFileWriteError      = errors.New("error writing to file")

	// Export Errors
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
	ErrExportEncodeFailed      = errors.New("failed to encode export document")

	// Backup Errors
	ErrBackupFailed           = errors.New("backup failed")
	ErrUnsupportedCompression = errors.New("unsupported compression format")
	ErrCompressionFailed      = errors.New("compression failed")
	ErrDecompressionFailed    = errors.New("decompression failed")

	// Hash Errors
	ErrInvalidHasher = errors.New("invalid hasher")

	// Configuration Errors
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrConfigParseError = errors.New("error parsing configuration")
)
