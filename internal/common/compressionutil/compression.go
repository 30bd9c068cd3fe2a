// Package compression provides utilities for compressing and extracting snapshot files
package compression

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/ulikunitz/xz"

	commonerrors "github.com/deploymenttheory/go-project-tracker/internal/common/errors"
)

// Format represents a supported compression format
type Format string

const (
	// GZIP format
	GZIP Format = "gzip"

	// BZIP2 format
	BZIP2 Format = "bzip2"

	// XZ format
	XZ Format = "xz"
)

// ParseFormat parses a format name, accepting common aliases
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "gzip", "gz":
		return GZIP, nil
	case "bzip2", "bz2":
		return BZIP2, nil
	case "xz":
		return XZ, nil
	default:
		return "", fmt.Errorf("%w: '%s'", commonerrors.ErrUnsupportedCompression, name)
	}
}

// Extension returns the file extension for the format, including the leading dot
func (f Format) Extension() string {
	switch f {
	case GZIP:
		return ".gz"
	case BZIP2:
		return ".bz2"
	case XZ:
		return ".xz"
	default:
		return ""
	}
}

// CompressFile compresses sourcePath into destPath using the given format
func CompressFile(sourcePath, destPath string, format Format) error {
	sourceFile, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer sourceFile.Close()

	destFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destFile.Close()

	writer, err := newWriter(destFile, format)
	if err != nil {
		return err
	}

	if _, err := io.Copy(writer, sourceFile); err != nil {
		writer.Close()
		return fmt.Errorf("%w: %v", commonerrors.ErrCompressionFailed, err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("%w: %v", commonerrors.ErrCompressionFailed, err)
	}

	return nil
}

// ExtractFile decompresses sourcePath into destPath using the given format
func ExtractFile(sourcePath, destPath string, format Format) error {
	sourceFile, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer sourceFile.Close()

	reader, err := newReader(sourceFile, format)
	if err != nil {
		return err
	}

	destFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, reader); err != nil {
		return fmt.Errorf("%w: %v", commonerrors.ErrDecompressionFailed, err)
	}

	return nil
}

func newWriter(w io.Writer, format Format) (io.WriteCloser, error) {
	switch format {
	case GZIP:
		return gzip.NewWriter(w), nil
	case BZIP2:
		writer, err := bzip2.NewWriter(w, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", commonerrors.ErrCompressionFailed, err)
		}
		return writer, nil
	case XZ:
		writer, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", commonerrors.ErrCompressionFailed, err)
		}
		return writer, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", commonerrors.ErrUnsupportedCompression, format)
	}
}

func newReader(r io.Reader, format Format) (io.Reader, error) {
	switch format {
	case GZIP:
		reader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", commonerrors.ErrDecompressionFailed, err)
		}
		return reader, nil
	case BZIP2:
		reader, err := bzip2.NewReader(r, nil)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", commonerrors.ErrDecompressionFailed, err)
		}
		return reader, nil
	case XZ:
		reader, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", commonerrors.ErrDecompressionFailed, err)
		}
		return reader, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", commonerrors.ErrUnsupportedCompression, format)
	}
}
