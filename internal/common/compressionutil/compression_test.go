package compression

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	commonerrors "github.com/deploymenttheory/go-project-tracker/internal/common/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		expected Format
	}{
		{"gzip", GZIP},
		{"gz", GZIP},
		{"GZIP", GZIP},
		{"bzip2", BZIP2},
		{"bz2", BZIP2},
		{"xz", XZ},
		{"XZ", XZ},
	}

	for _, test := range tests {
		actual, err := ParseFormat(test.name)
		if err != nil {
			t.Fatalf("ParseFormat(%s) failed: %v", test.name, err)
		}
		if actual != test.expected {
			t.Errorf("ParseFormat(%s): expected %s, got %s", test.name, test.expected, actual)
		}
	}
}

func TestParseFormatUnsupported(t *testing.T) {
	for _, name := range []string{"zip", "7z", "", "tar"} {
		_, err := ParseFormat(name)
		if err == nil {
			t.Errorf("Expected error for format %q, got nil", name)
			continue
		}
		if !errors.Is(err, commonerrors.ErrUnsupportedCompression) {
			t.Errorf("Expected ErrUnsupportedCompression for %q, got %v", name, err)
		}
	}
}

func TestExtension(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{GZIP, ".gz"},
		{BZIP2, ".bz2"},
		{XZ, ".xz"},
		{Format("zip"), ""},
	}

	for _, test := range tests {
		if actual := test.format.Extension(); actual != test.expected {
			t.Errorf("Extension(%s): expected %q, got %q", test.format, test.expected, actual)
		}
	}
}

func TestCompressExtractRoundTrip(t *testing.T) {
	content := []byte("workflow_status:\n  brainstorm: docs/brainstorm.md\n  prd: required\n")

	for _, format := range []Format{GZIP, BZIP2, XZ} {
		dir := t.TempDir()
		sourcePath := filepath.Join(dir, "status.yaml")
		compressedPath := sourcePath + format.Extension()
		extractedPath := filepath.Join(dir, "extracted.yaml")

		if err := os.WriteFile(sourcePath, content, 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		if err := CompressFile(sourcePath, compressedPath, format); err != nil {
			t.Fatalf("CompressFile(%s) failed: %v", format, err)
		}

		if err := ExtractFile(compressedPath, extractedPath, format); err != nil {
			t.Fatalf("ExtractFile(%s) failed: %v", format, err)
		}

		extracted, err := os.ReadFile(extractedPath)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}

		if string(extracted) != string(content) {
			t.Errorf("%s round trip changed content: %q", format, extracted)
		}
	}
}

func TestCompressFileUnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "status.yaml")

	if err := os.WriteFile(sourcePath, []byte("a: b\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	err := CompressFile(sourcePath, sourcePath+".zip", Format("zip"))
	if err == nil {
		t.Fatal("Expected error for unsupported format, got nil")
	}
	if !errors.Is(err, commonerrors.ErrUnsupportedCompression) {
		t.Errorf("Expected ErrUnsupportedCompression, got %v", err)
	}
}

func TestCompressFileMissingSource(t *testing.T) {
	dir := t.TempDir()

	err := CompressFile(filepath.Join(dir, "missing.yaml"), filepath.Join(dir, "out.gz"), GZIP)
	if err == nil {
		t.Fatal("Expected error for missing source, got nil")
	}
}

func TestExtractFileCorruptInput(t *testing.T) {
	dir := t.TempDir()
	sourcePath := filepath.Join(dir, "broken.gz")

	if err := os.WriteFile(sourcePath, []byte("not gzip data"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	err := ExtractFile(sourcePath, filepath.Join(dir, "out.yaml"), GZIP)
	if err == nil {
		t.Fatal("Expected error for corrupt input, got nil")
	}
	if !errors.Is(err, commonerrors.ErrDecompressionFailed) {
		t.Errorf("Expected ErrDecompressionFailed, got %v", err)
	}
}
