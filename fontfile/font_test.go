package fontfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fontlaborg/typf"
)

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("not a font"))
	if err == nil {
		t.Fatal("expected an error parsing non-font bytes")
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	_, err := Parse(nil)
	if err == nil {
		t.Fatal("expected an error parsing empty data")
	}
}

func TestParseFileRejectsDotDotPath(t *testing.T) {
	_, err := ParseFile("../etc/passwd", "")
	var loadErr *typf.FontLoadError
	if !errors.As(err, &loadErr) || loadErr.Kind != typf.FontLoadPathRejected {
		t.Fatalf("expected FontLoadPathRejected, got %v", err)
	}
}

func TestParseFileRejectsPathOutsideBase(t *testing.T) {
	base := t.TempDir()
	outside := filepath.Join(t.TempDir(), "a.ttf")
	_, err := ParseFile(outside, base)
	var loadErr *typf.FontLoadError
	if !errors.As(err, &loadErr) || loadErr.Kind != typf.FontLoadPathRejected {
		t.Fatalf("expected FontLoadPathRejected, got %v", err)
	}
}

func TestParseFileReportsMissingFile(t *testing.T) {
	base := t.TempDir()
	_, err := ParseFile(filepath.Join(base, "missing.ttf"), base)
	var loadErr *typf.FontLoadError
	if !errors.As(err, &loadErr) || loadErr.Kind != typf.FontLoadFileNotFound {
		t.Fatalf("expected FontLoadFileNotFound, got %v", err)
	}
}

func TestParseFileRejectsOversizedFont(t *testing.T) {
	base := t.TempDir()
	path := filepath.Join(base, "huge.ttf")
	if err := os.WriteFile(path, make([]byte, typf.MaxFontFileSize+1), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := ParseFile(path, base)
	var loadErr *typf.FontLoadError
	if !errors.As(err, &loadErr) || loadErr.Kind != typf.FontLoadTooLarge {
		t.Fatalf("expected FontLoadTooLarge, got %v", err)
	}
}
