package typf

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Boundary-validation limits per spec §6. A caller that needs different
// limits validates its own inputs before handing them to this package;
// these are the defaults enforced at the points typf itself accepts
// caller-supplied paths and text.
const (
	// MaxFontFileSize is the largest font file SanitizePath-adjacent
	// loaders accept.
	MaxFontFileSize = 50 * 1024 * 1024

	// MaxTextLength is the largest input text, in runes, a Shaper accepts.
	MaxTextLength = 10_000
)

// ErrPathOutsideBase is returned by SanitizePath when a path resolves
// outside a supplied base directory.
var ErrPathOutsideBase = errors.New("typf: path resolves outside base directory")

// SanitizePath validates and canonicalizes a caller-supplied font path per
// spec §6's "input validation at boundary" / Testable Property 9: reject
// any path containing ".." or "~" outright, then resolve it to an absolute,
// cleaned path. When baseDir is non-empty, the resolved path must fall
// under it (also resolved to absolute/cleaned form) or the call fails with
// ErrPathOutsideBase.
//
// Unlike the reference implementation this does not require the path to
// exist on disk (filepath.Abs/Clean is purely lexical) — existence is the
// loader's concern, not the sanitizer's.
func SanitizePath(path string, baseDir string) (string, error) {
	if strings.Contains(path, "..") || strings.Contains(path, "~") {
		return "", fmt.Errorf("typf: path %q contains invalid components (.. or ~)", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("typf: cannot resolve path %q: %w", path, err)
	}
	abs = filepath.Clean(abs)

	if baseDir == "" {
		return abs, nil
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("typf: cannot resolve base directory %q: %w", baseDir, err)
	}
	absBase = filepath.Clean(absBase)

	rel, err := filepath.Rel(absBase, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", ErrPathOutsideBase
	}
	return abs, nil
}

// ValidateFontSize rejects font data larger than MaxFontFileSize, per
// spec §6's "font sizes over 50 MB rejected".
func ValidateFontSize(size int) error {
	if size > MaxFontFileSize {
		return fmt.Errorf("typf: font data is %d bytes, exceeds %d byte limit", size, MaxFontFileSize)
	}
	return nil
}

// ValidateTextInput rejects text longer than MaxTextLength runes, per
// spec §6's "text over 10 000 code units rejected".
func ValidateTextInput(text string) error {
	if n := len([]rune(text)); n > MaxTextLength {
		return fmt.Errorf("typf: input text is %d code points, exceeds %d limit", n, MaxTextLength)
	}
	return nil
}
