// Package document reads and writes whole plain-text files.
//
// Files are UTF-8. A leading byte order mark is dropped on read and line
// endings are normalized to '\n'. Writes store the text exactly as given.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Ext is the extension used for titles and as the Save As default.
const Ext = ".txt"

// ErrInvalidUTF8 is returned by Read for files that are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("not valid UTF-8 text")

// Read returns the full contents of path.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidUTF8)
	}
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("%s: decode: %w", path, err)
	}
	return normalizeNewlines(string(out)), nil
}

// Write replaces the contents of path with text, creating the file when
// needed.
func Write(path, text string) error {
	return os.WriteFile(path, []byte(text), 0o644)
}

// TitleFromPath returns the display title for path: its base name without a
// trailing ".txt".
func TitleFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), Ext)
}

// WithDefaultExt appends ".txt" to path when its base name has no extension.
func WithDefaultExt(path string) string {
	if path == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + Ext
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
