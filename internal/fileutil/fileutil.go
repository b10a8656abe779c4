// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// backupTimestampFormat is the suffix layout for TimestampedBackupPath.
const backupTimestampFormat = "20060102_150405"

// ReadTextFile reads path and returns its content as a string.
// Content is decoded as UTF-8; when the bytes are not valid UTF-8 the
// file is re-decoded as Windows-1252 so legacy Western-encoded notes
// still convert instead of failing.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", err
	}
	if utf8.Valid(data) {
		return string(data), nil
	}

	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s as windows-1252: %w", path, err)
	}
	return string(decoded), nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CopyFile copies src to dst, overwriting dst if it exists.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src) // #nosec G304 -- paths come from directory scans
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

// TimestampedBackupPath derives a backup file name for path by inserting
// a timestamp before the extension.
//
// Example: "sections/note.tex" -> "sections/note_backup_20260823_154500.tex"
func TimestampedBackupPath(path string, t time.Time) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return base + "_backup_" + t.Format(backupTimestampFormat) + ext
}
