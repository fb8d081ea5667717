// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrEmptyPath      = errors.New("path cannot be empty")
	ErrStampSeparator = errors.New("backup stamp contains path separator or null byte")
)

// backupSuffix marks copies of a document taken before it is rewritten.
const backupSuffix = "-backup"

// ReadOptional reads path, treating a missing file as empty content.
// Other read failures are returned as-is.
func ReadOptional(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// WriteFileAtomic replaces path with data. The content is written to a temp
// file in the same directory and renamed over the target, so readers never
// observe a partial document.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	if path == "" {
		return ErrEmptyPath
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmpFile, err := os.CreateTemp(dir, "."+base+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, writeErr := tmpFile.Write(data); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}

// BackupPath returns the sibling path used to keep a copy of docPath.
// An empty stamp yields "<stem>-backup<ext>".
//
// Examples:
//   - ("README.md", "") -> "README-backup.md"
//   - ("docs/README.md", "20250316-210509") -> "docs/README-backup-20250316-210509.md"
//   - ("NOTES", "") -> "NOTES-backup"
func BackupPath(docPath, stamp string) (string, error) {
	if docPath == "" {
		return "", ErrEmptyPath
	}
	if strings.ContainsAny(stamp, "/\\\x00") {
		return "", ErrStampSeparator
	}

	ext := filepath.Ext(docPath)
	stem := strings.TrimSuffix(docPath, ext)

	name := stem + backupSuffix
	if stamp != "" {
		name += "-" + stamp
	}
	return name + ext, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "default" -> false (embedded style name)
//   - "./custom.css" -> true (relative path)
//   - "assets/css/style.css" -> true (contains separator)
//   - "/absolute/path.css" -> true (absolute)
//   - "C:\windows\path.css" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
