package main

import (
	"errors"
	"os"

	songlist "github.com/HamaguRe/txzxrx-tkmr-song-list"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/config"
)

// Exit codes for the setlist CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Command completed
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // Document missing, unreadable, or not writable
	ExitDocument = 4 // Document content cannot be annotated
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Document format errors (exit 4)
	if errors.Is(err, songlist.ErrMissingBaseURL) ||
		errors.Is(err, songlist.ErrMalformedTime) ||
		errors.Is(err, songlist.ErrMalformedEntry) {
		return ExitDocument
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, songlist.ErrReadDocument) ||
		errors.Is(err, songlist.ErrWriteDocument) ||
		errors.Is(err, songlist.ErrBackup) ||
		errors.Is(err, songlist.ErrReadStyle) ||
		errors.Is(err, songlist.ErrWritePreview) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, songlist.ErrInvalidPolicy) ||
		errors.Is(err, songlist.ErrUnknownEngine) ||
		errors.Is(err, songlist.ErrStyleNotFound) ||
		errors.Is(err, songlist.ErrInvalidAssetName) {
		return ExitUsage
	}

	return ExitGeneral
}
