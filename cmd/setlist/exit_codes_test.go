package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	songlist "github.com/HamaguRe/txzxrx-tkmr-song-list"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/config"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/timestamp"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error classification
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "unknown error", err: errors.New("boom"), want: ExitGeneral},

		// Document
		{
			name: "missing base URL as line error",
			err:  fmt.Errorf("README.md: %w", &timestamp.LineError{Line: 3, Text: "## x", Err: timestamp.ErrMissingBaseURL}),
			want: ExitDocument,
		},
		{name: "malformed time", err: fmt.Errorf("%w: \"5:1x\"", songlist.ErrMalformedTime), want: ExitDocument},
		{name: "malformed entry", err: songlist.ErrMalformedEntry, want: ExitDocument},

		// I/O
		{name: "read document", err: fmt.Errorf("%w: %w", songlist.ErrReadDocument, os.ErrNotExist), want: ExitIO},
		{name: "write document", err: fmt.Errorf("%w: disk full", songlist.ErrWriteDocument), want: ExitIO},
		{name: "backup", err: songlist.ErrBackup, want: ExitIO},
		{name: "write preview", err: songlist.ErrWritePreview, want: ExitIO},
		{name: "permission", err: os.ErrPermission, want: ExitIO},

		// Usage
		{name: "invalid flag", err: fmt.Errorf("%w: unknown flag --x", ErrInvalidFlag), want: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "invalid value", err: config.ErrInvalidValue, want: ExitUsage},
		{name: "unknown engine", err: songlist.ErrUnknownEngine, want: ExitUsage},
		{name: "style not found", err: songlist.ErrStyleNotFound, want: ExitUsage},
		{name: "unsupported shell", err: ErrUnsupportedShell, want: ExitUsage},
		{name: "hinted error keeps class", err: withHint(config.ErrConfigNotFound, "\n  hint: x"), want: ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitDocument}
	seen := make(map[int]bool)
	for _, c := range codes {
		if seen[c] {
			t.Errorf("duplicate exit code %d", c)
		}
		seen[c] = true
		if c < 0 || c >= 126 {
			t.Errorf("exit code %d outside 0-125", c)
		}
	}
}
