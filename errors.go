package songlist

import (
	"errors"

	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/assets"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/preview"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/timestamp"
)

// Sentinel errors for file operations.
var (
	ErrReadDocument  = errors.New("failed to read document")
	ErrWriteDocument = errors.New("failed to write document")
	ErrBackup        = errors.New("failed to back up document")
	ErrReadStyle     = errors.New("failed to read stylesheet")
	ErrWritePreview  = errors.New("failed to write preview")
)

// Document format errors. Annotation failures are *LineError values
// wrapping one of these.
var (
	ErrMissingBaseURL = timestamp.ErrMissingBaseURL
	ErrMalformedTime  = timestamp.ErrMalformedTime
	ErrMalformedEntry = timestamp.ErrMalformedEntry
	ErrInvalidPolicy  = timestamp.ErrInvalidPolicy
)

// Preview errors.
var (
	ErrUnknownEngine    = preview.ErrUnknownEngine
	ErrHTMLConversion   = preview.ErrHTMLConversion
	ErrPageRender       = preview.ErrPageRender
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetName = assets.ErrInvalidAssetName
)

// LineError ties an annotation failure or warning to a 1-based line.
type LineError = timestamp.LineError
