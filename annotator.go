package songlist

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/dateutil"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/fileutil"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/timestamp"
)

// defaultFileMode is used when the document mode cannot be read.
const defaultFileMode fs.FileMode = 0o644

// Change records a line the annotator rewrote.
type Change = timestamp.Change

// AnnotateReport summarizes one annotation run.
type AnnotateReport struct {
	Path       string // document path, empty for in-memory runs
	BackupPath string // empty when no backup was written
	Changed    bool   // annotated content differs from the input
	Written    bool   // document was replaced on disk
	DryRun     bool

	Sections  int
	Rewritten int
	Unchanged int
	Skipped   int
	Orphans   int // entries before the first section heading

	Changes  []Change
	Warnings []*LineError
}

// Annotator rewrites setlist entries with normalized times and deep links.
type Annotator struct {
	opts options
}

// NewAnnotator creates an Annotator. Without options it skips malformed
// entries, keeps a timestamped backup and logs nothing.
func NewAnnotator(opts ...Option) *Annotator {
	return &Annotator{opts: newOptions(opts)}
}

// Annotate rewrites content in memory. The returned text ends every line
// with "\n". On error nothing is returned but the error, which is a
// *LineError for document problems.
func (a *Annotator) Annotate(ctx context.Context, content string) (string, *AnnotateReport, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	res, err := timestamp.Annotate(timestamp.SplitLines(content), timestamp.Options{OnMalformed: a.opts.policy})
	if err != nil {
		return "", nil, err
	}

	out := timestamp.JoinLines(res.Lines)
	report := &AnnotateReport{
		Changed:   out != content,
		DryRun:    a.opts.dryRun,
		Sections:  res.Sections,
		Rewritten: res.Rewritten,
		Unchanged: res.Unchanged,
		Skipped:   res.Skipped,
		Orphans:   res.Orphans,
		Changes:   res.Changes,
		Warnings:  res.Warnings,
	}

	log := a.opts.logger
	for _, c := range res.Changes {
		log.Debug("entry rewritten", slog.Int("line", c.Line), slog.String("after", c.After))
	}
	for _, w := range res.Warnings {
		log.Warn("entry skipped", slog.Int("line", w.Line), slog.String("error", w.Err.Error()), slog.String("text", w.Text))
	}
	if res.Orphans > 0 {
		log.Warn("entries before first section heading have no stream link", slog.Int("count", res.Orphans))
	}

	return out, report, nil
}

// AnnotateFile annotates the document at path in place.
//
// The whole file is read and annotated before anything is written. When the
// annotation fails the document and its directory are left untouched. When
// the content changes, the original bytes are saved to a backup next to the
// document (unless disabled) and the document is replaced atomically.
func (a *Annotator) AnnotateFile(ctx context.Context, path string) (*AnnotateReport, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- document path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	out, report, err := a.Annotate(ctx, string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	report.Path = path

	log := a.opts.logger.With(slog.String("path", path))

	if a.opts.dryRun || !report.Changed {
		log.Info("document checked",
			slog.Bool("dryRun", a.opts.dryRun),
			slog.Bool("changed", report.Changed),
			slog.Int("rewritten", report.Rewritten),
			slog.Int("skipped", report.Skipped),
		)
		return report, nil
	}

	mode := defaultFileMode
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	}

	if a.opts.backup {
		backupPath, err := a.writeBackup(path, data, mode)
		if err != nil {
			return nil, err
		}
		report.BackupPath = backupPath
		log.Debug("backup written", slog.String("backup", backupPath))
	}

	if err := fileutil.WriteFileAtomic(path, []byte(out), mode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteDocument, err)
	}
	report.Written = true

	log.Info("document annotated",
		slog.Int("sections", report.Sections),
		slog.Int("rewritten", report.Rewritten),
		slog.Int("unchanged", report.Unchanged),
		slog.Int("skipped", report.Skipped),
	)
	return report, nil
}

// writeBackup saves the original bytes and returns the backup path.
func (a *Annotator) writeBackup(path string, data []byte, mode fs.FileMode) (string, error) {
	var stamp string
	if a.opts.stampFormat != "" {
		s, err := dateutil.FormatStamp(a.opts.stampFormat, a.opts.now())
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrBackup, err)
		}
		stamp = s
	}

	backupPath, err := fileutil.BackupPath(path, stamp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackup, err)
	}

	if err := fileutil.WriteFileAtomic(backupPath, data, mode); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackup, err)
	}
	return backupPath, nil
}
