package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	songlist "github.com/HamaguRe/txzxrx-tkmr-song-list"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/hints"
)

// runAnnotate rewrites the setlist document in place.
func runAnnotate(ctx context.Context, args []string, env *Environment) error {
	f := &annotateFlags{}
	fs := newAnnotateFlagSet(f, env.Stdout)
	if err := parseFlagSet(fs, args); err != nil {
		return err
	}

	s, err := loadSettings(f.common, env)
	if err != nil {
		return err
	}
	mergeAnnotateFlags(fs, f, s)
	if err := s.validate(); err != nil {
		return err
	}

	policy, err := songlist.ParseMalformedPolicy(s.cfg.Annotate.OnMalformed)
	if err != nil {
		return err
	}

	annotator := songlist.NewAnnotator(
		songlist.WithLogger(s.logger(env)),
		songlist.WithClock(env.Now),
		songlist.WithMalformedPolicy(policy),
		songlist.WithBackup(s.cfg.Backup.IsEnabled(), s.cfg.Backup.StampFormat()),
		songlist.WithDryRun(f.dryRun),
	)

	report, err := annotator.AnnotateFile(ctx, s.cfg.Document)
	if err != nil {
		return annotateHint(err, s.cfg.Document, policy)
	}

	if !f.common.quiet {
		printAnnotateReport(env, report)
	}
	return nil
}

// mergeAnnotateFlags applies explicitly set flags over the configuration.
func mergeAnnotateFlags(fs *flag.FlagSet, f *annotateFlags, s *settings) {
	override(&s.cfg.Document, f.document.path)
	override(&s.cfg.Annotate.OnMalformed, f.onMalformed)
	if f.backup.noBackup {
		disabled := false
		s.cfg.Backup.Enabled = &disabled
	}
	if fs.Changed("backup-stamp") {
		stamp := f.backup.stamp
		s.cfg.Backup.Stamp = &stamp
	}
}

// annotateHint attaches the hint matching an annotation failure.
func annotateHint(err error, document string, policy songlist.MalformedPolicy) error {
	switch {
	case errors.Is(err, songlist.ErrMissingBaseURL):
		return withHint(err, hints.ForMissingBaseURL())
	case errors.Is(err, songlist.ErrMalformedTime), errors.Is(err, songlist.ErrMalformedEntry):
		return withHint(err, hints.ForMalformedEntry(policy == songlist.MalformedAbort))
	case errors.Is(err, os.ErrNotExist):
		return withHint(err, hints.ForDocumentNotFound(document))
	default:
		return err
	}
}

// printAnnotateReport writes the human summary of a run to stdout.
func printAnnotateReport(env *Environment, r *songlist.AnnotateReport) {
	counts := fmt.Sprintf("%d rewritten, %d unchanged, %d skipped", r.Rewritten, r.Unchanged, r.Skipped)

	switch {
	case r.DryRun && r.Changed:
		fmt.Fprintf(env.Stdout, "Dry run: %s would change (%s)\n", r.Path, counts)
		for _, c := range r.Changes {
			fmt.Fprintf(env.Stdout, "  %d: %s\n", c.Line, c.After)
		}
	case !r.Changed:
		fmt.Fprintf(env.Stdout, "✓ %s is up to date (%s)\n", r.Path, counts)
	case r.BackupPath != "":
		fmt.Fprintf(env.Stdout, "✓ Annotated %s (%s), backup: %s\n", r.Path, counts, r.BackupPath)
	default:
		fmt.Fprintf(env.Stdout, "✓ Annotated %s (%s)\n", r.Path, counts)
	}
}
