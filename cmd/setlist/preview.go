package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	songlist "github.com/HamaguRe/txzxrx-tkmr-song-list"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/hints"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/preview"
)

// runPreview renders the setlist document to a standalone HTML page.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	f := &previewFlags{}
	fs := newPreviewFlagSet(f, env.Stdout)
	if err := parseFlagSet(fs, args); err != nil {
		return err
	}

	s, err := loadSettings(f.common, env)
	if err != nil {
		return err
	}
	mergePreviewFlags(fs, f, s)
	if err := s.validate(); err != nil {
		return withHint(err, engineHint(err))
	}

	previewer, err := songlist.NewPreviewer(
		songlist.WithLogger(s.logger(env)),
		songlist.WithEngine(s.cfg.Preview.Engine),
		songlist.WithTitle(s.cfg.Preview.Title),
		songlist.WithLang(s.cfg.Preview.Lang),
	)
	if err != nil {
		return withHint(err, engineHint(err))
	}

	report, err := previewer.RenderFile(ctx, s.cfg.Document, s.cfg.Preview.Style, s.cfg.Preview.Output)
	if err != nil {
		return previewHint(err, s.cfg.Document, env)
	}

	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "✓ Preview generated: %s\n", report.Output)
		if !report.StyleFound && report.Style != "" {
			fmt.Fprintf(env.Stdout, "  (stylesheet %s not found, page is unstyled)\n", report.Style)
		}
	}
	return nil
}

// mergePreviewFlags applies explicitly set flags over the configuration.
// --style "" is honoured so a page can be rendered without any stylesheet.
func mergePreviewFlags(fs *flag.FlagSet, f *previewFlags, s *settings) {
	override(&s.cfg.Document, f.document.path)
	override(&s.cfg.Preview.Output, f.output)
	override(&s.cfg.Preview.Engine, f.engine)
	override(&s.cfg.Preview.Title, f.title)
	override(&s.cfg.Preview.Lang, f.lang)
	if fs.Changed("style") {
		s.cfg.Preview.Style = f.style
	}
}

// engineHint lists the engines when err names an unknown one.
func engineHint(err error) string {
	if errors.Is(err, preview.ErrUnknownEngine) {
		return hints.ForEngine(preview.Engines)
	}
	return ""
}

// previewHint attaches the hint matching a preview failure.
func previewHint(err error, document string, env *Environment) error {
	switch {
	case errors.Is(err, songlist.ErrStyleNotFound):
		var names []string
		if env.StyleLister != nil {
			names = env.StyleLister.StyleNames()
		}
		return withHint(err, hints.ForStyleNotFound(names))
	case errors.Is(err, songlist.ErrWritePreview):
		return withHint(err, hints.ForOutputDirectory())
	case errors.Is(err, os.ErrNotExist):
		return withHint(err, hints.ForDocumentNotFound(document))
	default:
		return err
	}
}
