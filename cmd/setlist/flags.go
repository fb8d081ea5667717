package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlag wraps flag parsing failures so they map to ExitUsage.
var ErrInvalidFlag = errors.New("invalid flag")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	quiet     bool
	verbose   bool
	logFormat string
}

// documentFlags holds the document location.
type documentFlags struct {
	path string
}

// backupFlags holds backup control flags.
type backupFlags struct {
	noBackup bool
	stamp    string
}

// annotateFlags holds all flags for the annotate command.
type annotateFlags struct {
	common      commonFlags
	document    documentFlags
	backup      backupFlags
	dryRun      bool
	onMalformed string
}

// previewFlags holds all flags for the preview command.
type previewFlags struct {
	common   commonFlags
	document documentFlags
	style    string
	output   string
	engine   string
	title    string
	lang     string
}

// configFlags holds flags for the config command.
type configFlags struct {
	common commonFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log every rewritten entry")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: text, json")
}

// addDocumentFlags adds the document path flag to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVarP(&f.path, "document", "d", "", "setlist markdown document (default README.md)")
}

// addBackupFlags adds backup flags to a FlagSet.
func addBackupFlags(fs *flag.FlagSet, f *backupFlags) {
	fs.BoolVar(&f.noBackup, "no-backup", false, "do not keep a copy of the original document")
	fs.StringVar(&f.stamp, "backup-stamp", "", "backup timestamp format, e.g. YYYYMMDD-HHmmss")
}

// newAnnotateFlagSet registers annotate flags on a new FlagSet.
func newAnnotateFlagSet(f *annotateFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("annotate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addBackupFlags(fs, &f.backup)
	fs.BoolVar(&f.dryRun, "dry-run", false, "report changes without writing")
	fs.StringVar(&f.onMalformed, "on-malformed", "", "malformed entries: skip, abort")

	fs.Usage = func() { printAnnotateUsage(usage) }
	return fs
}

// newPreviewFlagSet registers preview flags on a new FlagSet.
func newPreviewFlagSet(f *previewFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	fs.StringVar(&f.style, "style", "", "stylesheet path or embedded style name")
	fs.StringVarP(&f.output, "output", "o", "", "HTML output file (default preview.html)")
	fs.StringVar(&f.engine, "engine", "", "markdown engine: builtin, goldmark")
	fs.StringVar(&f.title, "title", "", "page title")
	fs.StringVar(&f.lang, "lang", "", "page lang attribute")

	fs.Usage = func() { printPreviewUsage(usage) }
	return fs
}

// newConfigFlagSet registers config command flags on a new FlagSet.
func newConfigFlagSet(f *configFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printConfigUsage(usage) }
	return fs
}

// parseFlagSet parses args and rejects positional arguments.
// --help returns flag.ErrHelp after printing usage.
func parseFlagSet(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrInvalidFlag, fs.Arg(0))
	}
	return nil
}
