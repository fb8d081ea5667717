package songlist

import (
	"log/slog"
	"time"

	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/assets"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/dateutil"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/logger"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/preview"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/timestamp"
)

// MalformedPolicy decides what happens to entries whose time cannot be read.
type MalformedPolicy = timestamp.MalformedPolicy

// Malformed-entry policies.
const (
	MalformedSkip  = timestamp.MalformedSkip
	MalformedAbort = timestamp.MalformedAbort
)

// ParseMalformedPolicy converts "skip" or "abort" (case-insensitive) to a policy.
func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	return timestamp.ParseMalformedPolicy(s)
}

// Defaults for the preview page.
const (
	DefaultTitle = "鷹森ツヅル歌枠一覧"
	DefaultLang  = "ja"
)

// Option configures an Annotator or a Previewer. Options that do not apply
// to the service being built are ignored.
type Option func(*options)

// options holds settings shared by both services.
type options struct {
	logger *slog.Logger
	now    func() time.Time

	// annotate
	policy      MalformedPolicy
	backup      bool
	stampFormat string
	dryRun      bool

	// preview
	engine string
	title  string
	lang   string
	loader assets.AssetLoader
}

func newOptions(opts []Option) options {
	o := options{
		logger:      logger.Discard(),
		now:         time.Now,
		policy:      MalformedSkip,
		backup:      true,
		stampFormat: dateutil.DefaultStampFormat,
		engine:      preview.EngineBuiltin,
		title:       DefaultTitle,
		lang:        DefaultLang,
		loader:      assets.NewEmbeddedLoader(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger for progress and warnings.
// A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = logger.Discard()
		}
		o.logger = l
	}
}

// WithClock sets the time source used for backup names.
// Panics if now is nil (programmer error).
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("songlist: WithClock requires a non-nil function")
	}
	return func(o *options) {
		o.now = now
	}
}

// WithMalformedPolicy sets how entries with unreadable times are handled.
func WithMalformedPolicy(p MalformedPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithBackup enables or disables the copy taken before rewriting.
// stampFormat uses YYYY, MM, DD, HH, mm, ss tokens; "" names the backup
// "<stem>-backup<ext>" without a timestamp.
func WithBackup(enabled bool, stampFormat string) Option {
	return func(o *options) {
		o.backup = enabled
		o.stampFormat = stampFormat
	}
}

// WithDryRun annotates and reports without writing any file.
func WithDryRun(dryRun bool) Option {
	return func(o *options) {
		o.dryRun = dryRun
	}
}

// WithEngine selects the markdown engine: "builtin" or "goldmark".
func WithEngine(name string) Option {
	return func(o *options) {
		o.engine = name
	}
}

// WithTitle sets the preview page title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithLang sets the preview page lang attribute.
func WithLang(lang string) Option {
	return func(o *options) {
		o.lang = lang
	}
}
