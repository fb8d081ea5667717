// Package config loads and validates setlist configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/dateutil"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/fileutil"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/preview"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/timestamp"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultName is the config name looked up when none is given.
const DefaultName = "setlist"

// userConfigSubdir is the directory under os.UserConfigDir holding configs.
const userConfigSubdir = "setlist"

// Field length limits.
const (
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxTitleLength = 200  // Page title
	MaxLangLength  = 35   // BCP 47 tag
	MaxStampLength = dateutil.MaxDateFormatLength
)

// Default values shared by DefaultConfig and the CLI help text.
const (
	DefaultDocument  = "README.md"
	DefaultOutput    = "preview.html"
	DefaultStyle     = "assets/css/style.css"
	DefaultTitle     = "鷹森ツヅル歌枠一覧"
	DefaultLang      = "ja"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds all configuration for annotating and previewing a setlist.
type Config struct {
	Document string         `yaml:"document"`
	Backup   BackupConfig   `yaml:"backup"`
	Annotate AnnotateConfig `yaml:"annotate"`
	Preview  PreviewConfig  `yaml:"preview"`
	Log      LogConfig      `yaml:"log"`
}

// BackupConfig defines the copy taken before the document is rewritten.
// Pointer fields distinguish "unset" from an explicit false or empty value.
type BackupConfig struct {
	Enabled *bool   `yaml:"enabled"`
	Stamp   *string `yaml:"stamp"` // "" = no timestamp in backup name
}

// IsEnabled reports whether a backup is taken (default true).
func (b BackupConfig) IsEnabled() bool {
	return b.Enabled == nil || *b.Enabled
}

// StampFormat returns the timestamp format for backup names.
func (b BackupConfig) StampFormat() string {
	if b.Stamp == nil {
		return dateutil.DefaultStampFormat
	}
	return *b.Stamp
}

// AnnotateConfig defines rewrite behaviour.
type AnnotateConfig struct {
	OnMalformed string `yaml:"onMalformed"` // "skip" or "abort"
}

// PreviewConfig defines the HTML preview.
type PreviewConfig struct {
	Output string `yaml:"output"`
	Style  string `yaml:"style"`  // path, or embedded style name
	Engine string `yaml:"engine"` // "builtin" or "goldmark"
	Title  string `yaml:"title"`
	Lang   string `yaml:"lang"`
}

// LogConfig defines diagnostic output.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	enabled := true
	stamp := dateutil.DefaultStampFormat
	return &Config{
		Document: DefaultDocument,
		Backup:   BackupConfig{Enabled: &enabled, Stamp: &stamp},
		Annotate: AnnotateConfig{OnMalformed: timestamp.MalformedSkip.String()},
		Preview: PreviewConfig{
			Output: DefaultOutput,
			Style:  DefaultStyle,
			Engine: preview.EngineBuiltin,
			Title:  DefaultTitle,
			Lang:   DefaultLang,
		},
		Log: LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// ApplyDefaults fills every unset field from DefaultConfig.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()

	setDefault(&c.Document, d.Document)
	if c.Backup.Enabled == nil {
		c.Backup.Enabled = d.Backup.Enabled
	}
	if c.Backup.Stamp == nil {
		c.Backup.Stamp = d.Backup.Stamp
	}
	setDefault(&c.Annotate.OnMalformed, d.Annotate.OnMalformed)
	setDefault(&c.Preview.Output, d.Preview.Output)
	setDefault(&c.Preview.Style, d.Preview.Style)
	setDefault(&c.Preview.Engine, d.Preview.Engine)
	setDefault(&c.Preview.Title, d.Preview.Title)
	setDefault(&c.Preview.Lang, d.Preview.Lang)
	setDefault(&c.Log.Level, d.Log.Level)
	setDefault(&c.Log.Format, d.Log.Format)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

// Validate checks field lengths and enumerated values.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("document", c.Document, MaxPathLength); err != nil {
		return err
	}
	if c.Backup.Stamp != nil && *c.Backup.Stamp != "" {
		if err := validateFieldLength("backup.stamp", *c.Backup.Stamp, MaxStampLength); err != nil {
			return err
		}
		if err := dateutil.ValidateStampFormat(*c.Backup.Stamp); err != nil {
			return fmt.Errorf("%w: backup.stamp: %v", ErrInvalidValue, err)
		}
	}

	if _, err := timestamp.ParseMalformedPolicy(c.Annotate.OnMalformed); err != nil {
		return fmt.Errorf("%w: annotate.onMalformed: %v", ErrInvalidValue, err)
	}

	if err := validateFieldLength("preview.output", c.Preview.Output, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.style", c.Preview.Style, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.title", c.Preview.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("preview.lang", c.Preview.Lang, MaxLangLength); err != nil {
		return err
	}
	if c.Preview.Engine != "" {
		if _, err := preview.NewRenderer(c.Preview.Engine); err != nil {
			return fmt.Errorf("%w: preview.engine: %w", ErrInvalidValue, err)
		}
	}

	if err := validateOneOf("log.level", c.Log.Level, []string{"debug", "info", "warn", "error"}); err != nil {
		return err
	}
	if err := validateOneOf("log.format", c.Log.Format, []string{"text", "json"}); err != nil {
		return err
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// validateOneOf accepts empty values (filled by ApplyDefaults) and any
// case-insensitive match from allowed.
func validateOneOf(fieldName, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s: %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
// Unset fields are filled from DefaultConfig.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, _, err := ResolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		configPath = resolved
	}

	return loadFile(configPath)
}

// LoadDefault looks for the implicit "setlist" config. A missing file is not
// an error: defaults are returned with an empty path.
func LoadDefault() (*Config, string, error) {
	path, _, err := ResolveConfigPath(DefaultName)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), "", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadFile(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func loadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// ResolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/setlist/
// The searched paths are returned for hints when nothing is found.
func ResolveConfigPath(name string) (string, []string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, userConfigSubdir, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", triedPaths, fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
