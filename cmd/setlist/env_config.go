package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/config"
)

// envPrefix marks environment variables read by setlist.
const envPrefix = "SETLIST_"

// envConfig holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // SETLIST_CONFIG: config file name or path
	Document   string // SETLIST_DOCUMENT: setlist document path
	Style      string // SETLIST_STYLE: stylesheet path or embedded name
	Output     string // SETLIST_OUTPUT: preview output path
	Engine     string // SETLIST_ENGINE: builtin, goldmark
	LogLevel   string // SETLIST_LOG_LEVEL: debug, info, warn, error
	LogFormat  string // SETLIST_LOG_FORMAT: text, json
}

// knownEnvVars lists valid SETLIST_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SETLIST_CONFIG":     true,
	"SETLIST_DOCUMENT":   true,
	"SETLIST_STYLE":      true,
	"SETLIST_OUTPUT":     true,
	"SETLIST_ENGINE":     true,
	"SETLIST_LOG_LEVEL":  true,
	"SETLIST_LOG_FORMAT": true,
}

// envSource merges the process environment with values from a .env file.
// Process variables win, matching godotenv.Load semantics.
type envSource struct {
	getenv  func(string) string
	environ func() []string
	dotenv  map[string]string
}

// newEnvSource reads the optional .env file at path. A missing file is ignored.
func newEnvSource(env *Environment) (*envSource, error) {
	src := &envSource{getenv: env.Getenv, environ: env.Environ}
	if env.DotEnvPath == "" {
		return src, nil
	}

	values, err := godotenv.Read(env.DotEnvPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return src, nil
		}
		return nil, fmt.Errorf("%w: reading %s: %v", config.ErrConfigParse, env.DotEnvPath, err)
	}
	src.dotenv = values
	return src, nil
}

// Get returns the value of name, preferring the process environment.
func (s *envSource) Get(name string) string {
	if v := s.getenv(name); v != "" {
		return v
	}
	return s.dotenv[name]
}

// names returns every SETLIST_* name visible in either source, sorted.
func (s *envSource) names() []string {
	seen := make(map[string]bool)
	for _, kv := range s.environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) {
			seen[name] = true
		}
	}
	for name := range s.dotenv {
		if strings.HasPrefix(name, envPrefix) {
			seen[name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(src *envSource) *envConfig {
	return &envConfig{
		ConfigPath: src.Get("SETLIST_CONFIG"),
		Document:   src.Get("SETLIST_DOCUMENT"),
		Style:      src.Get("SETLIST_STYLE"),
		Output:     src.Get("SETLIST_OUTPUT"),
		Engine:     src.Get("SETLIST_ENGINE"),
		LogLevel:   src.Get("SETLIST_LOG_LEVEL"),
		LogFormat:  src.Get("SETLIST_LOG_FORMAT"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized SETLIST_* variables.
// Helps catch typos like SETLIST_DOCUEMNT.
func warnUnknownEnvVars(w io.Writer, src *envSource) {
	for _, name := range src.names() {
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config values with set environment variables.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later by each command).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	override(&cfg.Document, env.Document)
	override(&cfg.Preview.Style, env.Style)
	override(&cfg.Preview.Output, env.Output)
	override(&cfg.Preview.Engine, env.Engine)
	override(&cfg.Log.Level, env.LogLevel)
	override(&cfg.Log.Format, env.LogFormat)
}

// override sets *field to value when value is non-empty.
func override(field *string, value string) {
	if value != "" {
		*field = value
	}
}
