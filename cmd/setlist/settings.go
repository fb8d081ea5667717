package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/config"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/fileutil"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/hints"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/logger"
)

// settings is the effective configuration of one command run.
type settings struct {
	cfg    *config.Config
	source string // config file path, empty when defaults were used
}

// loadSettings resolves configuration with precedence
// flags > env > config file > defaults. Command-specific flags are applied
// by the caller; this applies the common ones.
func loadSettings(common commonFlags, env *Environment) (*settings, error) {
	src, err := newEnvSource(env)
	if err != nil {
		return nil, err
	}
	warnUnknownEnvVars(env.Stderr, src)
	envCfg := loadEnvConfig(src)

	name := common.config
	if name == "" {
		name = envCfg.ConfigPath
	}

	s := &settings{}
	if name == "" {
		s.cfg, s.source, err = config.LoadDefault()
	} else {
		s.cfg, s.source, err = loadNamedConfig(name)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	applyEnvConfig(envCfg, s.cfg)

	override(&s.cfg.Log.Format, common.logFormat)
	switch {
	case common.quiet:
		s.cfg.Log.Level = "error"
	case common.verbose:
		s.cfg.Log.Level = "debug"
	}

	return s, nil
}

// loadNamedConfig loads an explicitly requested config, attaching search
// hints when a name cannot be found.
func loadNamedConfig(name string) (*config.Config, string, error) {
	path := name
	if !fileutil.IsFilePath(name) {
		resolved, searched, err := config.ResolveConfigPath(name)
		if err != nil {
			return nil, "", withHint(err, hints.ForConfigNotFound(searched))
		}
		path = resolved
	}

	cfg, err := config.LoadConfig(path)
	if errors.Is(err, config.ErrConfigNotFound) {
		return nil, "", withHint(err, hints.ForConfigNotFound(nil))
	}
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// validate re-checks the configuration after env and flag overrides.
func (s *settings) validate() error {
	return s.cfg.Validate()
}

// logger builds the diagnostic logger writing to env.Stderr.
func (s *settings) logger(env *Environment) *slog.Logger {
	return logger.New(env.Stderr, s.cfg.Log.Level, s.cfg.Log.Format)
}
