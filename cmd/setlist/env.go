package main

import (
	"io"
	"os"
	"time"

	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/assets"
)

// defaultDotEnv is the optional environment file read from the working directory.
const defaultDotEnv = ".env"

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	Getenv      func(string) string
	Environ     func() []string
	DotEnvPath  string // "" disables .env loading
	StyleLister interface{ StyleNames() []string }
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		Environ:     os.Environ,
		DotEnvPath:  defaultDotEnv,
		StyleLister: assets.NewEmbeddedLoader(),
	}
}
