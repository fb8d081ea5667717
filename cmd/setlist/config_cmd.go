package main

import (
	"fmt"

	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/yamlutil"
)

// runConfig prints the effective configuration as YAML.
func runConfig(args []string, env *Environment) error {
	f := &configFlags{}
	fs := newConfigFlagSet(f, env.Stdout)
	if err := parseFlagSet(fs, args); err != nil {
		return err
	}

	s, err := loadSettings(f.common, env)
	if err != nil {
		return err
	}
	if err := s.validate(); err != nil {
		return err
	}

	out, err := yamlutil.Marshal(s.cfg)
	if err != nil {
		return err
	}

	source := s.source
	if source == "" {
		source = "defaults"
	}
	fmt.Fprintf(env.Stdout, "# source: %s\n", source)
	_, err = env.Stdout.Write(out)
	return err
}
