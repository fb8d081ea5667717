package main

// Notes:
// - TestRunMain_DefaultFiles changes the working directory with t.Chdir and
//   cannot run in parallel. Every other run passes --config with a temp file
//   so no config from the host is picked up.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage and exits with ExitUsage",
			args:         []string{"setlist"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: setlist"},
		},
		{
			name:         "version command exits 0",
			args:         []string{"setlist", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"setlist dev"},
		},
		{
			name:         "help command exits 0",
			args:         []string{"setlist", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: setlist", "Commands:", "annotate", "preview"},
		},
		{
			name:         "help annotate shows annotate help",
			args:         []string{"setlist", "help", "annotate"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: setlist annotate", "--on-malformed"},
		},
		{
			name:         "annotate --help exits 0",
			args:         []string{"setlist", "annotate", "--help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: setlist annotate"},
		},
		{
			name:         "help unknown exits with ExitUsage",
			args:         []string{"setlist", "help", "convert"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: convert"},
		},
		{
			name:         "unknown command exits with ExitUsage",
			args:         []string{"setlist", "unknown"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: unknown"},
		},
		{
			name:         "unknown flag exits with ExitUsage",
			args:         []string{"setlist", "annotate", "--bogus"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid flag"},
		},
		{
			name:         "positional argument rejected",
			args:         []string{"setlist", "preview", "README.md"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unexpected argument \"README.md\""},
		},
		{
			name:         "unsupported shell exits with ExitUsage",
			args:         []string{"setlist", "completion", "tcsh"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unsupported shell"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil)
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr)
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout)
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Annotate - annotate command end to end
// ---------------------------------------------------------------------------

func TestRunMain_Annotate(t *testing.T) {
	t.Parallel()

	dir, docPath, cfgPath := workspace(t, rawSetlist)
	env, stdout, stderr := testEnv(nil)

	code := runMain([]string{"setlist", "annotate", "--config", cfgPath}, env)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}

	if got := readFile(t, docPath); got != annotatedSetlist {
		t.Errorf("document:\n%s\nwant:\n%s", got, annotatedSetlist)
	}
	backup := filepath.Join(dir, "README-backup-20250321-090807.md")
	if got := readFile(t, backup); got != rawSetlist {
		t.Errorf("backup content = %q, want original", got)
	}
	if !strings.Contains(stdout.String(), "✓ Annotated") || !strings.Contains(stdout.String(), "2 rewritten") {
		t.Errorf("stdout = %q, want summary", stdout)
	}

	// Second run is a no-op.
	env, stdout, _ = testEnv(nil)
	if code := runMain([]string{"setlist", "annotate", "--config", cfgPath}, env); code != ExitSuccess {
		t.Fatalf("second run exit = %d", code)
	}
	if !strings.Contains(stdout.String(), "up to date") {
		t.Errorf("second run stdout = %q, want up to date", stdout)
	}
}

func TestRunMain_Annotate_DryRunAndNoBackup(t *testing.T) {
	t.Parallel()

	t.Run("dry run writes nothing", func(t *testing.T) {
		t.Parallel()

		dir, docPath, cfgPath := workspace(t, rawSetlist)
		env, stdout, _ := testEnv(nil)

		code := runMain([]string{"setlist", "annotate", "-c", cfgPath, "--dry-run"}, env)
		if code != ExitSuccess {
			t.Fatalf("exit = %d", code)
		}
		if readFile(t, docPath) != rawSetlist {
			t.Error("dry run modified the document")
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 2 {
			t.Errorf("directory has %d entries, want README.md and setlist.yaml", len(entries))
		}
		if !strings.Contains(stdout.String(), "would change") || !strings.Contains(stdout.String(), "2: 1. 00:05:19") {
			t.Errorf("stdout = %q, want pending changes", stdout)
		}
	})

	t.Run("no backup", func(t *testing.T) {
		t.Parallel()

		dir, docPath, cfgPath := workspace(t, rawSetlist)
		env, _, _ := testEnv(nil)

		code := runMain([]string{"setlist", "annotate", "-c", cfgPath, "--no-backup", "-q"}, env)
		if code != ExitSuccess {
			t.Fatalf("exit = %d", code)
		}
		if readFile(t, docPath) != annotatedSetlist {
			t.Error("document not annotated")
		}
		entries, _ := os.ReadDir(dir)
		if len(entries) != 2 {
			t.Errorf("directory has %d entries, want no backup", len(entries))
		}
	})

	t.Run("unstamped backup", func(t *testing.T) {
		t.Parallel()

		dir, _, cfgPath := workspace(t, rawSetlist)
		env, _, stderr := testEnv(nil)

		code := runMain([]string{"setlist", "annotate", "-c", cfgPath, "--backup-stamp", ""}, env)
		if code != ExitSuccess {
			t.Fatalf("exit = %d, stderr: %s", code, stderr)
		}
		if got := readFile(t, filepath.Join(dir, "README-backup.md")); got != rawSetlist {
			t.Errorf("README-backup.md = %q, want original", got)
		}
	})
}

func TestRunMain_Annotate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		doc        string
		extraArgs  []string
		wantCode   int
		wantStderr []string
	}{
		{
			name:       "missing base URL",
			doc:        "## 歌枠\n1. 5:19 A\n",
			wantCode:   ExitDocument,
			wantStderr: []string{"line 1", "section heading has no base URL", "hint:"},
		},
		{
			name:       "malformed entry under abort",
			doc:        "## 歌枠 (https://www.youtube.com/watch?v=abc)\n1. 5:1x A\n",
			extraArgs:  []string{"--on-malformed", "abort"},
			wantCode:   ExitDocument,
			wantStderr: []string{"line 2", "--on-malformed skip"},
		},
		{
			name:       "invalid policy",
			doc:        rawSetlist,
			extraArgs:  []string{"--on-malformed", "ignore"},
			wantCode:   ExitUsage,
			wantStderr: []string{"annotate.onMalformed"},
		},
		{
			name:       "invalid backup stamp",
			doc:        rawSetlist,
			extraArgs:  []string{"--backup-stamp", "YYYY/MM"},
			wantCode:   ExitUsage,
			wantStderr: []string{"backup.stamp"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir, docPath, cfgPath := workspace(t, tt.doc)
			env, _, stderr := testEnv(nil)

			args := append([]string{"setlist", "annotate", "-c", cfgPath}, tt.extraArgs...)
			code := runMain(args, env)

			if code != tt.wantCode {
				t.Errorf("exit = %d, want %d\nstderr: %s", code, tt.wantCode, stderr)
			}
			for _, want := range tt.wantStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr)
				}
			}
			if readFile(t, docPath) != tt.doc {
				t.Error("document modified after failure")
			}
			entries, _ := os.ReadDir(dir)
			if len(entries) != 2 {
				t.Errorf("directory has %d entries, want no backup", len(entries))
			}
		})
	}
}

func TestRunMain_Annotate_MissingDocument(t *testing.T) {
	t.Parallel()

	dir, _, cfgPath := workspace(t, rawSetlist)
	env, _, stderr := testEnv(nil)

	code := runMain([]string{"setlist", "annotate", "-c", cfgPath, "-d", filepath.Join(dir, "nope.md")}, env)
	if code != ExitIO {
		t.Errorf("exit = %d, want ExitIO", code)
	}
	if !strings.Contains(stderr.String(), "--document") {
		t.Errorf("stderr = %q, want document hint", stderr)
	}
}

func TestRunMain_Annotate_EnvDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	docPath := writeFile(t, dir, "setlist.md", rawSetlist)
	cfgPath := writeFile(t, dir, "setlist.yaml", "backup:\n  enabled: false\n")
	env, _, stderr := testEnv(map[string]string{"SETLIST_DOCUMENT": docPath})

	code := runMain([]string{"setlist", "annotate", "-c", cfgPath}, env)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}
	if readFile(t, docPath) != annotatedSetlist {
		t.Error("SETLIST_DOCUMENT not honoured")
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Preview - preview command end to end
// ---------------------------------------------------------------------------

func TestRunMain_Preview(t *testing.T) {
	t.Parallel()

	dir, _, cfgPath := workspace(t, annotatedSetlist)
	stylePath := writeFile(t, dir, filepath.Join("assets", "css", "style.css"), "h2 { color: teal; }")
	outPath := filepath.Join(dir, "preview.html")
	env, stdout, stderr := testEnv(nil)

	code := runMain([]string{"setlist", "preview", "-c", cfgPath, "--style", stylePath, "-o", outPath}, env)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}

	html := readFile(t, outPath)
	for _, want := range []string{
		`<html lang="ja">`,
		"h2 { color: teal; }",
		`<a href="https://www.youtube.com/watch?v=abc&t=319s">Song A</a>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("preview missing %q", want)
		}
	}
	if !strings.Contains(stdout.String(), "✓ Preview generated: "+outPath) {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRunMain_Preview_MissingStyleIsNotAnError(t *testing.T) {
	t.Parallel()

	dir, _, cfgPath := workspace(t, annotatedSetlist)
	outPath := filepath.Join(dir, "preview.html")
	env, stdout, stderr := testEnv(nil)

	code := runMain([]string{"setlist", "preview", "-c", cfgPath, "--style", filepath.Join(dir, "missing.css"), "-o", outPath}, env)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout.String(), "unstyled") {
		t.Errorf("stdout = %q, want unstyled note", stdout)
	}
}

func TestRunMain_Preview_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStderr string
	}{
		{name: "unknown engine", args: []string{"--engine", "pandoc"}, wantCode: ExitUsage, wantStderr: "engines: builtin, goldmark"},
		{name: "unknown embedded style", args: []string{"--style", "neon"}, wantCode: ExitUsage, wantStderr: "available: default"},
		{name: "bad log format", args: []string{"--log-format", "xml"}, wantCode: ExitUsage, wantStderr: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir, _, cfgPath := workspace(t, annotatedSetlist)
			env, _, stderr := testEnv(nil)

			args := append([]string{"setlist", "preview", "-c", cfgPath, "-o", filepath.Join(dir, "p.html")}, tt.args...)
			code := runMain(args, env)

			if code != tt.wantCode {
				t.Errorf("exit = %d, want %d\nstderr: %s", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr should contain %q, got %q", tt.wantStderr, stderr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Config - config command
// ---------------------------------------------------------------------------

func TestRunMain_Config(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "setlist.yaml", "preview:\n  engine: goldmark\n")
	env, stdout, stderr := testEnv(map[string]string{"SETLIST_OUTPUT": "env.html"})

	code := runMain([]string{"setlist", "config", "-c", cfgPath}, env)
	if code != ExitSuccess {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}

	out := stdout.String()
	for _, want := range []string{"# source: " + cfgPath, "engine: goldmark", "output: env.html", "document: README.md"} {
		if !strings.Contains(out, want) {
			t.Errorf("config output missing %q:\n%s", want, out)
		}
	}
}

func TestRunMain_Config_NotFound(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv(nil)

	code := runMain([]string{"setlist", "config", "-c", filepath.Join(t.TempDir(), "missing.yaml")}, env)
	if code != ExitUsage {
		t.Errorf("exit = %d, want ExitUsage", code)
	}
	if !strings.Contains(stderr.String(), "config file not found") {
		t.Errorf("stderr = %q", stderr)
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_DefaultFiles - conventional names in the working directory
// ---------------------------------------------------------------------------

func TestRunMain_DefaultFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))

	writeFile(t, dir, "README.md", rawSetlist)
	writeFile(t, dir, filepath.Join("assets", "css", "style.css"), "body { margin: 0; }")

	env, _, stderr := testEnv(nil)
	if code := runMain([]string{"setlist", "annotate", "--no-backup"}, env); code != ExitSuccess {
		t.Fatalf("annotate exit = %d, stderr: %s", code, stderr)
	}
	if readFile(t, "README.md") != annotatedSetlist {
		t.Error("README.md not annotated")
	}

	env, _, stderr = testEnv(nil)
	if code := runMain([]string{"setlist", "preview"}, env); code != ExitSuccess {
		t.Fatalf("preview exit = %d, stderr: %s", code, stderr)
	}
	html := readFile(t, "preview.html")
	if !strings.Contains(html, "body { margin: 0; }") {
		t.Error("preview.html missing assets/css/style.css content")
	}
}
