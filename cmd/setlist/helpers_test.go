package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/assets"
)

const rawSetlist = `## 2025/03/16 歌枠 (https://www.youtube.com/watch?v=abc)
1. 5:19 Song A
1. 16:44 Song B
`

const annotatedSetlist = `## 2025/03/16 歌枠 (https://www.youtube.com/watch?v=abc)
1. 00:05:19 [Song A](https://www.youtube.com/watch?v=abc&t=319s)
1. 00:16:44 [Song B](https://www.youtube.com/watch?v=abc&t=1004s)
`

// testEnv returns an Environment with captured output, an empty process
// environment and no .env file.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2025, time.March, 21, 9, 8, 7, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(name string) string { return vars[name] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
		StyleLister: assets.NewEmbeddedLoader(),
	}
	return env, &stdout, &stderr
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// workspace creates a temp dir holding README.md and an empty config file,
// so runs never fall back to a config found on the host.
func workspace(t *testing.T, doc string) (dir, docPath, cfgPath string) {
	t.Helper()
	dir = t.TempDir()
	docPath = writeFile(t, dir, "README.md", doc)
	cfgPath = writeFile(t, dir, "setlist.yaml", "document: '"+docPath+"'\n")
	return dir, docPath, cfgPath
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
