// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"
)

// ForMissingBaseURL returns a hint for a section heading without a stream link.
func ForMissingBaseURL() string {
	return format("each \"## \" heading needs a link, e.g. ## 2025/03/16 歌枠 (https://www.youtube.com/watch?v=ID)")
}

// ForMalformedEntry returns a hint for entries whose time cannot be read.
// abort reports whether the run stopped because of the entry.
func ForMalformedEntry(abort bool) string {
	hints := []string{"write times as s, m:ss or h:mm:ss followed by a title"}
	if abort {
		hints = append(hints, "use --on-malformed skip to keep such lines unchanged")
	}
	return formatHints(hints)
}

// ForDocumentNotFound returns hints for a missing setlist document.
// Mentions SETLIST_DOCUMENT when the environment overrides the path.
func ForDocumentNotFound(path string) string {
	var hints []string

	if env := os.Getenv("SETLIST_DOCUMENT"); env != "" && env == path {
		hints = append(hints, "SETLIST_DOCUMENT is set to "+env)
	}
	hints = append(hints, "run from the directory holding README.md or use --document /path/to/README.md")

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/setlist/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/setlist.yaml"

	// Find a user config path (contains .config/setlist) to suggest
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/setlist") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", ") + "; paths must contain a separator, e.g. ./style.css")
}

// ForEngine returns hints for an unknown preview engine.
func ForEngine(engines []string) string {
	if len(engines) == 0 {
		return ""
	}
	return format("engines: " + strings.Join(engines, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
