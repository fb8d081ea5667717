package timestamp

import (
	"errors"
	"fmt"
	"strings"
)

// MalformedPolicy decides what happens to entries that cannot be parsed.
type MalformedPolicy int

const (
	// MalformedSkip keeps the original line and records a warning.
	MalformedSkip MalformedPolicy = iota
	// MalformedAbort stops the pass with a *LineError.
	MalformedAbort
)

// ParseMalformedPolicy converts "skip" or "abort" to a MalformedPolicy.
func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	switch strings.ToLower(s) {
	case "", "skip":
		return MalformedSkip, nil
	case "abort":
		return MalformedAbort, nil
	default:
		return MalformedSkip, fmt.Errorf("%w: %q (must be skip or abort)", ErrInvalidPolicy, s)
	}
}

func (p MalformedPolicy) String() string {
	if p == MalformedAbort {
		return "abort"
	}
	return "skip"
}

// Options controls a document pass.
type Options struct {
	OnMalformed MalformedPolicy
}

// State is carried from one line to the next during a pass.
type State struct {
	BaseURL string // URL of the current section, empty before the first heading
	Section int    // number of sections seen so far
}

// Change records a line the pass rewrote.
type Change struct {
	Line   int
	Before string
	After  string
}

// Result is the outcome of a successful pass.
type Result struct {
	Lines     []string
	Sections  int
	Rewritten int // entries whose text changed
	Unchanged int // entries already up to date
	Skipped   int // malformed entries kept verbatim
	Orphans   int // entries seen before any section heading
	Changes   []Change
	Warnings  []*LineError
}

// Annotate rewrites every entry of the document with its deep link.
//
// A section heading without a URL stops the pass and returns a *LineError
// wrapping ErrMissingBaseURL; no partial result is returned, so callers
// never write a half-annotated document. Malformed entries follow
// opts.OnMalformed.
func Annotate(lines []string, opts Options) (*Result, error) {
	res := &Result{Lines: make([]string, 0, len(lines))}
	var st State

	for i, line := range lines {
		n := i + 1
		out, next, err := step(st, n, line, opts, res)
		if err != nil {
			return nil, &LineError{Line: n, Text: line, Err: err}
		}
		if out != line {
			res.Changes = append(res.Changes, Change{Line: n, Before: line, After: out})
		}
		st = next
		res.Lines = append(res.Lines, out)
	}

	res.Sections = st.Section
	return res, nil
}

// step processes line n and returns its replacement and the next state.
// Warnings and counters are accumulated in res.
func step(st State, n int, line string, opts Options, res *Result) (string, State, error) {
	if strings.TrimSpace(line) == "" {
		return line, st, nil
	}

	if h, ok := ParseHeading(line); ok {
		url, err := h.BaseURL()
		if err != nil {
			return "", st, err
		}
		return line, State{BaseURL: url, Section: st.Section + 1}, nil
	}

	switch p := ParseEntry(line).(type) {
	case Entry:
		out := p.Rewrite(st.BaseURL)
		if st.Section == 0 {
			res.Orphans++
		}
		if out == line {
			res.Unchanged++
		} else {
			res.Rewritten++
		}
		return out, st, nil
	case Malformed:
		if opts.OnMalformed == MalformedAbort {
			return "", st, p.Err
		}
		res.Skipped++
		res.Warnings = append(res.Warnings, &LineError{Line: n, Text: line, Err: p.Err})
		return line, st, nil
	default:
		return line, st, nil
	}
}

// SplitLines splits document content into lines. CRLF and CR line endings
// are normalized and a final newline does not produce an empty last line.
func SplitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	if content == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n")
}

// JoinLines is the inverse of SplitLines: every line is terminated by "\n".
func JoinLines(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// IsDocumentError reports whether err comes from the document content
// rather than from I/O.
func IsDocumentError(err error) bool {
	return errors.Is(err, ErrMissingBaseURL) ||
		errors.Is(err, ErrMalformedTime) ||
		errors.Is(err, ErrMalformedEntry)
}
