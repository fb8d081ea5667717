package timestamp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// markerPattern matches the ordered-list marker that opens an entry.
	markerPattern = regexp.MustCompile(`^\d+\.( |$)`)

	// linkedTitlePattern matches a title left as a link by a previous run.
	linkedTitlePattern = regexp.MustCompile(`^\[(.*?)\]\((https?://[^\s)]+)\)`)
)

// Parsed is the outcome of ParseEntry: Entry, NotEntry or Malformed.
type Parsed interface {
	parsed()
}

// Entry is a decomposed setlist entry.
type Entry struct {
	Marker    string // "1."
	TimeToken string // time as written, e.g. "5:19"
	Time      Clock
	Title     string // verbatim, trailing spaces included
	Trailing  string // text after an existing link, kept as is
}

// NotEntry is returned for lines that are not ordered-list items.
type NotEntry struct{}

// Malformed is returned for lines that open like an entry but cannot be
// decomposed into marker, time and title.
type Malformed struct {
	Err error
}

func (Entry) parsed()     {}
func (NotEntry) parsed()  {}
func (Malformed) parsed() {}

// ParseEntry decomposes an ordered-list line into marker, time and title.
// The line is split on the first two single spaces; everything after the
// time token belongs to the title, parenthetical notes included.
func ParseEntry(line string) Parsed {
	loc := markerPattern.FindStringIndex(line)
	if loc == nil {
		return NotEntry{}
	}

	marker, rest, _ := strings.Cut(line, " ")
	if rest == "" {
		return Malformed{Err: fmt.Errorf("%w: no time token", ErrMalformedEntry)}
	}

	token, remainder, ok := strings.Cut(rest, " ")
	if !ok || remainder == "" {
		return Malformed{Err: fmt.Errorf("%w: no title after %q", ErrMalformedEntry, token)}
	}

	clock, err := Normalize(token)
	if err != nil {
		return Malformed{Err: err}
	}

	e := Entry{Marker: marker, TimeToken: token, Time: clock, Title: remainder}
	if m := linkedTitlePattern.FindStringSubmatchIndex(remainder); m != nil {
		e.Title = remainder[m[2]:m[3]]
		e.Trailing = remainder[m[1]:]
	}
	return e
}

// DeepLink appends the playback offset to a stream URL.
func DeepLink(baseURL string, seconds int) string {
	return baseURL + "&t=" + strconv.Itoa(seconds) + "s"
}

// Rewrite renders the entry as "<marker> <hh:mm:ss> [<title>](<deep-link>)".
func (e Entry) Rewrite(baseURL string) string {
	var b strings.Builder
	b.Grow(len(e.Marker) + len(e.Title) + len(e.Trailing) + len(baseURL) + 32)
	b.WriteString(e.Marker)
	b.WriteByte(' ')
	b.WriteString(e.Time.String())
	b.WriteString(" [")
	b.WriteString(e.Title)
	b.WriteString("](")
	b.WriteString(DeepLink(baseURL, e.Time.TotalSeconds()))
	b.WriteByte(')')
	b.WriteString(e.Trailing)
	return b.String()
}
