package timestamp

import (
	"regexp"
	"strings"
)

// sectionPrefix marks a level-2 heading. Deeper headings are plain text.
const sectionPrefix = "## "

// baseURLPattern finds the first parenthesized http(s) URL in a heading.
var baseURLPattern = regexp.MustCompile(`\((https?://[^\s)]+)\)`)

// Heading is a section heading line.
type Heading struct {
	Text string
}

// ParseHeading reports whether line starts a new section.
func ParseHeading(line string) (Heading, bool) {
	if !strings.HasPrefix(line, sectionPrefix) {
		return Heading{}, false
	}
	return Heading{Text: line}, true
}

// BaseURL returns the stream URL embedded in the heading.
// Returns ErrMissingBaseURL if the heading has no parenthesized URL.
func (h Heading) BaseURL() (string, error) {
	m := baseURLPattern.FindStringSubmatch(h.Text)
	if m == nil {
		return "", ErrMissingBaseURL
	}
	return m[1], nil
}
