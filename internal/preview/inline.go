package preview

import "regexp"

// Inline patterns, applied in declaration order.
var (
	boldPattern   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicPattern = regexp.MustCompile(`\*(.*?)\*`)
	linkPattern   = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// renderInline applies bold, italic and link substitutions in that order.
// Text is not HTML-escaped.
func renderInline(s string) string {
	s = boldPattern.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicPattern.ReplaceAllString(s, "<em>$1</em>")
	return linkPattern.ReplaceAllString(s, `<a href="$2">$1</a>`)
}
