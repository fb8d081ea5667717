package preview

import (
	"regexp"
	"strings"
)

// event is the class of a markdown line as seen by the list state machine.
type event int

const (
	eventBlank event = iota
	eventHeading
	eventListItem
	eventText
)

var (
	orderedItemPattern = regexp.MustCompile(`^\d+\.\s+`)
	bulletItemPattern  = regexp.MustCompile(`^\s*[-*]\s+`)
)

// headingPrefixes is ordered deepest first so "### " is not read as "# ".
var headingPrefixes = []struct {
	prefix string
	level  int
}{
	{"### ", 3},
	{"## ", 2},
	{"# ", 1},
}

// classified is a line reduced to its event and content.
type classified struct {
	event event
	level int    // heading level, 1-3
	text  string // content without the block marker
}

func classify(line string) classified {
	if strings.TrimSpace(line) == "" {
		return classified{event: eventBlank}
	}

	for _, h := range headingPrefixes {
		if strings.HasPrefix(line, h.prefix) {
			return classified{event: eventHeading, level: h.level, text: line[len(h.prefix):]}
		}
	}

	if loc := orderedItemPattern.FindStringIndex(line); loc != nil {
		return classified{event: eventListItem, text: line[loc[1]:]}
	}
	if loc := bulletItemPattern.FindStringIndex(line); loc != nil {
		return classified{event: eventListItem, text: line[loc[1]:]}
	}

	return classified{event: eventText, text: line}
}
