package preview

import (
	"context"
	"strconv"
	"strings"
)

// listState is the state of the builtin renderer.
type listState int

const (
	outsideList listState = iota
	insideList
)

// BuiltinRenderer converts the markdown subset used by setlist documents.
// Consecutive list items of either marker style are grouped into one <ol>.
type BuiltinRenderer struct{}

// listRender carries the renderer state across lines.
type listRender struct {
	state listState
	items []string
	out   []string
}

// RenderBody converts markdown line by line.
func (r *BuiltinRenderer) RenderBody(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	lr := &listRender{}
	for _, line := range strings.Split(markdown, "\n") {
		lr.handle(classify(line))
	}
	lr.closeList()

	return strings.Join(lr.out, "\n"), nil
}

func (lr *listRender) handle(c classified) {
	switch c.event {
	case eventHeading:
		lr.closeList()
		tag := "h" + strconv.Itoa(c.level)
		lr.out = append(lr.out, "<"+tag+">"+c.text+"</"+tag+">")
	case eventListItem:
		lr.state = insideList
		lr.items = append(lr.items, "<li>"+renderInline(c.text)+"</li>")
	case eventBlank:
		lr.closeList()
		lr.out = append(lr.out, "")
	case eventText:
		lr.closeList()
		lr.out = append(lr.out, "<p>"+renderInline(c.text)+"</p>")
	}
}

// closeList flushes pending items as one <ol> and returns to outsideList.
func (lr *listRender) closeList() {
	if lr.state == outsideList {
		return
	}
	lr.out = append(lr.out, "<ol>"+strings.Join(lr.items, "\n")+"</ol>")
	lr.items = lr.items[:0]
	lr.state = outsideList
}
