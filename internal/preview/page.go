package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// ErrPageRender indicates the page template failed to execute.
var ErrPageRender = errors.New("page template rendering failed")

// Page holds the values substituted into the page template.
type Page struct {
	Lang  string
	Title string
	CSS   string
	Body  string
}

// PageBuilder wraps a rendered body into a complete HTML document.
type PageBuilder struct {
	tmpl *template.Template
}

// NewPageBuilder parses the page template.
// The template receives a Page; CSS and Body are inserted as raw text.
func NewPageBuilder(tmplContent string) (*PageBuilder, error) {
	tmpl, err := template.New("page").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	return &PageBuilder{tmpl: tmpl}, nil
}

// Build renders the page. The stylesheet is sanitized so it cannot close
// the <style> element.
func (b *PageBuilder) Build(ctx context.Context, page Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page.CSS = sanitizeCSS(page.CSS)

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, page); err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageRender, err)
	}
	return buf.String(), nil
}

// sanitizeCSS escapes "</" so the text cannot end the <style> block early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
