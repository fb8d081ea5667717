package songlist

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/assets"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/fileutil"
	"github.com/HamaguRe/txzxrx-tkmr-song-list/internal/preview"
)

// PreviewReport summarizes one preview run.
type PreviewReport struct {
	Path       string // source document
	Output     string // written HTML file
	Style      string // stylesheet reference as given
	StyleFound bool   // false when the stylesheet file was missing
	Engine     string
	Bytes      int
}

// Previewer renders the setlist document to a standalone HTML page.
type Previewer struct {
	opts     options
	renderer preview.BodyRenderer
	page     *preview.PageBuilder
}

// NewPreviewer creates a Previewer.
// Returns error if the engine is unknown or the page template cannot be parsed.
func NewPreviewer(opts ...Option) (*Previewer, error) {
	o := newOptions(opts)

	renderer, err := preview.NewRenderer(o.engine)
	if err != nil {
		return nil, err
	}

	tmpl, err := o.loader.LoadTemplate(assets.PageTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}
	page, err := preview.NewPageBuilder(tmpl)
	if err != nil {
		return nil, err
	}

	return &Previewer{opts: o, renderer: renderer, page: page}, nil
}

// Render converts markdown to a complete HTML page with css inlined.
func (p *Previewer) Render(ctx context.Context, markdown, css string) (string, error) {
	body, err := p.renderer.RenderBody(ctx, markdown)
	if err != nil {
		return "", err
	}

	return p.page.Build(ctx, preview.Page{
		Lang:  p.opts.lang,
		Title: p.opts.title,
		CSS:   css,
		Body:  body,
	})
}

// LoadStyle resolves a stylesheet reference.
//
// A reference containing a path separator or ending in ".css" is a file;
// a missing file yields an empty stylesheet and found=false. Any other
// reference names an embedded style. An empty reference means no style.
func (p *Previewer) LoadStyle(ref string) (css string, found bool, err error) {
	if ref == "" {
		return "", false, nil
	}

	if fileutil.IsFilePath(ref) || strings.HasSuffix(strings.ToLower(ref), ".css") {
		data, err := fileutil.ReadOptional(ref)
		if err != nil {
			return "", false, fmt.Errorf("%w: %v", ErrReadStyle, err)
		}
		if data == nil {
			p.opts.logger.Debug("stylesheet not found, using empty style", slog.String("style", ref))
			return "", false, nil
		}
		return string(data), true, nil
	}

	css, err = p.opts.loader.LoadStyle(ref)
	if err != nil {
		return "", false, err
	}
	return css, true, nil
}

// RenderFile renders the document at docPath with the stylesheet styleRef
// and writes the page to outPath, replacing any previous preview.
func (p *Previewer) RenderFile(ctx context.Context, docPath, styleRef, outPath string) (*PreviewReport, error) {
	data, err := os.ReadFile(docPath) // #nosec G304 -- document path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	css, found, err := p.LoadStyle(styleRef)
	if err != nil {
		return nil, err
	}

	html, err := p.Render(ctx, string(data), css)
	if err != nil {
		return nil, err
	}

	// #nosec G306 -- previews are meant to be readable
	if err := fileutil.WriteFileAtomic(outPath, []byte(html), defaultFileMode); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWritePreview, err)
	}

	report := &PreviewReport{
		Path:       docPath,
		Output:     outPath,
		Style:      styleRef,
		StyleFound: found,
		Engine:     p.engineName(),
		Bytes:      len(html),
	}

	p.opts.logger.Info("preview generated",
		slog.String("path", docPath),
		slog.String("output", outPath),
		slog.String("engine", report.Engine),
		slog.Bool("styleFound", found),
	)
	return report, nil
}

func (p *Previewer) engineName() string {
	if p.opts.engine == "" {
		return preview.EngineBuiltin
	}
	return strings.ToLower(p.opts.engine)
}
