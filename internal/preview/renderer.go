package preview

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEngine indicates an unsupported renderer name.
var ErrUnknownEngine = errors.New("unknown preview engine")

// Engine names accepted by NewRenderer.
const (
	EngineBuiltin  = "builtin"
	EngineGoldmark = "goldmark"
)

// Engines lists the supported engine names.
var Engines = []string{EngineBuiltin, EngineGoldmark}

// BodyRenderer converts markdown to the HTML placed inside the page body.
type BodyRenderer interface {
	RenderBody(ctx context.Context, markdown string) (string, error)
}

// NewRenderer returns the renderer for an engine name.
// An empty name selects the builtin renderer.
func NewRenderer(engine string) (BodyRenderer, error) {
	switch strings.ToLower(engine) {
	case "", EngineBuiltin:
		return &BuiltinRenderer{}, nil
	case EngineGoldmark:
		return NewGoldmarkRenderer(), nil
	default:
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownEngine, engine, strings.Join(Engines, ", "))
	}
}

// Compile-time interface checks.
var (
	_ BodyRenderer = (*BuiltinRenderer)(nil)
	_ BodyRenderer = (*GoldmarkRenderer)(nil)
)
