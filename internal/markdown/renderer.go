package markdown

import (
	"fmt"

	"github.com/phrazzld/codelens/internal/config"
)

// Engine names accepted by New.
const (
	EngineSubset     = "subset"
	EngineCommonMark = "commonmark"
)

// Renderer converts Markdown text into an HTML fragment.
type Renderer interface {
	Render(markdown string) string
}

// RendererFunc adapts a plain function to the Renderer interface.
type RendererFunc func(markdown string) string

// Render calls f(markdown).
func (f RendererFunc) Render(markdown string) string {
	return f(markdown)
}

// New returns the renderer selected by cfg.Engine, wrapped with Sanitize when
// cfg.Sanitize is set.
func New(cfg config.RenderConfig) (Renderer, error) {
	var r Renderer
	switch cfg.Engine {
	case EngineSubset, "":
		r = Subset{}
	case EngineCommonMark:
		r = NewCommonMark()
	default:
		return nil, fmt.Errorf("unknown markdown engine %q", cfg.Engine)
	}

	if cfg.Sanitize {
		r = Sanitizing(r)
	}
	return r, nil
}

// Sanitizing wraps r so that its output is passed through Sanitize.
func Sanitizing(r Renderer) Renderer {
	return RendererFunc(func(markdown string) string {
		return Sanitize(r.Render(markdown))
	})
}
