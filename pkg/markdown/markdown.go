// Package markdown renders Markdown to HTML using the goldmark engine.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer wraps a configured goldmark instance. It is stateless and safe
// to reuse across pages.
//
// Raw HTML must pass through unchanged (the code extractor substitutes
// inline warning paragraphs), so the renderer runs with unsafe HTML
// enabled. Auto heading IDs stay off: the links page matches rendered
// heading lines by their literal <h1>..<h4> prefixes.
type Renderer struct {
	engine goldmark.Markdown
}

func NewRenderer() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render converts Markdown text into an HTML body fragment.
func (r *Renderer) Render(md string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}
