package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// CommonMark renders full CommonMark with GitHub Flavored Markdown extensions
// via goldmark. Raw HTML in the input is not passed through.
type CommonMark struct {
	md goldmark.Markdown
}

// NewCommonMark returns a goldmark-backed renderer.
func NewCommonMark() *CommonMark {
	return &CommonMark{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render implements Renderer. If conversion fails the escaped source is
// returned as a preformatted block.
func (c *CommonMark) Render(markdown string) string {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "<pre>" + escaper.Replace(markdown) + "</pre>"
	}
	return strings.TrimSpace(buf.String())
}
