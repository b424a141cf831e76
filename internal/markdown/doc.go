// Package markdown turns the Markdown returned by the language model into an
// HTML fragment for the display surface.
//
// The default Subset renderer handles a pragmatic subset: fenced code blocks,
// # and ## headings, horizontal rules, **bold** and *italic* (both rendered as
// <strong>), unordered lists, paragraphs and line breaks. It makes one forward
// pass over the lines, so code fences are claimed before any other rule can
// touch their content. An unterminated fence is left as literal text.
//
// CommonMark delegates to goldmark for full CommonMark + GFM output. Either
// engine can be wrapped so its output passes through a bluemonday policy.
package markdown
