package markdown

import (
	"regexp"
	"strings"
)

const defaultLanguage = "text"

var (
	fenceOpenRe = regexp.MustCompile("^```([A-Za-z0-9_+#.-]*)$")
	ruleRe      = regexp.MustCompile(`^-{3,}$`)
	listItemRe  = regexp.MustCompile(`^[*-]\s+(.*)$`)
	strongRe    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	emphasisRe  = regexp.MustCompile(`\*(.+?)\*`)

	newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")
	escaper  = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// Subset renders the restricted Markdown subset described in the package
// documentation. The zero value is ready to use and safe for concurrent use.
type Subset struct{}

// Render implements Renderer.
func (Subset) Render(markdown string) string {
	return Render(markdown)
}

// Render converts markdown to HTML using the Subset rules.
// It is pure: the same input always yields the same output.
func Render(markdown string) string {
	lines := strings.Split(newlines.Replace(markdown), "\n")

	var w blockWriter
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if m := fenceOpenRe.FindStringSubmatch(trimmed); m != nil {
			if end := closingFence(lines, i+1); end >= 0 {
				w.code(m[1], lines[i+1:end])
				i = end
				continue
			}
		}

		switch {
		case trimmed == "":
			w.blank()
		case strings.HasPrefix(line, "##"):
			w.heading(2, line[2:])
		case strings.HasPrefix(line, "#"):
			w.heading(1, line[1:])
		case ruleRe.MatchString(strings.TrimRight(line, " \t")):
			w.rule()
		default:
			if m := listItemRe.FindStringSubmatch(line); m != nil {
				w.item(m[1])
			} else {
				w.text(trimmed)
			}
		}
	}
	w.closeBlocks()

	return w.String()
}

// closingFence returns the index of the first line at or after from that
// closes a fence, or -1.
func closingFence(lines []string, from int) int {
	for j := from; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == "```" {
			return j
		}
	}
	return -1
}

// blockWriter accumulates HTML while tracking whether a list or paragraph is
// open. Blank lines inside a list are held back: the list continues if the
// next non-blank line is another item and is closed otherwise.
type blockWriter struct {
	b            strings.Builder
	inList       bool
	inParagraph  bool
	blankPending bool
}

func (w *blockWriter) String() string {
	return w.b.String()
}

func (w *blockWriter) closeParagraph() {
	if w.inParagraph {
		w.b.WriteString("</p>")
		w.inParagraph = false
	}
}

func (w *blockWriter) closeList() {
	if w.inList {
		w.b.WriteString("</ul>")
		w.inList = false
	}
	w.blankPending = false
}

func (w *blockWriter) closeBlocks() {
	w.closeParagraph()
	w.closeList()
}

func (w *blockWriter) blank() {
	w.closeParagraph()
	if w.inList {
		w.blankPending = true
	}
}

func (w *blockWriter) code(language string, body []string) {
	w.closeBlocks()
	if language == "" {
		language = defaultLanguage
	}
	w.b.WriteString(`<pre><code class="language-`)
	w.b.WriteString(language)
	w.b.WriteString(`">`)
	w.b.WriteString(escaper.Replace(trimBlankLines(body)))
	w.b.WriteString("</code></pre>")
}

func (w *blockWriter) heading(level int, content string) {
	w.closeBlocks()
	tag := "h1"
	if level == 2 {
		tag = "h2"
	}
	w.b.WriteString("<" + tag + ">")
	w.b.WriteString(inline(strings.TrimSpace(content)))
	w.b.WriteString("</" + tag + ">")
}

func (w *blockWriter) rule() {
	w.closeBlocks()
	w.b.WriteString("<hr>")
}

func (w *blockWriter) item(content string) {
	w.closeParagraph()
	if !w.inList {
		w.b.WriteString("<ul>")
		w.inList = true
	}
	w.blankPending = false
	w.b.WriteString("<li>")
	w.b.WriteString(inline(strings.TrimSpace(content)))
	w.b.WriteString("</li>")
}

func (w *blockWriter) text(content string) {
	w.closeList()
	if w.inParagraph {
		w.b.WriteString("<br>")
	} else {
		w.b.WriteString("<p>")
		w.inParagraph = true
	}
	w.b.WriteString(inline(content))
}

// inline escapes s and converts **strong** and *emphasis* spans. Both render
// as <strong>.
func inline(s string) string {
	s = escaper.Replace(s)
	s = strongRe.ReplaceAllString(s, "<strong>$1</strong>")
	return emphasisRe.ReplaceAllString(s, "<strong>$1</strong>")
}

// trimBlankLines joins lines, dropping whitespace-only lines at either end.
func trimBlankLines(lines []string) string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
