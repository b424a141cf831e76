package markdown_test

import (
	"testing"

	"github.com/phrazzld/codelens/internal/config"
	"github.com/phrazzld/codelens/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("subset by default", func(t *testing.T) {
		t.Parallel()
		r, err := markdown.New(config.RenderConfig{})
		require.NoError(t, err)
		assert.Equal(t, "<ul><li>a</li></ul>", r.Render("- a"))
	})

	t.Run("commonmark", func(t *testing.T) {
		t.Parallel()
		r, err := markdown.New(config.RenderConfig{Engine: markdown.EngineCommonMark})
		require.NoError(t, err)
		assert.Contains(t, r.Render("*em*"), "<em>em</em>")
	})

	t.Run("sanitizing wrapper", func(t *testing.T) {
		t.Parallel()
		r, err := markdown.New(config.RenderConfig{Engine: markdown.EngineSubset, Sanitize: true})
		require.NoError(t, err)
		out := r.Render("```go\nx\n```")
		assert.Equal(t, `<pre><code class="language-go">x</code></pre>`, out)
	})

	t.Run("unknown engine", func(t *testing.T) {
		t.Parallel()
		r, err := markdown.New(config.RenderConfig{Engine: "asciidoc"})
		require.Error(t, err)
		assert.Nil(t, r)
		assert.Contains(t, err.Error(), "asciidoc")
	})
}

func TestCommonMark(t *testing.T) {
	t.Parallel()

	r := markdown.NewCommonMark()

	t.Run("fenced code keeps language class", func(t *testing.T) {
		t.Parallel()
		out := r.Render("```python\nprint(1)\n```")
		assert.Contains(t, out, `<code class="language-python">`)
		assert.Contains(t, out, "print(1)")
	})

	t.Run("raw html is not passed through", func(t *testing.T) {
		t.Parallel()
		out := r.Render("<script>alert(1)</script>\n\ntext")
		assert.NotContains(t, out, "<script>")
		assert.Contains(t, out, "<p>text</p>")
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", r.Render(""))
	})
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:        "script removed",
			input:       "<p>hello</p><script>alert(1)</script>",
			contains:    []string{"<p>hello</p>"},
			notContains: []string{"<script"},
		},
		{
			name:        "event handler removed",
			input:       `<strong onclick="steal()">b</strong>`,
			contains:    []string{"<strong>b</strong>"},
			notContains: []string{"onclick"},
		},
		{
			name:     "language class kept",
			input:    `<pre><code class="language-c++">int x;</code></pre>`,
			contains: []string{`<code class="language-c++">`},
		},
		{
			name:        "other classes dropped",
			input:       `<code class="evil">x</code>`,
			contains:    []string{"<code>x</code>"},
			notContains: []string{"evil"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := markdown.Sanitize(tt.input)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, out, s)
			}
		})
	}

	assert.Equal(t, "", markdown.Sanitize("   "))
}
