package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkupRender(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bold and inline code",
			raw:  "**bold** and `code`",
			want: "<p><strong>bold</strong> and <code>code</code></p>",
		},
		{
			name: "italic",
			raw:  "an *important* word",
			want: "<p>an <em>important</em> word</p>",
		},
		{
			name: "paragraphs and line breaks",
			raw:  "first\nline\n\nsecond",
			want: "<p>first<br>line</p><p>second</p>",
		},
		{
			name: "bullets",
			raw:  "- one\n- two",
			want: "<p>• one<br>• two</p>",
		},
		{
			name: "html is escaped",
			raw:  "<b>x</b>",
			want: "<p>&lt;b&gt;x&lt;/b&gt;</p>",
		},
		{
			name: "empty",
			raw:  "",
			want: "<p></p>",
		},
	}

	m := NewMarkup()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Render(tt.raw))
		})
	}
}

func TestMarkupRender_NoRawTagsLeak(t *testing.T) {
	out := NewMarkup().Render(`**<script>alert("x")</script>** <img src=x onerror=alert(1)>`)

	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "<img")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "<strong>")
}

func TestMarkupRender_FencedBlockIsProtected(t *testing.T) {
	out := NewMarkup().Render("before\n```go\nx := a**b** * c*\n\ny := `z`\n```\nafter")

	assert.Contains(t, out, "<pre><code>x := a**b** * c*\n\ny := `z`\n</code></pre>")
	assert.NotContains(t, out, "<strong>")
	assert.NotContains(t, out, "<em>")
	assert.Contains(t, out, "before<br>")
	assert.Contains(t, out, "<br>after")
}

func TestMarkupRender_CodeSpanContentIsEscaped(t *testing.T) {
	out := NewMarkup().Render("use `<div>` and `**not bold**`")

	assert.Contains(t, out, "<code>&lt;div&gt;</code>")
	assert.Contains(t, out, "<code>**not bold**</code>")
	assert.NotContains(t, out, "<strong>")
}

func TestMarkupRender_PlaceholderLookalikeInInput(t *testing.T) {
	out := NewMarkup().Render("\x00C0\x00 `x`")

	assert.Contains(t, out, "C0")
	assert.Contains(t, out, "<code>x</code>")
}
