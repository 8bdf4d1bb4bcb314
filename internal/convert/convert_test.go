package convert

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		want     any
		wantErr  bool
	}{
		{"post.md", &MarkdownConverter{}, false},
		{"POST.MARKDOWN", &MarkdownConverter{}, false},
		{"notes.txt", &TextConverter{}, false},
		{"page.html", &HTMLConverter{}, false},
		{"page.htm", &HTMLConverter{}, false},
		{"report.pdf", &PDFConverter{}, false},
		{"Report.DOCX", &DOCXConverter{}, false},
		{"data.csv", nil, true},
		{"noext", nil, true},
	}
	for _, tt := range tests {
		c, err := ForFile(tt.filename)
		if tt.wantErr {
			assert.Error(t, err, tt.filename)
			assert.False(t, IsSupportedExtension(tt.filename), tt.filename)
			continue
		}
		require.NoError(t, err, tt.filename)
		assert.IsType(t, tt.want, c, tt.filename)
		assert.True(t, IsSupportedExtension(tt.filename), tt.filename)
	}
}

func TestMarkdownConverter_HeadingsAndMarker(t *testing.T) {
	src := "# Title\n\nIntro.\n\n## Sub\n\nText.\n\n;;;\n\nAfter.\n"
	out, err := NewMarkdownConverter().Convert([]byte(src))
	require.NoError(t, err)

	assert.Contains(t, out, "<h1>Title</h1>")
	assert.Contains(t, out, "<h2>Sub</h2>")
	assert.Contains(t, out, "<p>;;;</p>")
}

func TestMarkdownConverter_Extensions(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n\n~~gone~~\n\n- [x] done\n\nNote[^1].\n\n[^1]: Footnote.\n"
	out, err := NewMarkdownConverter().Convert([]byte(src))
	require.NoError(t, err)

	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<del>gone</del>")
	assert.Contains(t, out, `type="checkbox"`)
	assert.Contains(t, out, "footnote")
}

func TestMarkdownConverter_CodeBlock(t *testing.T) {
	src := "```go\nfunc main() {\n\n    return\n}\n```\n"
	out, err := NewMarkdownConverter().Convert([]byte(src))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, `<pre><code class="language-go">`))
	assert.Contains(t, out, "{\n\n    return\n}")
}

func TestHTMLConverter_ExtractsBody(t *testing.T) {
	src := `<html><head><title>x</title><style>p{}</style></head><body><h1>A</h1><script>alert(1)</script><p>b</p></body></html>`
	out, err := (&HTMLConverter{}).Convert([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, "<h1>A</h1><p>b</p>\n", out)
}

func TestHTMLConverter_Fragment(t *testing.T) {
	out, err := (&HTMLConverter{}).Convert([]byte("<h2>T</h2>\n<p>;;;</p>"))
	require.NoError(t, err)
	assert.Equal(t, "<h2>T</h2>\n<p>;;;</p>\n", out)
}

func TestTextConverter(t *testing.T) {
	out, err := (&TextConverter{}).Convert([]byte("a < b\nline two\n\n ;;; \n\n\nlast"))
	require.NoError(t, err)
	assert.Equal(t, "<p>a &lt; b\nline two</p>\n<p>;;;</p>\n<p>last</p>\n", out)
}

func TestTextConverter_Empty(t *testing.T) {
	out, err := (&TextConverter{}).Convert(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestReadsFrontMatter(t *testing.T) {
	assert.True(t, ReadsFrontMatter(NewMarkdownConverter()))
	assert.False(t, ReadsFrontMatter(&HTMLConverter{}))
	assert.False(t, ReadsFrontMatter(&TextConverter{}))
	assert.False(t, ReadsFrontMatter(&DOCXConverter{}))
	assert.False(t, ReadsFrontMatter(&PDFConverter{}))
}

func TestHTMLConverter_Title(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"title element", "<!DOCTYPE html>\n<html><head><title> Page </title></head><body><h1>Head</h1></body></html>", "Page"},
		{"first h1", "<html><head><title>  </title></head><body><h1>First <em>one</em></h1><h1>Second</h1></body></html>", "First one"},
		{"fragment", "<h2>Sub</h2><h1>Top</h1>", "Top"},
		{"none", "<p>text</p>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, (&HTMLConverter{}).Title([]byte(tt.src)))
		})
	}
}

func newDOCX(t *testing.T, paras ...[2]string) []byte {
	t.Helper()
	w := docx.New().WithDefaultTheme()
	for _, p := range paras {
		para := w.AddParagraph()
		if p[0] != "" {
			para.Style(p[0])
		}
		para.AddText(p[1])
	}
	var buf bytes.Buffer
	_, err := w.WriteTo(&buf)
	require.NoError(t, err)
	return buf.Bytes()
}

func TestDOCXConverter(t *testing.T) {
	src := newDOCX(t,
		[2]string{"Heading1", "Guide"},
		[2]string{"", "Intro & overview."},
		[2]string{"heading 2", "Setup"},
		[2]string{"", "Steps."},
		[2]string{"", ";;;"},
		[2]string{"", "   "},
		[2]string{"", "Back in Guide."},
	)

	out, err := (&DOCXConverter{}).Convert(src)
	require.NoError(t, err)
	assert.Equal(t,
		"<h1>Guide</h1>\n<p>Intro &amp; overview.</p>\n<h2>Setup</h2>\n<p>Steps.</p>\n<p>;;;</p>\n<p>Back in Guide.</p>\n",
		out)
	assert.Equal(t, "Guide", (&DOCXConverter{}).Title(src))
}

func TestDOCXConverter_Invalid(t *testing.T) {
	_, err := (&DOCXConverter{}).Convert([]byte("not a zip"))
	assert.Error(t, err)
	assert.Empty(t, (&DOCXConverter{}).Title([]byte("not a zip")))
}

func TestPDFConverter_Invalid(t *testing.T) {
	_, err := (&PDFConverter{}).Convert([]byte("%PDF"))
	assert.Error(t, err)
}
