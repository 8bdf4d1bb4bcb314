package convert

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// MarkdownConverter renders Markdown with goldmark.
type MarkdownConverter struct {
	md goldmark.Markdown
}

// NewMarkdownConverter returns a converter with tables, footnotes,
// strikethrough, task lists, definition lists and smart punctuation
// enabled. Raw HTML is passed through.
func NewMarkdownConverter() *MarkdownConverter {
	return &MarkdownConverter{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
				extension.DefinitionList,
				extension.Typographer,
			),
			goldmark.WithParserOptions(
				parser.WithHeadingAttribute(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// ReadsFrontMatter is always true: Markdown sources carry a title,
// description and tag header.
func (c *MarkdownConverter) ReadsFrontMatter() bool { return true }

func (c *MarkdownConverter) Convert(src []byte) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
