package convert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
	"golang.org/x/net/html"
)

// DOCXConverter renders Word documents. Paragraphs styled Heading 1-6
// become headings and every other non-empty paragraph becomes a <p>, so a
// paragraph typed as ";;;" closes a section.
type DOCXConverter struct{}

func (c *DOCXConverter) Convert(src []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}

	var out strings.Builder
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		if level := docxHeadingLevel(para); level > 0 {
			fmt.Fprintf(&out, "<h%d>%s</h%d>\n", level, html.EscapeString(text), level)
			continue
		}
		fmt.Fprintf(&out, "<p>%s</p>\n", html.EscapeString(text))
	}
	return out.String(), nil
}

// Title returns the text of the first Heading 1 paragraph.
func (c *DOCXConverter) Title(src []byte) string {
	doc, err := docx.Parse(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return ""
	}
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok && docxHeadingLevel(para) == 1 {
			if text := docxParagraphText(para); text != "" {
				return text
			}
		}
	}
	return ""
}

// docxHeadingLevel accepts both the style id ("Heading2") and the display
// name ("heading 2").
func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if len(style) != len("heading1") || !strings.HasPrefix(style, "heading") {
		return 0
	}
	if d := style[len(style)-1]; d >= '1' && d <= '6' {
		return int(d - '0')
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
