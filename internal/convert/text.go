package convert

import (
	"bufio"
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// TextConverter wraps blank-line separated paragraphs of plain text in <p>
// elements. A paragraph of three semicolons still closes a section.
type TextConverter struct{}

func (c *TextConverter) Convert(src []byte) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var paragraphs []string
	var current strings.Builder

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if current.Len() > 0 {
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	if current.Len() > 0 {
		paragraphs = append(paragraphs, current.String())
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	var out strings.Builder
	for _, para := range paragraphs {
		out.WriteString("<p>")
		out.WriteString(html.EscapeString(strings.TrimSpace(para)))
		out.WriteString("</p>\n")
	}
	return out.String(), nil
}
