package convert

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLConverter accepts documents that are already HTML. Full pages are
// reduced to the contents of their <body>; fragments pass through
// re-serialized.
type HTMLConverter struct{}

func (c *HTMLConverter) Convert(src []byte) (string, error) {
	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	body := findBody(doc)
	if body == nil {
		return "", nil
	}

	var buf bytes.Buffer
	for n := body.FirstChild; n != nil; n = n.NextSibling {
		if skipElement(n) {
			continue
		}
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("render html: %w", err)
		}
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}

// Title returns the text of the page's <title>, or of its first <h1> when
// the title is missing or blank.
func (c *HTMLConverter) Title(src []byte) string {
	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return ""
	}
	if t := findFirst(doc, atom.Title); t != nil {
		if s := strings.TrimSpace(textContent(t)); s != "" {
			return s
		}
	}
	if h := findFirst(doc, atom.H1); h != nil {
		return strings.Join(strings.Fields(textContent(h)), " ")
	}
	return ""
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := findFirst(c, a); f != nil {
			return f
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

func skipElement(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.Script, atom.Style:
		return true
	}
	return false
}

func findBody(n *html.Node) *html.Node {
	return findFirst(n, atom.Body)
}
