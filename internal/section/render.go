package section

import (
	"strings"

	"github.com/dgallion1/docsect/internal/doctree"
)

const indentUnit = "    "

// Render serializes a section tree starting at depth zero.
func Render(root *doctree.Node) string {
	return RenderIndent(root, 0)
}

// RenderIndent serializes a section tree with every line indented by at
// least depth levels. Markup is not escaped, only re-indented.
func RenderIndent(root *doctree.Node, depth int) string {
	var sb strings.Builder
	writeNode(&sb, root, depth)
	return sb.String()
}

func writeNode(sb *strings.Builder, n *doctree.Node, depth int) {
	switch n.Kind {
	case doctree.KindRoot:
		for _, c := range n.Children {
			writeNode(sb, c, depth)
		}
	case doctree.KindSection:
		writeLine(sb, depth, `<div class="section">`)
		writeLine(sb, depth+1, strings.TrimSpace(n.Heading))
		for _, c := range n.Children {
			writeNode(sb, c, depth+1)
		}
		writeLine(sb, depth, "</div>")
	case doctree.KindContent:
		trimmed := strings.TrimSpace(n.Text)
		if IsPreformatted(trimmed) {
			// Code blocks keep their internal whitespace.
			writeLine(sb, depth, trimmed)
			return
		}
		for _, line := range strings.Split(trimmed, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			writeLine(sb, depth, line)
		}
	}
}

// IsPreformatted reports whether s is a single complete code block.
func IsPreformatted(s string) bool {
	return strings.HasPrefix(s, "<pre><code") && strings.HasSuffix(s, "</code></pre>")
}

func writeLine(sb *strings.Builder, depth int, s string) {
	for range depth {
		sb.WriteString(indentUnit)
	}
	sb.WriteString(s)
	sb.WriteByte('\n')
}
