// Package section nests a rendered HTML fragment into sections keyed by its
// headings and serializes the result as indented wrapper markup.
package section

import (
	"strings"

	"github.com/dgallion1/docsect/internal/doctree"
	"github.com/dgallion1/docsect/internal/heading"
)

// CloseMarker force-closes the innermost open section. The upstream
// converter emits it for a paragraph consisting of three semicolons.
const CloseMarker = "<p>;;;</p>"

// Build returns the section tree of fragment.
func Build(fragment string) *doctree.Node {
	return BuildSpans(fragment, heading.Scan(fragment))
}

// BuildSpans builds the section tree of fragment from already located
// heading spans. Spans must be in document order and non-overlapping.
func BuildSpans(fragment string, spans []heading.Span) *doctree.Node {
	b := &builder{stack: []*doctree.Node{doctree.NewRoot()}}

	lastEnd := 0
	for _, sp := range spans {
		if lastEnd < sp.Start {
			b.gap(fragment[lastEnd:sp.Start])
		}

		// Close siblings and deeper sections.
		for len(b.stack) > 1 && b.top().Level >= sp.Level {
			b.pop()
		}

		b.stack = append(b.stack, doctree.NewSection(sp.Level, fragment[sp.Start:sp.End]))
		lastEnd = sp.End
	}
	if lastEnd < len(fragment) {
		b.gap(fragment[lastEnd:])
	}

	for len(b.stack) > 1 {
		b.pop()
	}
	return b.stack[0]
}

type builder struct {
	stack []*doctree.Node
}

func (b *builder) top() *doctree.Node {
	return b.stack[len(b.stack)-1]
}

// pop closes the innermost open section and appends it to its parent.
func (b *builder) pop() {
	n := b.top()
	b.stack = b.stack[:len(b.stack)-1]
	b.top().Append(n)
}

// content attaches text to the innermost open node unless it is blank.
func (b *builder) content(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	b.top().Append(doctree.NewContent(text))
}

// gap handles the text between two headings. Each close marker flushes the
// text before it and closes one section; at the root it is absorbed.
func (b *builder) gap(text string) {
	remain := text
	for {
		idx := strings.Index(remain, CloseMarker)
		if idx < 0 {
			break
		}
		b.content(remain[:idx])
		if len(b.stack) > 1 {
			b.pop()
		}
		remain = remain[idx+len(CloseMarker):]
	}
	b.content(remain)
}
