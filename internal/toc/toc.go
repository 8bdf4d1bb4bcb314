// Package toc derives a nested table of contents from the headings of a
// rendered HTML fragment.
package toc

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dgallion1/docsect/internal/doctree"
	"github.com/dgallion1/docsect/internal/heading"
	"golang.org/x/net/html"
)

var (
	inlineCode = strings.NewReplacer("<code>", "", "</code>", "")
	idAttr     = regexp.MustCompile(`(?i)(^|\s)id\s*=`)
)

// Build returns the synthetic level-0 root entry whose children are the
// top-level headings of fragment.
func Build(fragment string) *doctree.TocEntry {
	return BuildHeadings(heading.Headings(fragment))
}

// BuildHeadings nests headings by level. A heading closes every open entry
// of the same or deeper level.
func BuildHeadings(headings []heading.Heading) *doctree.TocEntry {
	stack := []*doctree.TocEntry{{Level: 0}}

	pop := func() {
		child := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, child)
	}

	for _, h := range headings {
		text := inlineCode.Replace(h.Inner)
		entry := &doctree.TocEntry{
			Level:    h.Level,
			Text:     text,
			AnchorID: AnchorID(text),
		}
		for stack[len(stack)-1].Level >= entry.Level {
			pop()
		}
		stack = append(stack, entry)
	}
	for len(stack) > 1 {
		pop()
	}
	return stack[0]
}

// AnchorID derives a link target from heading text. Spaces become hyphens
// and the result is lower-cased; identical texts collide.
func AnchorID(text string) string {
	return strings.ToLower(strings.ReplaceAll(text, " ", "-"))
}

// AnchorHeadings returns fragment with an id attribute added to every
// heading that lacks one, set to the anchor its TOC entry links to. headings
// must come from fragment.
func AnchorHeadings(fragment string, headings []heading.Heading) string {
	var b strings.Builder
	last := 0
	for _, h := range headings {
		if idAttr.MatchString(h.Attrs) {
			continue
		}
		id := AnchorID(inlineCode.Replace(h.Inner))
		if id == "" {
			continue
		}
		// "<hN" is always three bytes.
		at := h.Start + 3 + len(h.Attrs)
		b.WriteString(fragment[last:at])
		fmt.Fprintf(&b, ` id="%s"`, html.EscapeString(id))
		last = at
	}
	if last == 0 {
		return fragment
	}
	b.WriteString(fragment[last:])
	return b.String()
}

// Render returns the list markup for the children of root. Entries with
// empty text are omitted along with their subtrees.
func Render(root *doctree.TocEntry) string {
	if root == nil {
		return ""
	}
	return renderList(root.Children)
}

func renderList(entries []*doctree.TocEntry) string {
	var items strings.Builder
	for _, e := range entries {
		if e.Text == "" {
			continue
		}
		fmt.Fprintf(&items, `<li class="toc-level%d"><a href="#%s">%s</a>`, e.Level, e.AnchorID, e.Text)
		items.WriteString(renderList(e.Children))
		items.WriteString("</li>")
	}
	if items.Len() == 0 {
		return ""
	}
	return `<ul class="toc-list">` + items.String() + "</ul>"
}
