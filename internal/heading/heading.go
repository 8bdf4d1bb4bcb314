// Package heading locates heading elements in rendered HTML fragments.
package heading

import (
	"regexp"
	"strconv"
)

// headingPattern matches a complete single-line heading element. The
// closing level is not required to match the opening one.
var headingPattern = regexp.MustCompile(`<h([1-6])([^>]*)>(.*?)</h[1-6]>`)

// Span is the byte range of a heading element within a fragment.
type Span struct {
	Start int
	End   int
	Level int
}

// Heading is a Span plus the attribute text of the opening tag and the
// markup between the heading tags.
type Heading struct {
	Span
	Attrs string
	Inner string
}

// Scan returns the heading spans of fragment in document order.
func Scan(fragment string) []Span {
	hs := Headings(fragment)
	if len(hs) == 0 {
		return nil
	}
	spans := make([]Span, len(hs))
	for i, h := range hs {
		spans[i] = h.Span
	}
	return spans
}

// Headings returns every heading of fragment in document order.
func Headings(fragment string) []Heading {
	matches := headingPattern.FindAllStringSubmatchIndex(fragment, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]Heading, 0, len(matches))
	for _, m := range matches {
		level, _ := strconv.Atoi(fragment[m[2]:m[3]])
		out = append(out, Heading{
			Span:  Span{Start: m[0], End: m[1], Level: level},
			Attrs: fragment[m[4]:m[5]],
			Inner: fragment[m[6]:m[7]],
		})
	}
	return out
}
