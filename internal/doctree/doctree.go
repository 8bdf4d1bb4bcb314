package doctree

// Kind identifies which variant a Node holds.
type Kind int

const (
	KindRoot Kind = iota
	KindSection
	KindContent
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindSection:
		return "section"
	case KindContent:
		return "content"
	}
	return "unknown"
}

// Node is one element of a section tree. Exactly one Root exists per
// document; Sections own their children; Content leaves never have children.
type Node struct {
	Kind     Kind
	Level    int     // Heading level 1-6 (sections only)
	Heading  string  // Full heading markup (sections only)
	Text     string  // Verbatim markup (content only)
	Children []*Node // Sections and content leaves, in document order
}

// NewRoot returns an empty root node.
func NewRoot() *Node {
	return &Node{Kind: KindRoot}
}

// NewSection returns an open section for a heading.
func NewSection(level int, heading string) *Node {
	return &Node{Kind: KindSection, Level: level, Heading: heading}
}

// NewContent returns a content leaf.
func NewContent(text string) *Node {
	return &Node{Kind: KindContent, Text: text}
}

// Append adds child as the last child of n.
func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}

// Sections returns the direct Section children of n.
func (n *Node) Sections() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == KindSection {
			out = append(out, c)
		}
	}
	return out
}

// TocEntry is one table-of-contents node. A synthetic level-0 entry with
// empty text roots the structure.
type TocEntry struct {
	Level    int
	Text     string
	AnchorID string
	Children []*TocEntry
}
