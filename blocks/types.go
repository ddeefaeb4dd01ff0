package blocks

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-richtext/inline"
)

// Block type tags understood by the built-in flavors. The tag space is open:
// registries accept any string, and nodes with unknown tags fail the render
// only when no render function was registered for them.
const (
	TypeParagraph        = "paragraph"
	TypeHeading1         = "heading_1"
	TypeHeading2         = "heading_2"
	TypeHeading3         = "heading_3"
	TypeBulletedListItem = "bulleted_list_item"
	TypeNumberedListItem = "numbered_list_item"
	TypeToDo             = "to_do"
	TypeToggle           = "toggle"
	TypeQuote            = "quote"
	TypeCallout          = "callout"
	TypeDivider          = "divider"
	TypeCode             = "code"
	TypeImage            = "image"
	TypeBookmark         = "bookmark"
	TypeTable            = "table"
	TypeTableRow         = "table_row"
	TypeTableCell        = "table_cell"
	TypeChildPage        = "child_page"
)

// Node is one block of the document tree: a type tag, optional styled text,
// ordered children, and a bag of raw source attributes (checkbox state, code
// language, asset URL, ...). Nodes are constructed once per render invocation
// and never mutated; contexts are derived from them, not stored on them.
type Node struct {
	ID       uuid.UUID
	Type     string
	Text     []inline.Run
	Children []*Node
	Attrs    map[string]any
}

// NewNode builds a node with the given type tag and children.
func NewNode(blockType string, children ...*Node) *Node {
	return &Node{Type: blockType, Children: children}
}

// WithText returns a copy of the node carrying the given styled runs.
func (n *Node) WithText(runs ...inline.Run) *Node {
	clone := *n
	clone.Text = runs
	return &clone
}

// WithAttrs returns a copy of the node carrying the given attributes.
func (n *Node) WithAttrs(attrs map[string]any) *Node {
	clone := *n
	clone.Attrs = attrs
	return &clone
}
