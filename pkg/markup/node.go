package markup

// TextTag is the reserved tag name for character-data nodes. Text nodes are
// produced by parsing adapters and carry their data in the Text field; the
// transformation engine never rewrites them.
const TextTag = "#text"

// Attr is a single name/value pair on a node.
type Attr struct {
	Name  string
	Value string
}

// Node is a mutable element in the document tree.
//
// Attribute names are unique within a node and keep their insertion order,
// so serialized output is stable. Node identity is pointer identity:
// transformers mutate nodes in place and never copy, create, or delete them.
type Node struct {
	// Tag is the element name. Transformers rewrite it to the canonical
	// downstream component tag.
	Tag string

	// Text holds character data when Tag == TextTag, and is empty otherwise.
	Text string

	// Children are the direct child nodes, in document order.
	Children []*Node

	attrs []Attr
}

// New creates an element node with the given tag.
func New(tag string) *Node {
	return &Node{Tag: tag}
}

// NewText creates a character-data node.
func NewText(text string) *Node {
	return &Node{Tag: TextTag, Text: text}
}

// IsText reports whether the node is a character-data node.
func (n *Node) IsText() bool {
	return n.Tag == TextTag
}

// AppendChild adds c as the last child of n.
func (n *Node) AppendChild(c *Node) {
	n.Children = append(n.Children, c)
}

// Attr returns the value of the named attribute and whether it is present.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// AttrOr returns the value of the named attribute, or def when absent.
func (n *Node) AttrOr(name, def string) string {
	if v, ok := n.Attr(name); ok {
		return v
	}
	return def
}

// HasAttr reports whether the named attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// SetAttr sets the named attribute. An existing attribute keeps its position
// in the ordering; a new one is appended.
func (n *Node) SetAttr(name, value string) {
	for i, a := range n.attrs {
		if a.Name == name {
			n.attrs[i].Value = value
			return
		}
	}
	n.attrs = append(n.attrs, Attr{Name: name, Value: value})
}

// DelAttr removes the named attribute, reporting whether it was present.
func (n *Node) DelAttr(name string) bool {
	for i, a := range n.attrs {
		if a.Name == name {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return true
		}
	}
	return false
}

// Attrs returns a copy of the attribute list in insertion order.
func (n *Node) Attrs() []Attr {
	out := make([]Attr, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// AttrLen returns the number of attributes on the node.
func (n *Node) AttrLen() int {
	return len(n.attrs)
}
