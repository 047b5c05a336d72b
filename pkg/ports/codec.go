package ports

import (
	"io"

	"github.com/espalier-ui/espalier/pkg/markup"
)

// Parser builds a document tree from raw markup. The returned root is a
// synthetic container node; its children are the top-level elements of the
// input.
type Parser interface {
	Parse(r io.Reader) (*markup.Node, error)
}

// Serializer writes a document tree back out as markup, preserving
// attribute insertion order.
type Serializer interface {
	Serialize(w io.Writer, root *markup.Node) error
}
