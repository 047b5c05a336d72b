// Package html parses raw markup into markup.Node trees and serializes them
// back, using the golang.org/x/net/html tokenizer. There is no goal to parse
// the way a browser does (no implied <html>/<body>, no content reparenting):
// the tree should stay as close to the author's source as possible so the
// transformation engine sees exactly what was written.
package html

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/espalier-ui/espalier/pkg/markup"
)

// RootTag is the tag of the synthetic container node returned by Parse.
const RootTag = "#document"

// Void elements never have children and are serialized without a closing
// tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Codec implements ports.Parser and ports.Serializer for HTML-shaped markup.
type Codec struct{}

// NewCodec creates a codec.
func NewCodec() *Codec {
	return &Codec{}
}

// Parse reads markup from r and returns the document tree under a synthetic
// root node. Attribute order is preserved as written; duplicate attribute
// names keep the first occurrence (map semantics).
func (c *Codec) Parse(r io.Reader) (*markup.Node, error) {
	z := html.NewTokenizer(r)
	root := markup.New(RootTag)
	stack := []*markup.Node{root}

	top := func() *markup.Node { return stack[len(stack)-1] }

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, fmt.Errorf("tokenize markup: %w", err)
			}
			return root, nil

		case html.TextToken:
			text := string(z.Text())
			if strings.TrimSpace(text) == "" && top() == root {
				// Keep inter-element whitespace inside elements, drop it at
				// the top level where it is pure formatting.
				continue
			}
			top().AppendChild(markup.NewText(text))

		case html.StartTagToken, html.SelfClosingTagToken:
			n := parseTag(z)
			top().AppendChild(n)
			if tt == html.StartTagToken && !voidElements[n.Tag] {
				stack = append(stack, n)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			// Pop to the nearest matching open element; unmatched end tags
			// are dropped rather than failing the document.
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].Tag == tag {
					stack = stack[:i]
					break
				}
			}

		case html.CommentToken, html.DoctypeToken:
			// Comments and doctypes carry no author intent the engine acts
			// on; they are not round-tripped.
		}
	}
}

func parseTag(z *html.Tokenizer) *markup.Node {
	name, hasAttr := z.TagName()
	n := markup.New(string(name))
	for hasAttr {
		var key, val []byte
		key, val, hasAttr = z.TagAttr()
		if !n.HasAttr(string(key)) {
			n.SetAttr(string(key), string(val))
		}
	}
	return n
}

// Serialize writes the tree rooted at root to w. The synthetic root itself
// is not written.
func (c *Codec) Serialize(w io.Writer, root *markup.Node) error {
	for _, child := range root.Children {
		if err := writeNode(w, child); err != nil {
			return err
		}
	}
	return nil
}

func writeNode(w io.Writer, n *markup.Node) error {
	if n.IsText() {
		_, err := io.WriteString(w, html.EscapeString(n.Text))
		return err
	}

	var sb strings.Builder
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	for _, a := range n.Attrs() {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(a.Value))
		sb.WriteByte('"')
	}

	if voidElements[n.Tag] && len(n.Children) == 0 {
		sb.WriteString("/>")
		_, err := io.WriteString(w, sb.String())
		return err
	}

	sb.WriteByte('>')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}

	for _, child := range n.Children {
		if err := writeNode(w, child); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", n.Tag)
	return err
}
