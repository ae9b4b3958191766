package icon

import (
	"bytes"
	"io"
	"sort"
	"unicode"

	"golang.org/x/net/html"
)

// Attributes is an open bag of presentation attributes.
type Attributes map[string]string

// Node is one element of a rendered vector graphic.
type Node struct {
	Tag      string
	Attrs    Attributes
	Children []*Node
}

// Attr returns the value of the named attribute, or "".
func (n *Node) Attr(key string) string {
	if n == nil {
		return ""
	}
	return n.Attrs[key]
}

// Equal reports structural equality: same tags, attributes and children in order.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Tag != o.Tag || len(n.Attrs) != len(o.Attrs) || len(n.Children) != len(o.Children) {
		return false
	}
	for k, v := range n.Attrs {
		if ov, ok := o.Attrs[k]; !ok || ov != v {
			return false
		}
	}
	for i := range n.Children {
		if !n.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

func (n *Node) clone() *Node {
	c := &Node{Tag: n.Tag, Attrs: make(Attributes, len(n.Attrs))}
	for k, v := range n.Attrs {
		c.Attrs[k] = v
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.clone()
		}
	}
	return c
}

// Render writes the node as markup. Attributes are emitted in sorted order so
// equal trees always serialize to identical bytes.
func (n *Node) Render(w io.Writer) error {
	return html.Render(w, n.htmlNode())
}

// String returns the markup produced by Render.
func (n *Node) String() string {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func (n *Node) htmlNode() *html.Node {
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		if isAttributeName(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	hn := &html.Node{Type: html.ElementNode, Data: n.Tag}
	for _, k := range keys {
		hn.Attr = append(hn.Attr, html.Attribute{Key: k, Val: n.Attrs[k]})
	}
	for _, ch := range n.Children {
		hn.AppendChild(ch.htmlNode())
	}
	return hn
}

// isAttributeName reports whether name is a valid XML name. Anything else
// could break out of the attribute list when rendered.
func isAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == ':' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}
