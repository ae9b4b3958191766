// Package icon renders fixed vector graphics as node trees, forwarding caller
// presentation attributes to the root element.
package icon

import "strings"

// attributeAliases maps JSX-style attribute names onto their markup names.
var attributeAliases = map[string]string{
	"className": "class",
	"htmlFor":   "for",
}

// Component is a fixed graphic. Defaults are root attributes callers may
// override; intrinsic attributes and the nested children never change.
type Component struct {
	name      string
	defaults  Attributes
	intrinsic Attributes
	children  []*Node
}

// NewComponent declares a component whose root element is an <svg>.
func NewComponent(name string, defaults, intrinsic Attributes, children ...*Node) *Component {
	return &Component{
		name:      name,
		defaults:  defaults,
		intrinsic: intrinsic,
		children:  children,
	}
}

// Name identifies the component.
func (c *Component) Name() string { return c.name }

// Render builds a fresh tree. Root attributes are the defaults, then the
// caller's attributes, then the intrinsic ones. Caller keys that are not
// valid attribute names are dropped. A nil map is accepted.
func (c *Component) Render(attrs Attributes) *Node {
	root := &Node{Tag: "svg", Attrs: make(Attributes, len(c.defaults)+len(attrs)+len(c.intrinsic))}
	for k, v := range c.defaults {
		root.Attrs[k] = v
	}
	for k, v := range attrs {
		k = strings.TrimSpace(k)
		if !isAttributeName(k) {
			continue
		}
		if alias, ok := attributeAliases[k]; ok {
			k = alias
		}
		root.Attrs[k] = v
	}
	for k, v := range c.intrinsic {
		root.Attrs[k] = v
	}
	if len(c.children) > 0 {
		root.Children = make([]*Node, len(c.children))
		for i, ch := range c.children {
			root.Children[i] = ch.clone()
		}
	}
	return root
}
