package icon

import (
	_ "embed"
	"sort"
	"strings"
)

const svgNamespace = "http://www.w3.org/2000/svg"

//go:embed assets/oauth.path
var oauthPath string

var oauthIcon = NewComponent("oauth",
	Attributes{
		"width":  "256",
		"height": "256",
		"style":  "color: currentcolor",
		"class":  "h-full w-full",
	},
	Attributes{
		"viewBox": "0 0 256 256",
		"xmlns":   svgNamespace,
	},
	&Node{
		Tag: "svg",
		Attrs: Attributes{
			"width":   "256px",
			"height":  "256px",
			"viewBox": "0 0 128 128",
			"fill":    "currentColor",
			"role":    "img",
			"style":   "display: inline-block; vertical-align: middle",
			"xmlns":   svgNamespace,
		},
		Children: []*Node{{
			Tag:   "g",
			Attrs: Attributes{"fill": "currentColor"},
			Children: []*Node{{
				Tag:   "path",
				Attrs: Attributes{"fill": "currentColor", "d": strings.TrimSpace(oauthPath)},
			}},
		}},
	},
)

// OAuth renders the OAuth 2.0 server badge.
func OAuth(attrs Attributes) *Node {
	return oauthIcon.Render(attrs)
}

var registry = map[string]*Component{
	oauthIcon.Name(): oauthIcon,
}

// Lookup returns the named component.
func Lookup(name string) (*Component, bool) {
	c, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Names lists the available components.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
