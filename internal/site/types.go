package site

// Identity names the site and anchors every generated link.
type Identity struct {
	Title    string `yaml:"title" toml:"title"`
	Tagline  string `yaml:"tagline,omitempty" toml:"tagline,omitempty"`
	Favicon  string `yaml:"favicon,omitempty" toml:"favicon,omitempty"`
	URL      string `yaml:"url" toml:"url"`
	BasePath string `yaml:"base_path" toml:"base_path"`
}

// Locales lists the languages the site is built for.
type Locales struct {
	Default   string   `yaml:"default" toml:"default"`
	Supported []string `yaml:"supported" toml:"supported"`
}

// Extension is an opaque plugin descriptor. Only its identity and position in
// the extension list matter here; Options are passed to the builder untouched.
type Extension struct {
	Name    string         `yaml:"name" toml:"name"`
	Options map[string]any `yaml:"options,omitempty" toml:"options,omitempty"`
}

// Preset selects a named bundle of builder defaults and overrides parts of it.
type Preset struct {
	Name    string        `yaml:"name" toml:"name"`
	Options PresetOptions `yaml:"options" toml:"options"`
}

// Recognized preset option keys.
const (
	PresetOptionDocs  = "docs"
	PresetOptionBlog  = "blog"
	PresetOptionTheme = "theme"
)

// RecognizedPresetOptions lists the option keys a preset accepts, in canonical order.
var RecognizedPresetOptions = []string{PresetOptionDocs, PresetOptionBlog, PresetOptionTheme}

// PresetOptions overrides preset defaults. A nil section means "builder default".
// Unknown holds option keys outside the recognized set; any entry there is rejected.
type PresetOptions struct {
	Docs    *DocsOptions   `yaml:"docs,omitempty" toml:"docs,omitempty"`
	Blog    *BlogOptions   `yaml:"blog,omitempty" toml:"blog,omitempty"`
	Theme   *ThemeOptions  `yaml:"theme,omitempty" toml:"theme,omitempty"`
	Unknown map[string]any `yaml:"-" toml:"-"`
}

type DocsOptions struct {
	SidebarPath string `yaml:"sidebar_path,omitempty" toml:"sidebar_path,omitempty"`
	EditURL     string `yaml:"edit_url,omitempty" toml:"edit_url,omitempty"`
}

type BlogOptions struct {
	ShowReadingTime bool   `yaml:"show_reading_time,omitempty" toml:"show_reading_time,omitempty"`
	EditURL         string `yaml:"edit_url,omitempty" toml:"edit_url,omitempty"`
}

type ThemeOptions struct {
	CustomCSS string `yaml:"custom_css,omitempty" toml:"custom_css,omitempty"`
}

// ThemeConfig is the presentation configuration of the theme.
type ThemeConfig struct {
	Image    string    `yaml:"image,omitempty" toml:"image,omitempty"`
	HeadTags []HeadTag `yaml:"head_tags,omitempty" toml:"head_tags,omitempty"`
	Navbar   Navbar    `yaml:"navbar" toml:"navbar"`
	Footer   Footer    `yaml:"footer" toml:"footer"`
	Prism    Prism     `yaml:"prism" toml:"prism"`
}

// HeadTag is one tag injected verbatim into the head of every generated page.
type HeadTag struct {
	TagName    string            `yaml:"tag_name" toml:"tag_name"`
	Attributes map[string]string `yaml:"attributes,omitempty" toml:"attributes,omitempty"`
}

type Navbar struct {
	Title string    `yaml:"title,omitempty" toml:"title,omitempty"`
	Logo  Logo      `yaml:"logo" toml:"logo"`
	Items []NavItem `yaml:"items,omitempty" toml:"items,omitempty"`
}

type Logo struct {
	Alt string `yaml:"alt,omitempty" toml:"alt,omitempty"`
	Src string `yaml:"src,omitempty" toml:"src,omitempty"`
}

// NavItemType is the variant tag of a navigation item.
type NavItemType string

const (
	NavItemDocSidebar NavItemType = "docSidebar"
	NavItemLink       NavItemType = "default"
)

// Position places a navigation item in the navbar.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

// Valid reports whether p is a known position.
func (p Position) Valid() bool {
	return p == PositionLeft || p == PositionRight
}

// NavItem is either a documentation sidebar reference (SidebarID) or a plain
// link (Href). Exactly one of the two is set on an assembled item.
type NavItem struct {
	Type      NavItemType `yaml:"type,omitempty" toml:"type,omitempty"`
	Label     string      `yaml:"label" toml:"label"`
	Position  Position    `yaml:"position,omitempty" toml:"position,omitempty"`
	SidebarID string      `yaml:"sidebar_id,omitempty" toml:"sidebar_id,omitempty"`
	Href      string      `yaml:"href,omitempty" toml:"href,omitempty"`
}

// Kind reports the variant implied by the populated field.
func (n NavItem) Kind() NavItemType {
	if n.SidebarID != "" {
		return NavItemDocSidebar
	}
	return NavItemLink
}

// FooterStyle selects the footer color scheme.
type FooterStyle string

const (
	FooterDark  FooterStyle = "dark"
	FooterLight FooterStyle = "light"
)

// Valid reports whether s is a known footer style.
func (s FooterStyle) Valid() bool {
	return s == FooterDark || s == FooterLight
}

type Footer struct {
	Style     FooterStyle `yaml:"style,omitempty" toml:"style,omitempty"`
	Copyright string      `yaml:"copyright,omitempty" toml:"copyright,omitempty"`
}

// Prism is the code-highlighting theme pair.
type Prism struct {
	Theme     string `yaml:"theme,omitempty" toml:"theme,omitempty"`
	DarkTheme string `yaml:"dark_theme,omitempty" toml:"dark_theme,omitempty"`
}

// BrokenLinkPolicy tells the builder how to react to a broken link.
type BrokenLinkPolicy string

const (
	BrokenLinkIgnore BrokenLinkPolicy = "ignore"
	BrokenLinkLog    BrokenLinkPolicy = "log"
	BrokenLinkWarn   BrokenLinkPolicy = "warn"
	BrokenLinkThrow  BrokenLinkPolicy = "throw"
)

// Valid reports whether p is a known policy. The empty policy means builder default.
func (p BrokenLinkPolicy) Valid() bool {
	switch p {
	case "", BrokenLinkIgnore, BrokenLinkLog, BrokenLinkWarn, BrokenLinkThrow:
		return true
	default:
		return false
	}
}

// LinkPolicy groups the broken-link reactions.
type LinkPolicy struct {
	OnBrokenLinks         BrokenLinkPolicy `yaml:"on_broken_links,omitempty" toml:"on_broken_links,omitempty"`
	OnBrokenMarkdownLinks BrokenLinkPolicy `yaml:"on_broken_markdown_links,omitempty" toml:"on_broken_markdown_links,omitempty"`
}
