package hugo

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// DefaultHighlightStyle is used when the site declares no code theme.
const DefaultHighlightStyle = "github"

// Option customizes rendering and writing.
type Option func(*options)

type options struct {
	params   map[string]any
	recorder metrics.Recorder
}

// WithParams deep-merges user overrides into the generated params block.
func WithParams(params map[string]any) Option {
	return func(o *options) { o.params = params }
}

// WithRecorder sets the recorder notified for every written file.
func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) { o.recorder = r }
}

func newOptions(opts []Option) *options {
	o := &options{recorder: metrics.NoopRecorder{}}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Render builds the Hugo configuration document for s.
func Render(s *site.Site, opts ...Option) map[string]any {
	o := newOptions(opts)
	id := s.Identity()
	locales := s.Locales()
	theme := s.Theme()

	// Phase 1: core
	params := map[string]any{}
	root := map[string]any{
		"title":                          id.Title,
		"baseURL":                        s.BaseURL(),
		"defaultContentLanguage":         locales.Default,
		"defaultContentLanguageInSubdir": false,
		"languages":                      languages(locales),
		"markup": map[string]any{
			"goldmark":  map[string]any{"renderer": map[string]any{"unsafe": true}},
			"highlight": map[string]any{"style": highlightStyle(theme.Prism.Theme), "noClasses": false},
		},
		"params": params,
	}

	// Phase 2: params from identity, preset and theme
	addIdentityParams(s, params)
	addPresetParams(s.Preset(), params)
	addThemeParams(theme, params)
	addLinkPolicyParams(s.LinkPolicy(), params)
	params["plugins"] = pluginParams(s.Extensions())

	// Phase 3: user overrides (deep merge)
	mergeParams(params, o.params)

	// Phase 4: menu
	if entries := menuEntries(s, theme.Navbar.Items); len(entries) > 0 {
		root["menu"] = map[string]any{"main": entries}
	}

	// Phase 5: module imports
	if imports := moduleImports(s.Extensions()); len(imports) > 0 {
		root["module"] = map[string]any{"imports": imports}
	}
	return root
}

func addIdentityParams(s *site.Site, params map[string]any) {
	id := s.Identity()
	if id.Tagline != "" {
		params["description"] = id.Tagline
	}
	if id.Favicon != "" {
		params["favicon"] = id.Favicon
	}
}

func addPresetParams(p site.Preset, params map[string]any) {
	params["preset"] = p.Name
	if d := p.Options.Docs; d != nil {
		docs := map[string]any{}
		if d.SidebarPath != "" {
			docs["sidebarPath"] = d.SidebarPath
		}
		if d.EditURL != "" {
			docs["editURL"] = d.EditURL
			params["editURL"] = map[string]any{"enable": true, "base": d.EditURL}
		}
		params["docs"] = docs
	}
	if b := p.Options.Blog; b != nil {
		blog := map[string]any{"showReadingTime": b.ShowReadingTime}
		if b.EditURL != "" {
			blog["editURL"] = b.EditURL
		}
		params["blog"] = blog
		params["readingTime"] = b.ShowReadingTime
	}
	if t := p.Options.Theme; t != nil && t.CustomCSS != "" {
		params["customCSS"] = []string{t.CustomCSS}
	}
}

func addThemeParams(theme site.ThemeConfig, params map[string]any) {
	if theme.Image != "" {
		params["images"] = []string{theme.Image}
	}
	if len(theme.HeadTags) > 0 {
		tags := make([]map[string]any, 0, len(theme.HeadTags))
		for _, h := range theme.HeadTags {
			tag := map[string]any{"tagName": h.TagName}
			if len(h.Attributes) > 0 {
				attrs := make(map[string]any, len(h.Attributes))
				for k, v := range h.Attributes {
					attrs[k] = v
				}
				tag["attributes"] = attrs
			}
			tags = append(tags, tag)
		}
		params["headTags"] = tags
	}

	navbar := map[string]any{}
	if theme.Navbar.Title != "" {
		navbar["title"] = theme.Navbar.Title
	}
	if logo := theme.Navbar.Logo; logo.Src != "" {
		navbar["logo"] = map[string]any{"alt": logo.Alt, "src": logo.Src}
	}
	if len(navbar) > 0 {
		params["navbar"] = navbar
	}

	footer := map[string]any{"style": string(theme.Footer.Style)}
	if theme.Footer.Copyright != "" {
		footer["copyright"] = theme.Footer.Copyright
	}
	params["footer"] = footer

	if theme.Prism.DarkTheme != "" {
		params["highlight"] = map[string]any{"darkStyle": theme.Prism.DarkTheme}
	}
}

func addLinkPolicyParams(p site.LinkPolicy, params map[string]any) {
	links := map[string]any{}
	if p.OnBrokenLinks != "" {
		links["onBrokenLinks"] = string(p.OnBrokenLinks)
	}
	if p.OnBrokenMarkdownLinks != "" {
		links["onBrokenMarkdownLinks"] = string(p.OnBrokenMarkdownLinks)
	}
	if len(links) > 0 {
		params["brokenLinks"] = links
	}
}

// pluginParams lists extensions in declaration order. Options are passed
// through untouched.
func pluginParams(exts []site.Extension) []map[string]any {
	out := make([]map[string]any, 0, len(exts))
	for _, e := range exts {
		entry := map[string]any{"name": e.Name}
		if len(e.Options) > 0 {
			entry["options"] = e.Options
		}
		out = append(out, entry)
	}
	return out
}

// moduleImports turns extensions named by a module path (containing a slash)
// into Hugo module imports, keeping declaration order.
func moduleImports(exts []site.Extension) []map[string]any {
	var imports []map[string]any
	for _, e := range exts {
		if strings.Contains(e.Name, "/") {
			imports = append(imports, map[string]any{"path": e.Name})
		}
	}
	return imports
}

func languages(l site.Locales) map[string]any {
	out := make(map[string]any, len(l.Supported))
	for i, tag := range l.Supported {
		out[tag] = map[string]any{
			"languageCode": tag,
			"languageName": languageName(tag),
			"weight":       i + 1,
		}
	}
	return out
}

// languageName is the locale's name in its own language ("Deutsch" for de).
func languageName(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	if name := display.Self.Name(t); name != "" {
		return name
	}
	return tag
}

func highlightStyle(theme string) string {
	if theme == "" {
		return DefaultHighlightStyle
	}
	return theme
}
