package site

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/language"

	siteerrors "git.home.luguber.info/inful/docsite/internal/errors"
)

// Option adjusts assembly inputs that are not part of the five core sections.
type Option func(*Site)

// WithLinkPolicy sets how the builder treats broken links.
func WithLinkPolicy(p LinkPolicy) Option {
	return func(s *Site) { s.links = p }
}

// Assemble builds a Site from its declared parts. Inputs are copied, defaults
// are filled in and the result is validated as a whole. On any violation no
// Site is returned and the error matches errors.ErrInvalidConfiguration.
func Assemble(identity Identity, locales Locales, extensions []Extension, preset Preset, theme ThemeConfig, opts ...Option) (*Site, error) {
	s := &Site{
		identity:   identity,
		locales:    cloneLocales(locales),
		extensions: cloneExtensions(extensions),
		preset:     clonePreset(preset),
		theme:      cloneTheme(theme),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	applyDefaults(s)

	v := &validator{site: s}
	v.validate()
	if len(v.violations) > 0 {
		return nil, siteerrors.InvalidConfiguration(v.violations)
	}
	return s, nil
}

// applyDefaults fills the values the builder would otherwise assume.
func applyDefaults(s *Site) {
	for i := range s.theme.Navbar.Items {
		if s.theme.Navbar.Items[i].Position == "" {
			s.theme.Navbar.Items[i].Position = PositionLeft
		}
	}
	if s.theme.Footer.Style == "" {
		s.theme.Footer.Style = FooterLight
	}
}

// validator collects every violation instead of stopping at the first one.
type validator struct {
	site       *Site
	violations []siteerrors.Violation
}

func (v *validator) fail(field, format string, args ...any) {
	v.violations = append(v.violations, siteerrors.Violation{Field: field, Reason: fmt.Sprintf(format, args...)})
}

func (v *validator) validate() {
	v.validateIdentity()
	v.validateLocales()
	v.validateExtensions()
	v.validatePreset()
	v.validateTheme()
	v.validateLinkPolicy()
}

func (v *validator) validateIdentity() {
	id := v.site.identity
	if strings.TrimSpace(id.Title) == "" {
		v.fail("title", "must not be empty")
	}
	if id.URL == "" {
		v.fail("url", "must not be empty")
	} else if u, err := url.Parse(id.URL); err != nil || !u.IsAbs() || u.Host == "" {
		v.fail("url", "%q is not an absolute URL", id.URL)
	} else if u.Path != "" && u.Path != "/" {
		v.fail("url", "%q must not carry a path; use base_path", id.URL)
	} else if u.RawQuery != "" || u.ForceQuery || u.Fragment != "" || u.User != nil {
		v.fail("url", "%q must not carry a query, fragment or user info", id.URL)
	}
	switch {
	case id.BasePath == "":
		v.fail("base_path", "must not be empty")
	case !strings.HasPrefix(id.BasePath, "/") || !strings.HasSuffix(id.BasePath, "/"):
		v.fail("base_path", "%q must start and end with /", id.BasePath)
	case strings.Contains(id.BasePath, "//"):
		v.fail("base_path", "%q must not contain empty segments", id.BasePath)
	}
}

func (v *validator) validateLocales() {
	l := v.site.locales
	if len(l.Supported) == 0 {
		v.fail("i18n.supported", "at least one locale is required")
	}
	seen := make(map[string]bool, len(l.Supported))
	for i, tag := range l.Supported {
		field := fmt.Sprintf("i18n.supported[%d]", i)
		if _, err := language.Parse(tag); err != nil {
			v.fail(field, "%q is not a valid language tag", tag)
		}
		if seen[tag] {
			v.fail(field, "duplicate locale %q", tag)
		}
		seen[tag] = true
	}
	if l.Default == "" {
		v.fail("i18n.default", "must not be empty")
	} else if !seen[l.Default] {
		v.fail("i18n.default", "%q is not a supported locale", l.Default)
	}
}

func (v *validator) validateExtensions() {
	for i, e := range v.site.extensions {
		if strings.TrimSpace(e.Name) == "" {
			v.fail(fmt.Sprintf("plugins[%d].name", i), "must not be empty")
		}
	}
}

func (v *validator) validatePreset() {
	p := v.site.preset
	if strings.TrimSpace(p.Name) == "" {
		v.fail("preset.name", "must not be empty")
	}
	keys := make([]string, 0, len(p.Options.Unknown))
	for k := range p.Options.Unknown {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v.fail("preset.options."+k, "unrecognized option (allowed: %s)", strings.Join(RecognizedPresetOptions, "|"))
	}
}

func (v *validator) validateTheme() {
	t := v.site.theme
	for i, h := range t.HeadTags {
		if strings.TrimSpace(h.TagName) == "" {
			v.fail(fmt.Sprintf("theme_config.head_tags[%d].tag_name", i), "must not be empty")
		}
	}
	for i, item := range t.Navbar.Items {
		v.validateNavItem(i, item)
	}
	if !t.Footer.Style.Valid() {
		v.fail("theme_config.footer.style", "%q is not a footer style (allowed: dark|light)", t.Footer.Style)
	}
}

func (v *validator) validateNavItem(i int, item NavItem) {
	field := fmt.Sprintf("theme_config.navbar.items[%d]", i)
	hasSidebar, hasHref := item.SidebarID != "", item.Href != ""
	if hasSidebar == hasHref {
		v.fail(field, "exactly one of sidebar_id or href must be set")
	} else if item.Type != "" && item.Type != item.Kind() {
		v.fail(field+".type", "%q does not match an item with %s set", item.Type, populated(item))
	}
	if strings.TrimSpace(item.Label) == "" {
		v.fail(field+".label", "must not be empty")
	}
	if !item.Position.Valid() {
		v.fail(field+".position", "%q is not a position (allowed: left|right)", item.Position)
	}
}

func populated(item NavItem) string {
	if item.Kind() == NavItemDocSidebar {
		return "sidebar_id"
	}
	return "href"
}

func (v *validator) validateLinkPolicy() {
	p := v.site.links
	if !p.OnBrokenLinks.Valid() {
		v.fail("on_broken_links", "%q is not a policy (allowed: ignore|log|warn|throw)", p.OnBrokenLinks)
	}
	if !p.OnBrokenMarkdownLinks.Valid() {
		v.fail("on_broken_markdown_links", "%q is not a policy (allowed: ignore|log|warn|throw)", p.OnBrokenMarkdownLinks)
	}
}
