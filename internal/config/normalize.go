package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// YearPlaceholder in the footer copyright is replaced by the current year.
const YearPlaceholder = "{{year}}"

// NormalizationResult captures adjustments & warnings from normalization pass.
type NormalizationResult struct{ Warnings []string }

// NormalizeFile canonicalizes enumerations and trims scalar fields in place.
// Unknown enumeration values are left untouched so assembly reports them.
func NormalizeFile(f *File, now time.Time) (*NormalizationResult, error) {
	if f == nil {
		return nil, fmt.Errorf("config nil")
	}
	res := &NormalizationResult{}

	f.Title = strings.TrimSpace(f.Title)
	f.URL = strings.TrimSpace(f.URL)
	f.BasePath = strings.TrimSpace(f.BasePath)
	f.I18n.Default = strings.TrimSpace(f.I18n.Default)
	for i, l := range f.I18n.Supported {
		f.I18n.Supported[i] = strings.TrimSpace(l)
	}

	f.OnBrokenLinks = normalizePolicy("on_broken_links", f.OnBrokenLinks, res)
	f.OnBrokenMarkdownLinks = normalizePolicy("on_broken_markdown_links", f.OnBrokenMarkdownLinks, res)

	for i := range f.ThemeConfig.Navbar.Items {
		normalizeNavItem(i, &f.ThemeConfig.Navbar.Items[i], res)
	}

	footer := &f.ThemeConfig.Footer
	if s := NormalizeFooterStyle(string(footer.Style)); s != "" && s != footer.Style {
		res.Warnings = append(res.Warnings, warnChanged("theme_config.footer.style", footer.Style, s))
		footer.Style = s
	}
	footer.Copyright = strings.ReplaceAll(footer.Copyright, YearPlaceholder, strconv.Itoa(now.Year()))

	return res, nil
}

func normalizeNavItem(i int, item *site.NavItem, res *NormalizationResult) {
	field := fmt.Sprintf("theme_config.navbar.items[%d]", i)
	item.SidebarID = strings.TrimSpace(item.SidebarID)
	item.Href = strings.TrimSpace(item.Href)
	if p := NormalizePosition(string(item.Position)); p != "" && p != item.Position {
		res.Warnings = append(res.Warnings, warnChanged(field+".position", item.Position, p))
		item.Position = p
	}
	if t := NormalizeNavItemType(string(item.Type)); t != "" && t != item.Type {
		res.Warnings = append(res.Warnings, warnChanged(field+".type", item.Type, t))
		item.Type = t
	}
}

func normalizePolicy(field, raw string, res *NormalizationResult) string {
	p := NormalizeBrokenLinkPolicy(raw)
	if p == "" {
		return raw
	}
	if string(p) != raw {
		res.Warnings = append(res.Warnings, warnChanged(field, raw, p))
	}
	return string(p)
}

// NormalizePosition returns the canonical position, or "" if unknown.
func NormalizePosition(raw string) site.Position {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "left":
		return site.PositionLeft
	case "right":
		return site.PositionRight
	default:
		return ""
	}
}

// NormalizeFooterStyle returns the canonical footer style, or "" if unknown.
func NormalizeFooterStyle(raw string) site.FooterStyle {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "dark":
		return site.FooterDark
	case "light":
		return site.FooterLight
	default:
		return ""
	}
}

// NormalizeNavItemType returns the canonical nav item type, or "" if unknown.
func NormalizeNavItemType(raw string) site.NavItemType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "docsidebar", "doc_sidebar", "sidebar":
		return site.NavItemDocSidebar
	case "default", "link", "href":
		return site.NavItemLink
	default:
		return ""
	}
}

// NormalizeBrokenLinkPolicy returns the canonical policy, or "" if unknown.
func NormalizeBrokenLinkPolicy(raw string) site.BrokenLinkPolicy {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ignore":
		return site.BrokenLinkIgnore
	case "log":
		return site.BrokenLinkLog
	case "warn":
		return site.BrokenLinkWarn
	case "throw", "error":
		return site.BrokenLinkThrow
	default:
		return ""
	}
}

func warnChanged(field string, from, to interface{}) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}
