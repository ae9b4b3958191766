package hugo

import (
	"fmt"
	"net/url"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// DocsSection is the content section a sidebar nav item points at.
const DocsSection = "docs/"

// Menu weights keep left items ahead of right items while preserving
// declaration order within each side.
const (
	weightStep        = 10
	rightWeightOffset = 1000
)

func menuEntries(s *site.Site, items []site.NavItem) []map[string]any {
	entries := make([]map[string]any, 0, len(items))
	for i, item := range items {
		entry := map[string]any{
			"name":   item.Label,
			"weight": menuWeight(i, item.Position),
			"params": map[string]any{"position": string(item.Position)},
		}
		switch item.Kind() {
		case site.NavItemDocSidebar:
			entry["identifier"] = item.SidebarID
			entry["url"] = s.Link(DocsSection)
		default:
			// Hugo merges entries sharing a name unless they carry distinct identifiers.
			entry["identifier"] = fmt.Sprintf("nav-%d", i)
			entry["url"] = resolveHref(s, item.Href)
		}
		entries = append(entries, entry)
	}
	return entries
}

func menuWeight(i int, p site.Position) int {
	w := (i + 1) * weightStep
	if p == site.PositionRight {
		w += rightWeightOffset
	}
	return w
}

// resolveHref keeps absolute links and roots relative ones at the base URL.
func resolveHref(s *site.Site, href string) string {
	if u, err := url.Parse(href); err == nil && u.IsAbs() {
		return href
	}
	return s.Link(href)
}
