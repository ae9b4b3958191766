package hugo

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	siteerrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/site"
)

const editURL = "https://github.com/org/repo/tree/main/"

func testSite(t *testing.T) *site.Site {
	t.Helper()
	s, err := site.Assemble(
		site.Identity{
			Title:    "Docs",
			Tagline:  "Documentation that ships with the server",
			Favicon:  "img/favicon.ico",
			URL:      "https://example.org",
			BasePath: "/docs-site/",
		},
		site.Locales{Default: "en", Supported: []string{"en", "de"}},
		[]site.Extension{
			{Name: "tailwind", Options: map[string]any{"config": "./tailwind.config.js"}},
			{Name: "github.com/org/hugo-mod"},
		},
		site.Preset{Name: "classic", Options: site.PresetOptions{
			Docs:  &site.DocsOptions{SidebarPath: "./sidebars.ts", EditURL: editURL},
			Blog:  &site.BlogOptions{ShowReadingTime: true},
			Theme: &site.ThemeOptions{CustomCSS: "./src/css/custom.css"},
		}},
		site.ThemeConfig{
			Image: "img/social-card.jpg",
			HeadTags: []site.HeadTag{{TagName: "script", Attributes: map[string]string{
				"src":   "https://plausible.io/js/script.js",
				"defer": "true",
			}}},
			Navbar: site.Navbar{
				Title: "Docs",
				Logo:  site.Logo{Alt: "Logo", Src: "img/logo.svg"},
				Items: []site.NavItem{
					{Type: site.NavItemDocSidebar, SidebarID: "mainSidebar", Label: "Getting Started", Position: site.PositionLeft},
					{Href: "/docs/config/", Label: "Config", Position: site.PositionRight},
					{Href: "https://github.com/org/repo", Label: "GitHub", Position: site.PositionRight},
				},
			},
			Footer: site.Footer{Style: site.FooterDark, Copyright: "© 2024 Example"},
			Prism:  site.Prism{Theme: "github", DarkTheme: "dracula"},
		},
		site.WithLinkPolicy(site.LinkPolicy{OnBrokenLinks: site.BrokenLinkThrow, OnBrokenMarkdownLinks: site.BrokenLinkWarn}),
	)
	require.NoError(t, err)
	return s
}

// generic round-trips a document through YAML so golden and actual compare
// with the same concrete types.
func generic(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, yaml.Unmarshal(data, &m))
	return m
}

func TestHugoConfigGolden(t *testing.T) {
	actual, err := Marshal(testSite(t), FormatYAML)
	require.NoError(t, err)

	golden := filepath.Join("testdata", "hugo.golden.yaml")
	if os.Getenv("UPDATE_GOLDEN") == "1" {
		require.NoError(t, os.WriteFile(golden, actual, 0o600))
		return
	}
	// #nosec G304 - test file
	want, err := os.ReadFile(golden)
	require.NoError(t, err)
	assert.Equal(t, generic(t, want), generic(t, actual),
		"hugo.yaml mismatch; run UPDATE_GOLDEN=1 go test ./internal/hugo -run TestHugoConfigGolden to accept")
}

func TestRender_Deterministic(t *testing.T) {
	s := testSite(t)
	a, err := Marshal(s, FormatYAML)
	require.NoError(t, err)
	b, err := Marshal(s, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestRender_MinimalSite(t *testing.T) {
	s, err := site.Assemble(
		site.Identity{Title: "Tiny", URL: "https://tiny.dev", BasePath: "/"},
		site.Locales{Default: "fr", Supported: []string{"fr"}},
		nil,
		site.Preset{Name: "classic"},
		site.ThemeConfig{},
	)
	require.NoError(t, err)

	doc := Render(s)
	assert.Equal(t, "https://tiny.dev/", doc["baseURL"])
	assert.Equal(t, "fr", doc["defaultContentLanguage"])
	assert.NotContains(t, doc, "menu")
	assert.NotContains(t, doc, "module")

	highlight := doc["markup"].(map[string]any)["highlight"].(map[string]any)
	assert.Equal(t, DefaultHighlightStyle, highlight["style"])

	params := doc["params"].(map[string]any)
	assert.Equal(t, map[string]any{"style": "light"}, params["footer"])
	assert.NotContains(t, params, "brokenLinks")
	assert.NotContains(t, params, "docs")
	assert.Empty(t, params["plugins"])

	lang := doc["languages"].(map[string]any)["fr"].(map[string]any)
	assert.Equal(t, "français", lang["languageName"])
}

func TestRender_WithParamsOverrides(t *testing.T) {
	doc := Render(testSite(t), WithParams(ParamsFromFlags(map[string]string{
		"footer.style": "light",
		"search":       "true",
	})))
	params := doc["params"].(map[string]any)
	assert.Equal(t, "light", params["footer"].(map[string]any)["style"])
	assert.Equal(t, "© 2024 Example", params["footer"].(map[string]any)["copyright"], "deep merge keeps siblings")
	assert.Equal(t, "true", params["search"])
}

func TestParamsFromFlags(t *testing.T) {
	got := ParamsFromFlags(map[string]string{
		"ui.navbar_logo": "false",
		"ui.theme":       "dark",
		"a":              "scalar",
		"a.b":            "nested",
	})
	assert.Equal(t, map[string]any{
		"ui": map[string]any{"navbar_logo": "false", "theme": "dark"},
		"a":  map[string]any{"b": "nested"},
	}, got)
}

func TestMergeParams(t *testing.T) {
	dst := map[string]any{"a": map[string]any{"x": 1, "y": 2}, "list": []string{"keep"}}
	mergeParams(dst, map[string]any{"a": map[string]any{"y": 3}, "list": []string{"new"}, "b": map[string]any{"z": 4}})
	assert.Equal(t, map[string]any{
		"a":    map[string]any{"x": 1, "y": 3},
		"list": []string{"new"},
		"b":    map[string]any{"z": 4},
	}, dst)
}

func TestMenuEntries_LinksWithSameLabelStayDistinct(t *testing.T) {
	theme := site.ThemeConfig{Navbar: site.Navbar{Items: []site.NavItem{
		{Href: "/docs/a/", Label: "Guide", Position: site.PositionLeft},
		{Href: "/docs/b/", Label: "Guide", Position: site.PositionLeft},
	}}}
	s, err := site.Assemble(
		site.Identity{Title: "Tiny", URL: "https://tiny.dev", BasePath: "/"},
		site.Locales{Default: "en", Supported: []string{"en"}},
		nil,
		site.Preset{Name: "classic"},
		theme,
	)
	require.NoError(t, err)

	entries := menuEntries(s, s.Theme().Navbar.Items)
	require.Len(t, entries, 2)
	assert.Equal(t, "nav-0", entries[0]["identifier"])
	assert.Equal(t, "nav-1", entries[1]["identifier"])
	assert.Equal(t, "https://tiny.dev/docs/b/", entries[1]["url"])
}

func TestMenuWeights(t *testing.T) {
	assert.Equal(t, 10, menuWeight(0, site.PositionLeft))
	assert.Equal(t, 1020, menuWeight(1, site.PositionRight))
	assert.Less(t, menuWeight(9, site.PositionLeft), menuWeight(0, site.PositionRight))
}

type writeRecorder struct {
	metrics.NoopRecorder
	formats []string
}

func (r *writeRecorder) IncConfigWritten(format string) { r.formats = append(r.formats, format) }

func TestWrite_AllFormats(t *testing.T) {
	s := testSite(t)
	for _, format := range Formats() {
		t.Run(string(format), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "site")
			rec := &writeRecorder{}
			path, err := Write(s, dir, format, WithRecorder(rec))
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "hugo."+string(format)), path)
			assert.Equal(t, []string{string(format)}, rec.formats)
			assert.NoFileExists(t, path+".tmp")

			// #nosec G304 - test file
			data, err := os.ReadFile(path)
			require.NoError(t, err)

			var doc map[string]any
			switch format {
			case FormatYAML:
				require.NoError(t, yaml.Unmarshal(data, &doc))
			case FormatTOML:
				require.NoError(t, toml.Unmarshal(data, &doc))
			case FormatJSON:
				require.NoError(t, json.Unmarshal(data, &doc))
			}
			assert.Equal(t, "Docs", doc["title"])
			assert.Equal(t, "https://example.org/docs-site/", doc["baseURL"])
			menu := doc["menu"].(map[string]any)["main"].([]any)
			assert.Len(t, menu, 3)
		})
	}
}

func TestWrite_UnsupportedFormatWritesNothing(t *testing.T) {
	dir := t.TempDir()
	_, err := Write(testSite(t), dir, Format("ini"))
	require.Error(t, err)
	assert.True(t, siteerrors.IsCategory(err, siteerrors.CategoryBuild))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFormat_FileName(t *testing.T) {
	assert.Equal(t, "hugo.toml", FormatTOML.FileName())
}

type lockedRecorder struct {
	metrics.NoopRecorder
	mu      sync.Mutex
	written map[string]int
}

func (r *lockedRecorder) IncConfigWritten(format string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.written[format]++
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	rec := &lockedRecorder{written: map[string]int{}}
	paths, err := WriteAll(context.Background(), testSite(t), dir,
		[]Format{FormatTOML, FormatYAML, FormatTOML}, WithRecorder(rec))
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "hugo.toml"),
		filepath.Join(dir, "hugo.yaml"),
		filepath.Join(dir, "hugo.toml"),
	}, paths)
	assert.Equal(t, map[string]int{"toml": 1, "yaml": 1}, rec.written)
}

func TestWriteAll_StopsOnError(t *testing.T) {
	_, err := WriteAll(context.Background(), testSite(t), t.TempDir(), []Format{FormatYAML, "ini"})
	require.Error(t, err)
	assert.True(t, siteerrors.IsCategory(err, siteerrors.CategoryBuild))
}
