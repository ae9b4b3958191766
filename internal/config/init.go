package config

import (
	"encoding/json"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// Example returns the declaration of the OAuth 2.0 server documentation site,
// used as the starting point written by Init.
func Example() File {
	return File{
		Title:                 "@jmondi/oauth2-server",
		Tagline:               "Standards-Compliant OAuth 2.0 Server in TypeScript, Utilizing JWT and Proof Key for Code Exchange (PKCE)",
		Favicon:               "img/favicon.ico",
		URL:                   "https://tsoauth2server.com",
		BasePath:              "/",
		OnBrokenLinks:         string(site.BrokenLinkThrow),
		OnBrokenMarkdownLinks: string(site.BrokenLinkWarn),
		I18n:                  site.Locales{Default: "en", Supported: []string{"en"}},
		Plugins:               []site.Extension{{Name: "tailwind"}},
		Preset: PresetFile{
			Name: DefaultPreset,
			Options: map[string]any{
				"docs": map[string]any{
					"sidebar_path": "./sidebars.ts",
					"edit_url":     "https://github.com/jasonraimondi/ts-oauth2-server/tree/main/",
				},
				"blog": map[string]any{
					"show_reading_time": true,
					"edit_url":          "https://github.com/jasonraimondi/ts-oauth2-server/tree/main/",
				},
				"theme": map[string]any{
					"custom_css": "./src/css/custom.css",
				},
			},
		},
		ThemeConfig: site.ThemeConfig{
			Image: "img/oauth2-server-social-card.jpg",
			HeadTags: []site.HeadTag{{
				TagName: "script",
				Attributes: map[string]string{
					"data-domain": "tsoauth2server.com",
					"src":         "https://plausible.io/js/script.js",
					"defer":       "true",
				},
			}},
			Navbar: site.Navbar{
				Title: "ts-oauth2-server",
				Logo:  site.Logo{Alt: "ts-oauth2-server Logo", Src: "img/logo.svg"},
				Items: []site.NavItem{
					{Type: site.NavItemDocSidebar, SidebarID: "mainSidebar", Label: "Getting Started", Position: site.PositionRight},
					{Href: "/docs/authorization_server/configuration/", Label: "Config", Position: site.PositionRight},
					{Href: "https://github.com/jasonraimondi/ts-oauth2-server", Label: "GitHub", Position: site.PositionRight},
					{Href: "https://www.npmjs.com/package/@jmondi/oauth2-server", Label: "NPM", Position: site.PositionRight},
					{Href: "https://jsr.io/@jmondi/oauth2-server", Label: "JSR", Position: site.PositionRight},
				},
			},
			Footer: site.Footer{Style: site.FooterDark, Copyright: "© " + YearPlaceholder + " Jason Raimondi"},
			Prism:  site.Prism{Theme: "github", DarkTheme: "dracula"},
		},
	}
}

// Init writes the example declaration to configPath, encoded by its extension.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	example := Example()
	var (
		data []byte
		err  error
	)
	switch FormatFromPath(configPath) {
	case FormatTOML:
		data, err = toml.Marshal(&example)
	case FormatJSON:
		data, err = marshalJSON(&example)
	default:
		data, err = yaml.Marshal(&example)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// marshalJSON encodes through the YAML tags so the JSON keys match what the
// YAML decoder reads back.
func marshalJSON(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := yaml.Unmarshal(data, &generic); err != nil {
		return nil, err
	}
	out, err := json.MarshalIndent(generic, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
