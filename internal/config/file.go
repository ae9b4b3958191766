package config

import "git.home.luguber.info/inful/docsite/internal/site"

// File is the on-disk shape of a site declaration (YAML, TOML or JSON).
type File struct {
	Title                 string `yaml:"title" toml:"title"`
	Tagline               string `yaml:"tagline,omitempty" toml:"tagline,omitempty"`
	Favicon               string `yaml:"favicon,omitempty" toml:"favicon,omitempty"`
	URL                   string `yaml:"url" toml:"url"`
	BasePath              string `yaml:"base_path" toml:"base_path"`
	OnBrokenLinks         string `yaml:"on_broken_links,omitempty" toml:"on_broken_links,omitempty"`
	OnBrokenMarkdownLinks string `yaml:"on_broken_markdown_links,omitempty" toml:"on_broken_markdown_links,omitempty"`

	I18n        site.Locales     `yaml:"i18n" toml:"i18n"`
	Plugins     []site.Extension `yaml:"plugins,omitempty" toml:"plugins,omitempty"`
	Preset      PresetFile       `yaml:"preset" toml:"preset"`
	ThemeConfig site.ThemeConfig `yaml:"theme_config" toml:"theme_config"`
}

// PresetFile keeps preset options as a raw map so unrecognized keys survive
// decoding and can be reported by assembly.
type PresetFile struct {
	Name    string         `yaml:"name,omitempty" toml:"name,omitempty"`
	Options map[string]any `yaml:"options,omitempty" toml:"options,omitempty"`
}

func (f *File) identity() site.Identity {
	return site.Identity{
		Title:    f.Title,
		Tagline:  f.Tagline,
		Favicon:  f.Favicon,
		URL:      f.URL,
		BasePath: f.BasePath,
	}
}

func (f *File) linkPolicy() site.LinkPolicy {
	return site.LinkPolicy{
		OnBrokenLinks:         site.BrokenLinkPolicy(f.OnBrokenLinks),
		OnBrokenMarkdownLinks: site.BrokenLinkPolicy(f.OnBrokenMarkdownLinks),
	}
}
