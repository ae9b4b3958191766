package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// presetFromFile converts the raw option map into typed options. Keys outside
// the recognized set are carried in Unknown for assembly to reject.
func presetFromFile(p PresetFile) (site.Preset, error) {
	out := site.Preset{Name: p.Name}
	for key, raw := range p.Options {
		var err error
		switch key {
		case site.PresetOptionDocs:
			out.Options.Docs = &site.DocsOptions{}
			err = remarshal(raw, out.Options.Docs)
		case site.PresetOptionBlog:
			out.Options.Blog = &site.BlogOptions{}
			err = remarshal(raw, out.Options.Blog)
		case site.PresetOptionTheme:
			out.Options.Theme = &site.ThemeOptions{}
			err = remarshal(raw, out.Options.Theme)
		default:
			if out.Options.Unknown == nil {
				out.Options.Unknown = map[string]any{}
			}
			out.Options.Unknown[key] = raw
		}
		if err != nil {
			return site.Preset{}, fmt.Errorf("preset.options.%s: %w", key, err)
		}
	}
	return out, nil
}

// remarshal decodes a generic decoded value into a typed struct using its yaml tags.
// Both the YAML and TOML decoders hand over plain maps, so one path serves both.
func remarshal(in, out any) error {
	if in == nil {
		return nil
	}
	data, err := yaml.Marshal(in)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}
