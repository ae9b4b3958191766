package site

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
)

// Site is an assembled, validated site configuration. It has no setters and
// every accessor returns a copy.
type Site struct {
	identity   Identity
	locales    Locales
	extensions []Extension
	preset     Preset
	theme      ThemeConfig
	links      LinkPolicy
}

func (s *Site) Identity() Identity { return s.identity }

func (s *Site) Locales() Locales { return cloneLocales(s.locales) }

// Extensions returns the extension descriptors in declaration order.
func (s *Site) Extensions() []Extension { return cloneExtensions(s.extensions) }

func (s *Site) Preset() Preset { return clonePreset(s.preset) }

func (s *Site) Theme() ThemeConfig { return cloneTheme(s.theme) }

func (s *Site) LinkPolicy() LinkPolicy { return s.links }

// BaseURL is the canonical URL joined with the base path, always ending in a slash.
func (s *Site) BaseURL() string {
	return strings.TrimSuffix(s.identity.URL, "/") + s.identity.BasePath
}

// Link resolves a site-relative path against the canonical URL and base path.
func (s *Site) Link(path string) string {
	joined, err := url.JoinPath(s.identity.URL, s.identity.BasePath, path)
	if err != nil {
		return s.BaseURL() + strings.TrimPrefix(path, "/")
	}
	return joined
}

func cloneLocales(l Locales) Locales {
	l.Supported = append([]string(nil), l.Supported...)
	return l
}

func cloneExtensions(in []Extension) []Extension {
	if in == nil {
		return nil
	}
	out := make([]Extension, len(in))
	for i, e := range in {
		out[i] = Extension{Name: e.Name}
		if e.Options != nil {
			out[i].Options, _ = cloneValue(e.Options).(map[string]any)
		}
	}
	return out
}

func clonePreset(p Preset) Preset {
	o := p.Options
	if o.Docs != nil {
		d := *o.Docs
		o.Docs = &d
	}
	if o.Blog != nil {
		b := *o.Blog
		o.Blog = &b
	}
	if o.Theme != nil {
		t := *o.Theme
		o.Theme = &t
	}
	if o.Unknown != nil {
		o.Unknown, _ = cloneValue(o.Unknown).(map[string]any)
	}
	p.Options = o
	return p
}

func cloneTheme(t ThemeConfig) ThemeConfig {
	if t.HeadTags != nil {
		tags := make([]HeadTag, len(t.HeadTags))
		for i, h := range t.HeadTags {
			tags[i] = HeadTag{TagName: h.TagName, Attributes: cloneStrings(h.Attributes)}
		}
		t.HeadTags = tags
	}
	t.Navbar.Items = append([]NavItem(nil), t.Navbar.Items...)
	return t
}

func cloneStrings(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// cloneValue deep-copies the map and slice shapes produced by YAML, TOML and
// JSON decoders. Maps with non-string keys (yaml.v3 yields map[any]any for
// `{1: a}`) are normalized to map[string]any so every hand-off encoder
// accepts them. Scalars are returned as is.
func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = cloneValue(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = cloneValue(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case map[string]string:
		return cloneStrings(t)
	case []string:
		return append([]string(nil), t...)
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, e := range t {
			out[i], _ = cloneValue(e).(map[string]any)
		}
		return out
	case nil:
		return nil
	}
	return cloneReflect(reflect.ValueOf(v))
}

// cloneReflect covers the remaining container kinds. Other maps become
// map[string]any and slices or arrays become []any.
func cloneReflect(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = cloneValue(iter.Value().Interface())
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return append([]byte(nil), rv.Bytes()...)
		}
		fallthrough
	case reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = cloneValue(rv.Index(i).Interface())
		}
		return out
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return cloneValue(rv.Elem().Interface())
	default:
		return rv.Interface()
	}
}
