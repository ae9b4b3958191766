package config

// DefaultApplier applies defaults for a specific declaration domain.
type DefaultApplier interface {
	ApplyDefaults(f *File)
	Domain() string
}

// Defaults used when a declaration omits the field.
const (
	DefaultPreset  = "classic"
	DefaultFavicon = "img/favicon.ico"
)

// IdentityDefaultApplier handles identity defaults.
type IdentityDefaultApplier struct{}

func (IdentityDefaultApplier) Domain() string { return "identity" }

func (IdentityDefaultApplier) ApplyDefaults(f *File) {
	if f.Favicon == "" {
		f.Favicon = DefaultFavicon
	}
}

// PresetDefaultApplier handles preset defaults.
type PresetDefaultApplier struct{}

func (PresetDefaultApplier) Domain() string { return "preset" }

func (PresetDefaultApplier) ApplyDefaults(f *File) {
	if f.Preset.Name == "" {
		f.Preset.Name = DefaultPreset
	}
}

// I18nDefaultApplier fills a single-locale setup from whichever half is present.
type I18nDefaultApplier struct{}

func (I18nDefaultApplier) Domain() string { return "i18n" }

func (I18nDefaultApplier) ApplyDefaults(f *File) {
	if f.I18n.Default != "" && len(f.I18n.Supported) == 0 {
		f.I18n.Supported = []string{f.I18n.Default}
	}
	if f.I18n.Default == "" && len(f.I18n.Supported) == 1 {
		f.I18n.Default = f.I18n.Supported[0]
	}
}

// DefaultAppliers lists the appliers in the order they run.
func DefaultAppliers() []DefaultApplier {
	return []DefaultApplier{IdentityDefaultApplier{}, PresetDefaultApplier{}, I18nDefaultApplier{}}
}

func applyDefaults(f *File) {
	for _, a := range DefaultAppliers() {
		a.ApplyDefaults(f)
	}
}
