package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyPath       = "path"
	KeyFormat     = "format"
	KeyLocale     = "locale"
	KeyPreset     = "preset"
	KeyExtensions = "extensions"
	KeyNavItems   = "nav_items"
	KeyViolations = "violations"
	KeyDurationMS = "duration_ms"
	KeyOutcome    = "outcome"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Locale(l string) slog.Attr       { return slog.String(KeyLocale, l) }
func Preset(name string) slog.Attr    { return slog.String(KeyPreset, name) }
func Extensions(n int) slog.Attr      { return slog.Int(KeyExtensions, n) }
func NavItems(n int) slog.Attr        { return slog.Int(KeyNavItems, n) }
func Violations(n int) slog.Attr      { return slog.Int(KeyViolations, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Outcome(o string) slog.Attr      { return slog.String(KeyOutcome, o) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
