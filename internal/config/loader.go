// Package config reads site declarations from YAML, TOML or JSON files and
// assembles them into a *site.Site.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	siteerrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Loader turns declaration files into assembled sites.
type Loader struct {
	now      func() time.Time
	recorder metrics.Recorder
	logger   *slog.Logger
	envFiles []string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithClock sets the clock used for the {{year}} placeholder.
func WithClock(now func() time.Time) LoaderOption {
	return func(l *Loader) { l.now = now }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) LoaderOption {
	return func(l *Loader) { l.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) { l.logger = logger }
}

// WithEnvFiles replaces the list of dotenv files consulted before expansion.
func WithEnvFiles(files ...string) LoaderOption {
	return func(l *Loader) { l.envFiles = files }
}

// NewLoader creates a Loader with the process clock, no metrics and the default logger.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		now:      time.Now,
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
		envFiles: defaultEnvFiles,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads, expands, decodes and assembles the declaration at path.
func Load(path string) (*site.Site, error) {
	return NewLoader().Load(path)
}

// Load reads, expands, decodes and assembles the declaration at path.
func (l *Loader) Load(path string) (*site.Site, error) {
	start := time.Now()
	s, err := l.load(path)
	l.recorder.ObserveAssembleDuration(time.Since(start))
	l.record(path, s, err, time.Since(start))
	return s, err
}

func (l *Loader) load(path string) (*site.Site, error) {
	loadEnvFiles(l.logger, l.envFiles)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, siteerrors.ConfigNotFound(path)
		}
		return nil, siteerrors.FileSystemError("read", path, err)
	}

	expanded := os.ExpandEnv(string(data))
	s, err := l.decode([]byte(expanded), FormatFromPath(path))
	if err != nil {
		var se *siteerrors.SiteError
		if !errors.As(err, &se) {
			return nil, siteerrors.ConfigDecode(path, err)
		}
		return nil, se.WithContext("path", path)
	}
	return s, nil
}

// Decode assembles a declaration already held in memory. No environment
// expansion takes place.
func (l *Loader) Decode(data []byte, format Format) (*site.Site, error) {
	start := time.Now()
	s, err := l.decode(data, format)
	if err != nil {
		var se *siteerrors.SiteError
		if !errors.As(err, &se) {
			err = siteerrors.ConfigDecode("", err)
		}
	}
	l.recorder.ObserveAssembleDuration(time.Since(start))
	l.record("", s, err, time.Since(start))
	return s, err
}

func (l *Loader) decode(data []byte, format Format) (*site.Site, error) {
	f, err := decodeFile(data, format)
	if err != nil {
		return nil, err
	}
	return l.assemble(f)
}

func (l *Loader) assemble(f *File) (*site.Site, error) {
	res, err := NormalizeFile(f, l.now())
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		l.logger.Warn("config normalization", "warning", w)
	}
	applyDefaults(f)

	preset, err := presetFromFile(f.Preset)
	if err != nil {
		return nil, err
	}
	return site.Assemble(f.identity(), f.I18n, f.Plugins, preset, f.ThemeConfig,
		site.WithLinkPolicy(f.linkPolicy()))
}

func (l *Loader) record(path string, s *site.Site, err error, elapsed time.Duration) {
	ms := float64(elapsed.Microseconds()) / 1000
	switch {
	case err == nil:
		l.recorder.IncAssembly(metrics.OutcomeSuccess)
		theme := s.Theme()
		l.logger.Debug("Assembled site configuration",
			logfields.Path(path),
			logfields.Outcome(string(metrics.OutcomeSuccess)),
			logfields.Preset(s.Preset().Name),
			logfields.Locale(s.Locales().Default),
			logfields.Extensions(len(s.Extensions())),
			logfields.NavItems(len(theme.Navbar.Items)),
			logfields.DurationMS(ms))
	case errors.Is(err, siteerrors.ErrInvalidConfiguration):
		l.recorder.IncAssembly(metrics.OutcomeInvalid)
		l.logger.Error("Site configuration rejected",
			logfields.Path(path),
			logfields.Outcome(string(metrics.OutcomeInvalid)),
			logfields.Violations(len(siteerrors.Violations(err))),
			logfields.Error(err))
	default:
		l.recorder.IncAssembly(metrics.OutcomeError)
		l.logger.Error("Site configuration could not be loaded",
			logfields.Path(path),
			logfields.Outcome(string(metrics.OutcomeError)),
			logfields.Error(err))
	}
}
