package hugo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	siteerrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/site"
)

// Format selects the encoding of the written Hugo configuration.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Formats lists the supported output formats.
func Formats() []Format { return []Format{FormatYAML, FormatTOML, FormatJSON} }

// FileName is the file Hugo looks for in the given format.
func (f Format) FileName() string { return "hugo." + string(f) }

// Marshal renders s and encodes the document in the given format.
func Marshal(s *site.Site, format Format, opts ...Option) ([]byte, error) {
	return encode(Render(s, opts...), format)
}

func encode(doc map[string]any, format Format) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		return yaml.Marshal(doc)
	case FormatTOML:
		return toml.Marshal(doc)
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported hugo config format %q", format)
	}
}

// Write renders s into dir as hugo.<format> and returns the written path.
// Nothing is written when encoding fails.
func Write(s *site.Site, dir string, format Format, opts ...Option) (string, error) {
	format = normalizeFormat(format)
	o := newOptions(opts)
	data, err := encode(Render(s, opts...), format)
	if err != nil {
		return "", siteerrors.BuildHandoffError(err).WithContext("format", string(format))
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", siteerrors.FileSystemError("mkdir", dir, err)
	}
	path := filepath.Join(dir, format.FileName())
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return "", siteerrors.FileSystemError("write", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", siteerrors.FileSystemError("rename", path, err)
	}

	o.recorder.IncConfigWritten(string(format))
	slog.Info("Generated Hugo configuration", logfields.Path(path), logfields.Format(string(format)))
	return path, nil
}

// WriteAll writes one file per format concurrently and returns the paths in
// the order the formats were given. Repeated formats are written once.
func WriteAll(ctx context.Context, s *site.Site, dir string, formats []Format, opts ...Option) ([]string, error) {
	written := make(map[Format]string, len(formats))
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, format := range uniqueFormats(formats) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path, err := Write(s, dir, format, opts...)
			if err != nil {
				return err
			}
			mu.Lock()
			written[format] = path
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	paths := make([]string, len(formats))
	for i, f := range formats {
		paths[i] = written[normalizeFormat(f)]
	}
	return paths, nil
}

func uniqueFormats(formats []Format) []Format {
	seen := make(map[Format]bool, len(formats))
	out := make([]Format, 0, len(formats))
	for _, f := range formats {
		f = normalizeFormat(f)
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

func normalizeFormat(f Format) Format {
	if f == "" {
		return FormatYAML
	}
	return f
}
