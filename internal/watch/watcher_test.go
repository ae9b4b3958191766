package watch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/config"
	siteerrors "git.home.luguber.info/inful/docsite/internal/errors"
	"git.home.luguber.info/inful/docsite/internal/site"
)

type result struct {
	site *site.Site
	err  error
}

func writeDeclaration(t *testing.T, path, title string) {
	t.Helper()
	data := []byte("title: " + title + "\nurl: https://example.org\nbase_path: /\ni18n: {default: en}\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func next(t *testing.T, results <-chan result) result {
	t.Helper()
	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
		return result{}
	}
}

func startWatcher(t *testing.T, path string) (<-chan result, func()) {
	t.Helper()
	results := make(chan result, 16)
	loader := config.NewLoader(
		config.WithEnvFiles(),
		config.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	w, err := New(path, func(s *site.Site, err error) { results <- result{s, err} },
		WithDebounce(20*time.Millisecond),
		WithLoader(loader.Load),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	stop := func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("watcher did not stop")
		}
	}
	return results, stop
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsite.yaml")
	writeDeclaration(t, path, "First")

	results, stop := startWatcher(t, path)
	defer stop()

	r := next(t, results)
	require.NoError(t, r.err)
	assert.Equal(t, "First", r.site.Identity().Title)

	writeDeclaration(t, path, "Second")
	r = next(t, results)
	require.NoError(t, r.err)
	assert.Equal(t, "Second", r.site.Identity().Title)
}

func TestWatcher_ReportsInvalidDeclaration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsite.yaml")
	writeDeclaration(t, path, "First")

	results, stop := startWatcher(t, path)
	defer stop()
	require.NoError(t, next(t, results).err)

	require.NoError(t, os.WriteFile(path, []byte("title: Broken\nurl: not-a-url\nbase_path: /\ni18n: {default: en}\n"), 0o600))
	r := next(t, results)
	require.Error(t, r.err)
	assert.Nil(t, r.site)
	assert.True(t, errors.Is(r.err, siteerrors.ErrInvalidConfiguration))
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docsite.yaml")
	writeDeclaration(t, path, "First")

	results, stop := startWatcher(t, path)
	defer stop()
	require.NoError(t, next(t, results).err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	select {
	case r := <-results:
		t.Fatalf("unexpected reload: %+v", r)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "absent", "docsite.yaml"), func(*site.Site, error) {})
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.Path()))
	assert.Error(t, w.Run(context.Background()))
}
