package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SiteError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryConfig, SeverityFatal, "configuration invalid"),
			expected: "config (fatal): configuration invalid",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("file not found"), CategoryConfig, SeverityFatal, "failed to load config"),
			expected: "config (fatal): failed to load config: file not found",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.err.Error())
		})
	}
}

func TestSiteError_WithContext(t *testing.T) {
	err := New(CategoryFileSystem, SeverityWarning, "write failed").
		WithContext("path", "/tmp/out").
		WithContext("operation", "write")

	require.NotNil(t, err.Context)
	assert.Equal(t, "/tmp/out", err.Context["path"])
	assert.Equal(t, "write", err.Context["operation"])
}

func TestIsCategory(t *testing.T) {
	configErr := New(CategoryConfig, SeverityFatal, "config error")
	fsErr := New(CategoryFileSystem, SeverityWarning, "fs error")
	wrapped := fmt.Errorf("outer: %w", configErr)
	standardErr := fmt.Errorf("standard error")

	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		expected bool
	}{
		{"config error matches config category", configErr, CategoryConfig, true},
		{"config error doesn't match filesystem category", configErr, CategoryFileSystem, false},
		{"filesystem error matches filesystem category", fsErr, CategoryFileSystem, true},
		{"wrapped config error still matches", wrapped, CategoryConfig, true},
		{"standard error doesn't match any category", standardErr, CategoryConfig, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, IsCategory(test.err, test.category))
		})
	}
}

func TestGetCategory(t *testing.T) {
	assert.Equal(t, CategoryConfig, GetCategory(ConfigNotFound("x.yaml")))
	assert.Equal(t, CategoryInternal, GetCategory(fmt.Errorf("plain")))
}

func TestInvalidConfiguration(t *testing.T) {
	err := InvalidConfiguration([]Violation{
		{Field: "locales.default", Reason: `"fr" is not a supported locale`},
		{Field: "themeConfig.navbar.items[0]", Reason: "exactly one of sidebarId or href must be set"},
	})

	assert.True(t, stdErrors.Is(err, ErrInvalidConfiguration))
	assert.True(t, stdErrors.Is(fmt.Errorf("startup: %w", err), ErrInvalidConfiguration))
	assert.Equal(t, CategoryConfig, err.Category)
	assert.Equal(t, SeverityFatal, err.Severity)
	assert.Equal(t, []string{"locales.default", "themeConfig.navbar.items[0]"}, err.Context["violations"])

	violations := Violations(err)
	require.Len(t, violations, 2)
	assert.Equal(t, "locales.default", violations[0].Field)
	assert.Contains(t, err.Error(), "exactly one of sidebarId or href must be set")
}

func TestInvalidConfiguration_OtherErrorsDoNotMatch(t *testing.T) {
	assert.False(t, stdErrors.Is(ConfigNotFound("x.yaml"), ErrInvalidConfiguration))
	assert.False(t, stdErrors.Is(FileSystemError("write", "out", fmt.Errorf("denied")), ErrInvalidConfiguration))
	assert.Nil(t, Violations(fmt.Errorf("plain")))
}

func TestConvenienceFunctions(t *testing.T) {
	t.Run("ConfigNotFound", func(t *testing.T) {
		err := ConfigNotFound("/path/to/docsite.yaml")
		assert.Equal(t, CategoryConfig, err.Category)
		assert.Equal(t, SeverityFatal, err.Severity)
		assert.Equal(t, "/path/to/docsite.yaml", err.Context["path"])
	})

	t.Run("FileSystemError", func(t *testing.T) {
		cause := fmt.Errorf("permission denied")
		err := FileSystemError("write", "site/hugo.yaml", cause)
		assert.Equal(t, CategoryFileSystem, err.Category)
		assert.True(t, stdErrors.Is(err, cause))
	})

	t.Run("ValidationFailed", func(t *testing.T) {
		err := ValidationFailed("format", "unsupported value")
		assert.Equal(t, CategoryValidation, err.Category)
		assert.Equal(t, "format", err.Context["field"])
		assert.Equal(t, "unsupported value", err.Context["reason"])
	})
}

func TestCLIErrorAdapter_ExitCodes(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	assert.Equal(t, 0, a.ExitCodeFor(nil))
	assert.Equal(t, 7, a.ExitCodeFor(InvalidConfiguration([]Violation{{Field: "identity.url", Reason: "not absolute"}})))
	assert.Equal(t, 2, a.ExitCodeFor(ValidationFailed("format", "bad")))
	assert.Equal(t, 11, a.ExitCodeFor(FileSystemError("write", "x", fmt.Errorf("boom"))))
	assert.Equal(t, 10, a.ExitCodeFor(InternalError("oops", nil)))
	assert.Equal(t, 1, a.ExitCodeFor(fmt.Errorf("plain")))
}

func TestCLIErrorAdapter_FormatListsViolations(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)
	err := InvalidConfiguration([]Violation{{Field: "identity.url", Reason: "must be absolute"}})

	msg := a.FormatError(err)
	assert.Equal(t, "invalid configuration\n  - identity.url: must be absolute", msg)
	assert.Equal(t, "Error: plain", a.FormatError(fmt.Errorf("plain")))
	assert.Equal(t, "filesystem: filesystem operation failed", a.FormatError(FileSystemError("write", "x", nil)))
}

func TestCLIErrorAdapter_HandleError(t *testing.T) {
	var logBuf, errBuf bytes.Buffer
	a := NewCLIErrorAdapter(false, slog.New(slog.NewTextHandler(&logBuf, nil)))
	a.stderr = &errBuf
	code := -1
	a.exit = func(c int) { code = c }

	a.HandleError(ConfigNotFound("missing.yaml"))

	assert.Equal(t, 7, code)
	assert.Contains(t, errBuf.String(), "configuration file not found")
	assert.Contains(t, logBuf.String(), "category=config")
	assert.Contains(t, logBuf.String(), "path=missing.yaml")
}
