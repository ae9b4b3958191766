package errors

import stdErrors "errors"

// Convenience functions for common error patterns

// Violation is one failed configuration rule, addressed by its field path.
type Violation struct {
	Field  string
	Reason string
}

func (v Violation) Error() string {
	return v.Field + ": " + v.Reason
}

// Config errors

// InvalidConfiguration builds the single rejection error for a set of violations.
// The violations are joined as the cause so each one stays inspectable.
func InvalidConfiguration(violations []Violation) *SiteError {
	errs := make([]error, 0, len(violations))
	fields := make([]string, 0, len(violations))
	for _, v := range violations {
		errs = append(errs, v)
		fields = append(fields, v.Field)
	}
	return Wrap(stdErrors.Join(errs...), CategoryConfig, SeverityFatal, ErrInvalidConfiguration.Message).
		WithContext("violations", fields)
}

// Violations returns the individual violations carried by an InvalidConfiguration error.
func Violations(err error) []Violation {
	var out []Violation
	var se *SiteError
	if !stdErrors.As(err, &se) || se.Cause == nil {
		return nil
	}
	if joined, ok := se.Cause.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			var v Violation
			if stdErrors.As(e, &v) {
				out = append(out, v)
			}
		}
	}
	return out
}

func ConfigNotFound(path string) *SiteError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigDecode(path string, cause error) *SiteError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration could not be decoded").
		WithContext("path", path)
}

func ValidationFailed(field, reason string) *SiteError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Output errors

func FileSystemError(operation, path string, cause error) *SiteError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "filesystem operation failed").
		WithContext("operation", operation).
		WithContext("path", path)
}

func BuildHandoffError(cause error) *SiteError {
	return Wrap(cause, CategoryBuild, SeverityFatal, "builder configuration could not be produced")
}

// Internal errors

func InternalError(message string, cause error) *SiteError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}
