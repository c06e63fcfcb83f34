// Package errs provides structured error types and helpers for the fiaas
// logging facade.
package errs

import (
	"errors"
	"strconv"
	"strings"
)

// Code identifies an error category.
type Code string

const (
	// CodeMissingVariable indicates a required environment variable is unset.
	CodeMissingVariable Code = "missing_env_var"
	// CodeInvalidToken indicates a value outside its closed token set.
	CodeInvalidToken Code = "invalid_env_var"
	// CodeAlreadyInitialized indicates a second logger installation attempt.
	CodeAlreadyInitialized Code = "already_initialized"
)

// E captures structured error information produced by the facade.
type E struct {
	Code        Code
	Variable    string
	Value       string
	Message     string
	Remediation string

	cause error
}

// Option configures an error envelope.
type Option func(*E)

// New constructs an error envelope for the given code.
func New(code Code, opts ...Option) *E {
	e := &E{Code: code}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// WithVariable records the environment variable the error concerns.
func WithVariable(name string) Option {
	trimmed := strings.TrimSpace(name)
	return func(e *E) {
		e.Variable = trimmed
	}
}

// WithValue captures the offending value.
func WithValue(value string) Option {
	return func(e *E) {
		e.Value = value
	}
}

// WithMessage attaches a human-readable message to the error.
func WithMessage(message string) Option {
	trimmed := strings.TrimSpace(message)
	return func(e *E) {
		e.Message = trimmed
	}
}

// WithRemediation attaches remediation guidance to the error.
func WithRemediation(remediation string) Option {
	trimmed := strings.TrimSpace(remediation)
	return func(e *E) {
		e.Remediation = trimmed
	}
}

// WithCause sets the underlying cause error.
func WithCause(err error) Option {
	return func(e *E) {
		e.cause = err
	}
}

func (e *E) Error() string {
	if e == nil {
		return "<nil>"
	}
	var parts []string

	code := strings.TrimSpace(string(e.Code))
	if code == "" {
		code = "unknown"
	}
	parts = append(parts, "code="+code)

	if e.Variable != "" {
		parts = append(parts, "variable="+e.Variable)
	}
	if e.Value != "" {
		parts = append(parts, "value="+strconv.Quote(e.Value))
	}
	if e.Message != "" {
		parts = append(parts, "message="+strconv.Quote(e.Message))
	}
	if e.Remediation != "" {
		parts = append(parts, "remediation="+strconv.Quote(e.Remediation))
	}
	if e.cause != nil {
		parts = append(parts, "cause="+strconv.Quote(e.cause.Error()))
	}

	return strings.Join(parts, " ")
}

func (e *E) Unwrap() error { return e.cause }

// CodeOf extracts the error code from err, or empty when err carries no
// envelope.
func CodeOf(err error) Code {
	var e *E
	if errors.As(err, &e) && e != nil {
		return e.Code
	}
	return ""
}

// IsAlreadyInitialized reports whether err marks a double-initialization
// attempt, the only recoverable error kind.
func IsAlreadyInitialized(err error) bool {
	return CodeOf(err) == CodeAlreadyInitialized
}

// IsConfig reports whether err is a configuration error; policy for these
// is to print a diagnostic and terminate.
func IsConfig(err error) bool {
	code := CodeOf(err)
	return code == CodeMissingVariable || code == CodeInvalidToken
}
