package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormattingIncludesVariableAndValue(t *testing.T) {
	err := New(
		CodeInvalidToken,
		WithVariable("LOG_LEVEL"),
		WithValue("verbose"),
		WithMessage("unrecognized severity token"),
		WithRemediation("use one of error, warn, info, debug, trace"),
	)

	msg := err.Error()
	for _, want := range []string{
		"code=invalid_env_var",
		"variable=LOG_LEVEL",
		`value="verbose"`,
		`message="unrecognized severity token"`,
		`remediation="use one of error, warn, info, debug, trace"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error string %q missing %q", msg, want)
		}
	}
}

func TestNilEnvelopeRendersPlaceholder(t *testing.T) {
	var e *E
	if got := e.Error(); got != "<nil>" {
		t.Errorf("expected <nil>, got %q", got)
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	err := New(CodeMissingVariable, WithVariable("LOG_LEVEL"), WithCause(cause))

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to match the cause")
	}
	if !strings.Contains(err.Error(), `cause="boom"`) {
		t.Errorf("error string %q missing cause", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(CodeAlreadyInitialized)); got != CodeAlreadyInitialized {
		t.Errorf("expected already_initialized, got %q", got)
	}
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("expected empty code for plain error, got %q", got)
	}
	wrapped := fmt.Errorf("context: %w", New(CodeInvalidToken))
	if got := CodeOf(wrapped); got != CodeInvalidToken {
		t.Errorf("expected invalid_env_var through wrapping, got %q", got)
	}
}

func TestKindPredicates(t *testing.T) {
	if !IsAlreadyInitialized(New(CodeAlreadyInitialized)) {
		t.Error("expected IsAlreadyInitialized to match")
	}
	if IsAlreadyInitialized(New(CodeInvalidToken)) {
		t.Error("did not expect IsAlreadyInitialized to match config error")
	}
	if !IsConfig(New(CodeMissingVariable)) || !IsConfig(New(CodeInvalidToken)) {
		t.Error("expected IsConfig to match both configuration codes")
	}
	if IsConfig(New(CodeAlreadyInitialized)) {
		t.Error("did not expect IsConfig to match already_initialized")
	}
}
