package fiaaslog

import (
	"log/slog"
	"strconv"

	"github.com/finn-no/fiaas-logging-go/errs"
)

// Severity orders log record importance, most severe first.
type Severity int

const (
	// SeverityError marks failures requiring attention.
	SeverityError Severity = iota
	// SeverityWarn marks recoverable anomalies.
	SeverityWarn
	// SeverityInfo marks routine operational events.
	SeverityInfo
	// SeverityDebug marks diagnostic detail.
	SeverityDebug
	// SeverityTrace marks the most verbose diagnostic detail.
	SeverityTrace
)

// LevelTrace is the slog level corresponding to SeverityTrace. slog defines
// no trace level of its own, so the facade follows the ecosystem convention
// of one full step below debug.
const LevelTrace = slog.LevelDebug - 4

var severityNames = [...]string{"ERROR", "WARN", "INFO", "DEBUG", "TRACE"}

var severityTokens = map[string]Severity{
	"error": SeverityError,
	"warn":  SeverityWarn,
	"info":  SeverityInfo,
	"debug": SeverityDebug,
	"trace": SeverityTrace,
}

// String returns the upper-case severity name used in rendered log lines.
func (s Severity) String() string {
	if s < SeverityError || s > SeverityTrace {
		return "UNKNOWN(" + strconv.Itoa(int(s)) + ")"
	}
	return severityNames[s]
}

// Level returns the slog level equivalent to the severity.
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityError:
		return slog.LevelError
	case SeverityWarn:
		return slog.LevelWarn
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityDebug:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// severityFromLevel maps an arbitrary slog level onto the closed severity
// set; levels between two named levels collapse to the less verbose one.
func severityFromLevel(level slog.Level) Severity {
	switch {
	case level >= slog.LevelError:
		return SeverityError
	case level >= slog.LevelWarn:
		return SeverityWarn
	case level >= slog.LevelInfo:
		return SeverityInfo
	case level >= slog.LevelDebug:
		return SeverityDebug
	default:
		return SeverityTrace
	}
}

// ParseSeverity maps a lowercase severity token to its Severity. Matching is
// case-sensitive; anything outside the closed token set is rejected.
func ParseSeverity(token string) (Severity, error) {
	s, ok := severityTokens[token]
	if !ok {
		return SeverityError, errs.New(errs.CodeInvalidToken,
			errs.WithValue(token),
			errs.WithMessage("unrecognized severity token"),
			errs.WithRemediation("use one of error, warn, info, debug, trace"))
	}
	return s, nil
}
