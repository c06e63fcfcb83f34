package fiaaslog

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/finn-no/fiaas-logging-go/internal/format"
)

// Timestamps render RFC 3339 with millisecond precision in UTC.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is a single log event handed to the Logger.
type Record struct {
	Severity Severity
	// Target names the subsystem that produced the record. Empty falls
	// back to the application name.
	Target string
	// Message is the already-formatted record text.
	Message string
}

// Logger renders enabled records onto the process standard streams. It is
// immutable after construction and safe for concurrent use.
type Logger struct {
	app string
	env Environment
	min Severity

	// mu serializes stream writes so each rendered line lands intact.
	mu     sync.Mutex
	stdout io.Writer
	stderr io.Writer
}

// New returns a Logger writing to the process standard streams.
func New(app string, env Environment, min Severity) *Logger {
	return newLogger(app, env, min, os.Stdout, os.Stderr)
}

func newLogger(app string, env Environment, min Severity, stdout, stderr io.Writer) *Logger {
	return &Logger{app: app, env: env, min: min, stdout: stdout, stderr: stderr}
}

// App returns the configured application name.
func (l *Logger) App() string { return l.app }

// Environment returns the configured deployment environment.
func (l *Logger) Environment() Environment { return l.env }

// MinSeverity returns the configured minimum severity.
func (l *Logger) MinSeverity() Severity { return l.min }

// IsEnabled reports whether records of the given severity are emitted.
func (l *Logger) IsEnabled(s Severity) bool {
	return s <= l.min
}

// Emit renders the record and writes it as one line to standard error for
// error severity, standard output otherwise. Disabled severities are a
// no-op. Emission is fire-and-forget: stream write failures are swallowed.
func (l *Logger) Emit(ctx context.Context, rec Record) {
	l.emit(ctx, time.Now(), rec)
}

func (l *Logger) emit(ctx context.Context, at time.Time, rec Record) {
	if !l.IsEnabled(rec.Severity) {
		return
	}
	timestamp := at.UTC().Format(timestampLayout)
	target := rec.Target
	if target == "" {
		target = l.app
	}

	var line string
	switch l.env {
	case EnvLocal:
		line = format.Local(timestamp, rec.Severity.String(), target, rec.Message)
	default:
		encoded, err := format.Structured(timestamp, rec.Severity.String(), target, rec.Message, l.app, format.Thread(ctx))
		if err != nil {
			return
		}
		line = encoded
	}

	w := l.stdout
	if rec.Severity == SeverityError {
		w = l.stderr
	}
	l.mu.Lock()
	_, _ = io.WriteString(w, line+"\n")
	l.mu.Unlock()
}

// WithGoroutineName returns a context whose records carry the given name in
// their thread field instead of the default "unnamed".
func WithGoroutineName(ctx context.Context, name string) context.Context {
	return format.WithGoroutineName(ctx, name)
}
