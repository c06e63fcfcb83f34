package fiaaslog

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

// Handler adapts a Logger to the slog.Handler contract so the facade can be
// installed as the process-wide slog sink.
type Handler struct {
	logger *Logger
	target string
	// attrs holds pre-rendered " key=value" tokens accumulated by WithAttrs.
	attrs string
	// groups is the dot-terminated key prefix accumulated by WithGroup.
	groups string
}

// Handler returns a slog.Handler emitting through the logger, with the
// application name as the default target.
func (l *Logger) Handler() *Handler {
	return &Handler{logger: l, target: l.app}
}

// Named returns a slog.Logger whose records carry the given target name.
func (l *Logger) Named(target string) *slog.Logger {
	h := l.Handler()
	h.target = target
	return slog.New(h)
}

// Enabled reports whether the logger emits records at the given level. slog
// consults this before building a record, short-circuiting disabled calls.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.IsEnabled(severityFromLevel(level))
}

// Handle renders the slog record through the configured formatter.
// Attributes fold into the free-form message as " key=value" tokens so both
// line formats keep their shape.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.groups, a)
		return true
	})

	at := r.Time
	if at.IsZero() {
		at = time.Now()
	}
	h.logger.emit(ctx, at, Record{
		Severity: severityFromLevel(r.Level),
		Target:   h.target,
		Message:  sb.String(),
	})
	return nil
}

// WithAttrs returns a handler that renders the given attributes on every
// record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var sb strings.Builder
	sb.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&sb, h.groups, a)
	}
	next := *h
	next.attrs = sb.String()
	return &next
}

// WithGroup returns a handler that prefixes subsequent attribute keys with
// the group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = h.groups + name + "."
	return &next
}

func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(sb, sub, ga)
		}
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}
