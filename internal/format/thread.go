package format

import (
	"bytes"
	"context"
	"runtime"
	"strconv"
)

type goroutineNameKey struct{}

// WithGoroutineName stores a goroutine name in the context for the thread
// field of structured records.
func WithGoroutineName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, goroutineNameKey{}, name)
}

// GoroutineName returns the name carried by the context, or "unnamed".
func GoroutineName(ctx context.Context) string {
	if ctx != nil {
		if name, ok := ctx.Value(goroutineNameKey{}).(string); ok && name != "" {
			return name
		}
	}
	return "unnamed"
}

// Thread renders the "<name>-<id>" identity of the calling goroutine.
func Thread(ctx context.Context) string {
	return GoroutineName(ctx) + "-" + strconv.FormatUint(goroutineID(), 10)
}

// goroutineID parses the current goroutine id from the runtime stack
// header, which reads "goroutine <id> [<state>]:".
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(buf[:n])
	if len(fields) < 2 {
		return 0
	}
	id, err := strconv.ParseUint(string(fields[1]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
