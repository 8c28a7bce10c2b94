package handler

import "github.com/philipp01105/avlog/core"

// ContextName resolves a native context handle to the item name shown in
// front of its lines, e.g. the item_name of an FFmpeg AVClass. It is only
// called for non-zero handles; an empty result adds no header.
type ContextName func(ctx core.Context) string

// prefix returns msg with a "[name] " header when n resolves ctx.
func (n ContextName) prefix(ctx core.Context, msg string) string {
	if n == nil || ctx.IsZero() {
		return msg
	}
	name := n(ctx)
	if name == "" {
		return msg
	}
	return "[" + name + "] " + msg
}

// WithContextName wraps next so that every line whose context resolves
// through name is forwarded with a "[name] " header. A nil name returns
// next unchanged.
func WithContextName(next Sink, name ContextName) Sink {
	if name == nil {
		return next
	}
	return SinkFunc(func(ctx core.Context, level core.Level, msg string) {
		next.Log(ctx, level, name.prefix(ctx, msg))
	})
}
