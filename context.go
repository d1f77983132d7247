package typefence

import "context"

// ---- Check-time context options ----

type contextKey int

const _ctxKeyFailFast contextKey = iota

// WithFailFast returns a child context that marks fail-fast checking
// behavior. It is consumed by Signature.Check and wrapped calls alongside the
// FailFast option.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current check should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
