package cookie

import "context"

type contextKey struct{ name string }

// WithContext stores a verified payload for the cookie name.
func WithContext(ctx context.Context, name, payload string) context.Context {
	return context.WithValue(ctx, contextKey{name: name}, payload)
}

// FromContext returns the verified payload stored by Middleware for the
// cookie name. ok is false when the cookie was absent or did not verify.
func FromContext(ctx context.Context, name string) (payload string, ok bool) {
	if ctx == nil {
		return "", false
	}
	payload, ok = ctx.Value(contextKey{name: name}).(string)
	return payload, ok
}
