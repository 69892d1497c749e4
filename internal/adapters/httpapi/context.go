package httpapi

import "context"

type usernameKey struct{}

// WithUsername stores the resolved username on the request context.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey{}, username)
}

// UsernameFromContext returns the username placed by RequireUser.
func UsernameFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(usernameKey{}).(string)
	return v, ok && v != ""
}
