package notify

import "context"

type contextKey struct{}

// WithStore returns a context that provides s to MustFromContext.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// MustFromContext returns the store provided by WithStore. Calling it on a
// context without a store is a wiring bug and panics.
func MustFromContext(ctx context.Context) *Store {
	s, ok := ctx.Value(contextKey{}).(*Store)
	if !ok || s == nil {
		panic("notify: no notification store in context; wrap the context with notify.WithStore before building views")
	}
	return s
}
