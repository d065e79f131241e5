package model

import "context"

// Scope identifies the user a request acts for.
type Scope struct {
	UserID string
}

type scopeCtxKey struct{}

// SetScopeToContext returns a copy of ctx carrying sc.
func SetScopeToContext(ctx context.Context, sc Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, sc)
}

// GetScopeFromContext returns the scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	sc, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return sc, ok && sc.UserID != ""
}
