package auth

import (
	"context"

	"github.com/google/uuid"
)

// Roles known to the API. Users carry exactly one.
const (
	RoleStaff = "STAFF"
	RoleUser  = "USER"
)

// Principal is the authenticated identity resolved once per request by the
// authentication middleware. It is read-only after population.
type Principal struct {
	ID       uuid.UUID
	Username string
	Role     string
	Lang     string
}

// HasRole reports whether the principal carries the given role.
func (p Principal) HasRole(role string) bool {
	return p.Role == role
}

type contextKey struct{}

// WithPrincipal returns a context carrying the resolved principal.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext retrieves the principal resolved for this request, if any.
// Anonymous requests have none.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}
