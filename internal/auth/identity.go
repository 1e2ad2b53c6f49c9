// Package auth models the signed-in user. Backends never look the user up
// themselves: they are handed a Resolver and ask it for the identity of the
// current call.
package auth

import (
	"context"
	"errors"
)

// ErrUnauthorized is returned when an operation needs a signed-in user and
// there is none.
var ErrUnauthorized = errors.New("not signed in")

// Identity is the signed-in user as reported by the identity provider.
type Identity struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

// MockIdentity is the user signed in by development mode.
var MockIdentity = Identity{
	UID:         "mock-dev-user-001",
	DisplayName: "Dev Developer",
	Email:       "dev@pytutor.ai",
	PhotoURL:    "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
}

// Resolver yields the identity an operation runs as.
type Resolver interface {
	// Identity returns ErrUnauthorized when nobody is signed in.
	Identity(ctx context.Context) (Identity, error)
}

type contextKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored by WithIdentity.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok && id.UID != ""
}

// ContextResolver resolves the identity attached to the request context by
// the authentication middleware.
type ContextResolver struct{}

func (ContextResolver) Identity(ctx context.Context) (Identity, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return Identity{}, ErrUnauthorized
	}
	return id, nil
}
