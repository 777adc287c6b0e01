package model

import "context"

// ContextManager sets and retrieves the authenticated identity on a
// request context.
type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity Identity) context.Context
	GetIdentityFromContext(ctx context.Context) (Identity, bool)
}

// Validator checks an Authorization header and resolves it into an
// authenticated identity. The task service implements this with a
// remote call to the auth service; tests substitute a local fake.
type Validator interface {
	Validate(ctx context.Context, authHeader string) (Identity, error)
}
