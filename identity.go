package sdk

import "context"

// IdentityProvider mints short-lived identity tokens for the currently
// signed-in user. It abstracts the external auth SDK (Firebase or similar)
// so the client can be exercised without the real provider.
//
// Implementations return ErrNoSession (or an error wrapping it) when no user
// is signed in.
type IdentityProvider interface {
	MintIdentityToken(ctx context.Context) (string, error)
}

// IdentityProviderFunc adapts a function to the IdentityProvider interface.
type IdentityProviderFunc func(ctx context.Context) (string, error)

// MintIdentityToken implements IdentityProvider.
func (f IdentityProviderFunc) MintIdentityToken(ctx context.Context) (string, error) {
	return f(ctx)
}
