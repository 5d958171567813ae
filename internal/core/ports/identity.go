package ports

import (
	"context"

	"campusdrop/internal/core/domain/model/kernel"
)

// IdentityProvider resolves the authenticated user for the current request.
// Authentication itself happens in an external identity provider; the core
// only needs to know who is calling. Implementations return an
// UnauthenticatedError when no identity is present on the context.
type IdentityProvider interface {
	CurrentUser(ctx context.Context) (kernel.UUID, error)
}
