// Package ports defines the persistence contracts of the marketplace aggregates.
// Adapters implement them; application handlers depend only on these interfaces.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/identity"
	"marketplace/internal/core/domain/model/kernel"
)

// UserRepository stores users together with their profile.
type UserRepository interface {
	// Add persists a new user and its profile in one write.
	// A taken username or email is reported as a validation error.
	Add(ctx context.Context, user *identity.User) error

	// Update persists profile changes of an existing user.
	Update(ctx context.Context, user *identity.User) error

	// Get loads a user by id. Missing users yield errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)

	// GetForUpdate loads a user and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*identity.User, error)

	// GetByUsername is used by login.
	GetByUsername(ctx context.Context, username string) (*identity.User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
