package interfaces

import (
	"context"

	"github.com/intellimed/scribe/pkg/domain/model"
)

// UserRepository defines the interface for User data access
type UserRepository interface {
	// Create creates a new user with auto-generated ID
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// Get retrieves a user by ID
	Get(ctx context.Context, id int64) (*model.User, error)

	// GetByUsername retrieves a user by username.
	// Returns nil, nil when no user has the given username.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
