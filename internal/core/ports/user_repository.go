package ports

import (
	"context"

	"github.com/fitlog/exercise-tracker/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUsernameTaken when the
	// username is already in use (unique index on username).
	Create(ctx context.Context, username string) (*domain.User, error)
	// List returns all users in storage-native order.
	List(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
