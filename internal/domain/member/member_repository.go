package member

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for member persistence
type Repository interface {
	// Create creates a new member
	Create(ctx context.Context, m *Member) error

	// FindByID finds a member by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Member, error)

	// FindByUsername finds a member by username
	FindByUsername(ctx context.Context, username string) (*Member, error)

	// ExistsByUsername checks if a username is already taken
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
