package ports

import (
	"context"

	"github.com/gamegestor/catalog-api/internal/core/domain"
)

// UserPatch carries the whitelisted, partial update applied to a user.
// Nil fields are left untouched. The password hash and role are deliberately
// absent: credentials are only written at registration and roles never change
// through a profile update.
type UserPatch struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	ProfilePicture *string
}

// UserRepository defines persistence operations for user accounts.
// The username is the natural key; the store enforces its uniqueness.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	UpdateByUsername(ctx context.Context, username string, patch UserPatch) (*domain.User, error)
	DeleteByUsername(ctx context.Context, username string) error
}
