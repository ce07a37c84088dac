package ports

import (
	"context"

	"github.com/gamegestor/catalog-api/internal/core/domain"
)

// RegisterUserInput carries a validated registration payload.
type RegisterUserInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// UserService defines the account use cases. Register returns the created
// user together with a freshly issued session token.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (string, error)
	List(ctx context.Context) ([]*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, username string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, username string) error
}
