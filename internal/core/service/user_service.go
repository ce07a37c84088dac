package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gamegestor/catalog-api/internal/core/auth"
	"github.com/gamegestor/catalog-api/internal/core/domain"
	"github.com/gamegestor/catalog-api/internal/core/ports"
)

// UserService implements account registration, login and profile CRUD.
type UserService struct {
	repo   ports.UserRepository
	tokens *auth.TokenService
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, tokens *auth.TokenService, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, logger: logger}
}

// Register hashes the password, stores the user with the default role and
// issues a session token so the client is logged in immediately. Payload
// validation happens at the transport layer before this is called.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, string, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID, created.Username, created.Role)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("username", created.Username).Msg("user registered")
	return created, token, nil
}

// Login verifies the credential and issues a token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.logger.Warn().Str("username", username).Msg("login rejected: bad password")
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Username, user.Role)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *UserService) Update(ctx context.Context, username string, patch ports.UserPatch) (*domain.User, error) {
	updated, err := s.repo.UpdateByUsername(ctx, username, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("username", username).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, username string) error {
	if err := s.repo.DeleteByUsername(ctx, username); err != nil {
		return err
	}
	s.logger.Info().Str("username", username).Msg("user deleted")
	return nil
}
