package ports

import (
	"context"

	"github.com/gamegestor/catalog-api/internal/core/domain"
)

// CreateGameInput carries a validated game creation payload.
type CreateGameInput struct {
	Title       string
	Genre       string
	Platforms   []string
	Developer   string
	ReleaseYear string
	Modes       []string
	Score       *float64
}

// GameService defines the catalog use cases.
type GameService interface {
	Create(ctx context.Context, input CreateGameInput) (*domain.Game, error)
	List(ctx context.Context) ([]*domain.Game, error)
	GetByTitle(ctx context.Context, title string) (*domain.Game, error)
	Update(ctx context.Context, title string, patch GamePatch) (*domain.Game, error)
	Delete(ctx context.Context, title string) error
}
