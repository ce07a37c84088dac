package ports

import (
	"context"

	"github.com/gamegestor/catalog-api/internal/core/domain"
)

// GamePatch carries a partial game update; nil fields are left untouched.
// Slices replace the stored value wholesale when non-nil.
type GamePatch struct {
	Title       *string
	Genre       *string
	Platforms   []string
	Developer   *string
	ReleaseYear *string
	Modes       []string
	Score       *float64
}

// GameRepository defines persistence operations for catalog entries.
// The title is the natural key; the store enforces its uniqueness.
type GameRepository interface {
	Create(ctx context.Context, game *domain.Game) (*domain.Game, error)
	FindByTitle(ctx context.Context, title string) (*domain.Game, error)
	List(ctx context.Context) ([]*domain.Game, error)
	UpdateByTitle(ctx context.Context, title string, patch GamePatch) (*domain.Game, error)
	DeleteByTitle(ctx context.Context, title string) error
}
