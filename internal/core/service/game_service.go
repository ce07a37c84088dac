package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/gamegestor/catalog-api/internal/core/domain"
	"github.com/gamegestor/catalog-api/internal/core/ports"
)

// GameService implements the catalog CRUD, keyed by game title.
type GameService struct {
	repo   ports.GameRepository
	logger zerolog.Logger
}

func NewGameService(repo ports.GameRepository, logger zerolog.Logger) *GameService {
	return &GameService{repo: repo, logger: logger}
}

func (s *GameService) Create(ctx context.Context, input ports.CreateGameInput) (*domain.Game, error) {
	game := &domain.Game{
		Title:       input.Title,
		Genre:       input.Genre,
		Platforms:   input.Platforms,
		Developer:   input.Developer,
		ReleaseYear: input.ReleaseYear,
		Modes:       input.Modes,
		Score:       input.Score,
	}

	created, err := s.repo.Create(ctx, game)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("title", created.Title).Msg("game created")
	return created, nil
}

func (s *GameService) List(ctx context.Context) ([]*domain.Game, error) {
	return s.repo.List(ctx)
}

func (s *GameService) GetByTitle(ctx context.Context, title string) (*domain.Game, error) {
	return s.repo.FindByTitle(ctx, title)
}

func (s *GameService) Update(ctx context.Context, title string, patch ports.GamePatch) (*domain.Game, error) {
	updated, err := s.repo.UpdateByTitle(ctx, title, patch)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("title", title).Msg("game updated")
	return updated, nil
}

func (s *GameService) Delete(ctx context.Context, title string) error {
	if err := s.repo.DeleteByTitle(ctx, title); err != nil {
		return err
	}
	s.logger.Info().Str("title", title).Msg("game deleted")
	return nil
}
