package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gamegestor/catalog-api/internal/core/domain"
	"github.com/gamegestor/catalog-api/internal/core/ports"
)

type stubGameRepo struct {
	games map[string]*domain.Game
}

func newStubGameRepo() *stubGameRepo {
	return &stubGameRepo{games: make(map[string]*domain.Game)}
}

func cloneGame(g *domain.Game) *domain.Game {
	c := *g
	return &c
}

func (r *stubGameRepo) Create(_ context.Context, game *domain.Game) (*domain.Game, error) {
	if _, ok := r.games[game.Title]; ok {
		return nil, domain.ErrGameExists
	}
	stored := cloneGame(game)
	stored.ID = "id-" + game.Title
	r.games[game.Title] = stored
	return cloneGame(stored), nil
}

func (r *stubGameRepo) FindByTitle(_ context.Context, title string) (*domain.Game, error) {
	game, ok := r.games[title]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	return cloneGame(game), nil
}

func (r *stubGameRepo) List(context.Context) ([]*domain.Game, error) {
	out := make([]*domain.Game, 0, len(r.games))
	for _, g := range r.games {
		out = append(out, cloneGame(g))
	}
	return out, nil
}

func (r *stubGameRepo) UpdateByTitle(_ context.Context, title string, patch ports.GamePatch) (*domain.Game, error) {
	game, ok := r.games[title]
	if !ok {
		return nil, domain.ErrGameNotFound
	}
	if patch.Title != nil {
		game.Title = *patch.Title
	}
	if patch.Genre != nil {
		game.Genre = *patch.Genre
	}
	if patch.Score != nil {
		game.Score = patch.Score
	}
	if patch.Platforms != nil {
		game.Platforms = patch.Platforms
	}
	return cloneGame(game), nil
}

func (r *stubGameRepo) DeleteByTitle(_ context.Context, title string) error {
	if _, ok := r.games[title]; !ok {
		return domain.ErrGameNotFound
	}
	delete(r.games, title)
	return nil
}

func TestGameService_CreateAndGet(t *testing.T) {
	svc := NewGameService(newStubGameRepo(), zerolog.Nop())

	score := 95.0
	created, err := svc.Create(context.Background(), ports.CreateGameInput{
		Title:     "Hollow Knight",
		Genre:     "metroidvania",
		Platforms: []string{"pc", "switch"},
		Score:     &score,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected assigned id")
	}

	got, err := svc.GetByTitle(context.Background(), "Hollow Knight")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Genre != "metroidvania" || got.Score == nil || *got.Score != 95.0 {
		t.Fatalf("unexpected game: %+v", got)
	}
}

func TestGameService_CreateDuplicateTitle(t *testing.T) {
	svc := NewGameService(newStubGameRepo(), zerolog.Nop())

	input := ports.CreateGameInput{Title: "Doom"}
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrGameExists) {
		t.Fatalf("expected ErrGameExists, got %v", err)
	}
}

func TestGameService_UpdateNotFound(t *testing.T) {
	svc := NewGameService(newStubGameRepo(), zerolog.Nop())

	genre := "fps"
	if _, err := svc.Update(context.Background(), "missing", ports.GamePatch{Genre: &genre}); !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestGameService_UpdatePartial(t *testing.T) {
	repo := newStubGameRepo()
	svc := NewGameService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateGameInput{
		Title: "Doom", Genre: "fps", Developer: "id Software",
	}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	score := 88.0
	updated, err := svc.Update(context.Background(), "Doom", ports.GamePatch{Score: &score})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Score == nil || *updated.Score != 88.0 {
		t.Fatalf("score not applied: %+v", updated)
	}
	if updated.Genre != "fps" {
		t.Fatalf("untouched field changed: %q", updated.Genre)
	}
}

func TestGameService_Delete(t *testing.T) {
	svc := NewGameService(newStubGameRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateGameInput{Title: "Doom"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(context.Background(), "Doom"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetByTitle(context.Background(), "Doom"); !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), "Doom"); !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound on second delete, got %v", err)
	}
}
