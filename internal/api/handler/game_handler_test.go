package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gamegestor/catalog-api/internal/core/domain"
	"github.com/gamegestor/catalog-api/internal/core/ports"
	"github.com/gamegestor/catalog-api/internal/core/validation"
)

type stubGameService struct {
	created   *domain.Game
	createErr error
	games     []*domain.Game
	updated   *domain.Game
	updateErr error
	deleteErr error

	gotCreate ports.CreateGameInput
	gotPatch  ports.GamePatch
}

func (s *stubGameService) Create(_ context.Context, input ports.CreateGameInput) (*domain.Game, error) {
	s.gotCreate = input
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubGameService) List(context.Context) ([]*domain.Game, error) {
	return s.games, nil
}

func (s *stubGameService) GetByTitle(_ context.Context, title string) (*domain.Game, error) {
	for _, g := range s.games {
		if g.Title == title {
			return g, nil
		}
	}
	return nil, domain.ErrGameNotFound
}

func (s *stubGameService) Update(_ context.Context, _ string, patch ports.GamePatch) (*domain.Game, error) {
	s.gotPatch = patch
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.updated, nil
}

func (s *stubGameService) Delete(context.Context, string) error {
	return s.deleteErr
}

func TestGameHandler_Create(t *testing.T) {
	e := echo.New()
	score := 95.0
	svc := &stubGameService{created: &domain.Game{
		ID: "id1", Title: "Hollow Knight", Genre: "metroidvania", Score: &score,
	}}
	h := NewGameHandler(svc)

	body := `{"titulo":"Hollow Knight","genero":"metroidvania","plataformas":["pc","switch"],"puntuacion":95}`
	c, rec := jsonContext(e, http.MethodPost, "/juegos", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.gotCreate.Title != "Hollow Knight" || len(svc.gotCreate.Platforms) != 2 {
		t.Fatalf("unexpected input: %+v", svc.gotCreate)
	}
	if svc.gotCreate.Score == nil || *svc.gotCreate.Score != 95.0 {
		t.Fatalf("score not bound: %+v", svc.gotCreate)
	}

	var resp domain.Game
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Title != "Hollow Knight" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGameHandler_CreateInvalidPayload(t *testing.T) {
	e := echo.New()
	h := NewGameHandler(&stubGameService{})

	c, _ := jsonContext(e, http.MethodPost, "/juegos", `{"puntuacion":150}`)

	err := h.Create(c)
	var ve *validation.Error
	if !errors.As(err, &ve) {
		t.Fatalf("expected *validation.Error, got %v", err)
	}
	// missing title twice plus the out-of-range score.
	if len(ve.Errors) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
}

func TestGameHandler_CreateDuplicate(t *testing.T) {
	e := echo.New()
	h := NewGameHandler(&stubGameService{createErr: domain.ErrGameExists})

	c, _ := jsonContext(e, http.MethodPost, "/juegos", `{"titulo":"Doom"}`)

	if err := h.Create(c); !errors.Is(err, domain.ErrGameExists) {
		t.Fatalf("expected ErrGameExists, got %v", err)
	}
}

func TestGameHandler_List(t *testing.T) {
	e := echo.New()
	h := NewGameHandler(&stubGameService{games: []*domain.Game{
		{Title: "Doom"}, {Title: "Quake"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/juegos", nil)
	rec := httptest.NewRecorder()

	if err := h.List(e.NewContext(req, rec)); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	var resp []domain.Game
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 games, got %d", len(resp))
	}
}

func TestGameHandler_GetNotFound(t *testing.T) {
	e := echo.New()
	h := NewGameHandler(&stubGameService{})

	req := httptest.NewRequest(http.MethodGet, "/juegos/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("titulo")
	c.SetParamValues("ghost")

	if err := h.Get(c); !errors.Is(err, domain.ErrGameNotFound) {
		t.Fatalf("expected ErrGameNotFound, got %v", err)
	}
}

func TestGameHandler_Update(t *testing.T) {
	e := echo.New()
	svc := &stubGameService{updated: &domain.Game{Title: "Doom", Genre: "fps"}}
	h := NewGameHandler(svc)

	c, rec := jsonContext(e, http.MethodPut, "/juegos/Doom", `{"titulo":"Doom","genero":"fps"}`)
	c.SetParamNames("titulo")
	c.SetParamValues("Doom")

	if err := h.Update(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.gotPatch.Genre == nil || *svc.gotPatch.Genre != "fps" {
		t.Fatalf("genre not in patch: %+v", svc.gotPatch)
	}
	if svc.gotPatch.Score != nil {
		t.Fatalf("absent field should stay nil: %+v", svc.gotPatch)
	}
}

func TestGameHandler_Delete(t *testing.T) {
	e := echo.New()
	h := NewGameHandler(&stubGameService{})

	req := httptest.NewRequest(http.MethodDelete, "/juegos/Doom", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("titulo")
	c.SetParamValues("Doom")

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "game deleted") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
