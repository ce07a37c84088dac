package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gamegestor/catalog-api/internal/api/metrics"
	"github.com/gamegestor/catalog-api/internal/core/ports"
	"github.com/gamegestor/catalog-api/internal/core/validation"
)

// GameHandler handles HTTP requests for the game catalog.
type GameHandler struct {
	service ports.GameService
}

func NewGameHandler(service ports.GameService) *GameHandler {
	return &GameHandler{service: service}
}

// Create adds a game to the catalog.
//
// @Summary      Create a game
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGameRequest  true  "Game details"
// @Success      201   {object}  object
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]string
// @Router       /juegos [post]
func (h *GameHandler) Create(c echo.Context) error {
	var req createGameRequest
	if err := bindValidated(c, validation.GameRules(), &req); err != nil {
		return err
	}

	game, err := h.service.Create(c.Request().Context(), ports.CreateGameInput{
		Title:       req.Title,
		Genre:       req.Genre,
		Platforms:   req.Platforms,
		Developer:   req.Developer,
		ReleaseYear: req.ReleaseYear,
		Modes:       req.Modes,
		Score:       req.Score,
	})
	if err != nil {
		return err
	}

	metrics.GameWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, game)
}

// List returns the whole catalog.
//
// @Summary      List games
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   object
// @Failure      401  {object}  map[string]string
// @Router       /juegos [get]
func (h *GameHandler) List(c echo.Context) error {
	games, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, games)
}

// Get returns one game by title.
//
// @Summary      Get a game
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        titulo  path      string  true  "Game title"
// @Success      200     {object}  object
// @Failure      404     {object}  map[string]string
// @Router       /juegos/{titulo} [get]
func (h *GameHandler) Get(c echo.Context) error {
	game, err := h.service.GetByTitle(c.Request().Context(), c.Param("titulo"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, game)
}

// Update patches a game. The payload goes through the same rule set as
// creation, so a title is always present and well formed.
//
// @Summary      Update a game
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        titulo  path      string             true  "Game title"
// @Param        body    body      updateGameRequest  true  "Fields to update"
// @Success      200     {object}  object
// @Failure      400     {object}  map[string]any
// @Failure      404     {object}  map[string]string
// @Router       /juegos/{titulo} [put]
func (h *GameHandler) Update(c echo.Context) error {
	var req updateGameRequest
	if err := bindValidated(c, validation.GameRules(), &req); err != nil {
		return err
	}

	game, err := h.service.Update(c.Request().Context(), c.Param("titulo"), ports.GamePatch{
		Title:       req.Title,
		Genre:       req.Genre,
		Platforms:   req.Platforms,
		Developer:   req.Developer,
		ReleaseYear: req.ReleaseYear,
		Modes:       req.Modes,
		Score:       req.Score,
	})
	if err != nil {
		return err
	}

	metrics.GameWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, game)
}

// Delete removes a game. Admin only.
//
// @Summary      Delete a game
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        titulo  path      string  true  "Game title"
// @Success      200     {object}  messageResponse
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /juegos/{titulo} [delete]
func (h *GameHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("titulo")); err != nil {
		return err
	}
	metrics.GameWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "game deleted"})
}
