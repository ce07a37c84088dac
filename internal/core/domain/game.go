package domain

import (
	"errors"
	"time"
)

var ErrGameNotFound = errors.New("game not found")
var ErrGameExists = errors.New("game already exists")

// Game is a catalog entry, keyed by its unique title.
// Only the title is mandatory; everything else is optional metadata.
type Game struct {
	ID          string    `json:"id"`
	Title       string    `json:"titulo"`
	Genre       string    `json:"genero,omitempty"`
	Platforms   []string  `json:"plataformas,omitempty"`
	Developer   string    `json:"desarrollador,omitempty"`
	ReleaseYear string    `json:"lanzamiento,omitempty"`
	Modes       []string  `json:"modo,omitempty"`
	Score       *float64  `json:"puntuacion,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
