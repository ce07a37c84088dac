package handler

type createGameRequest struct {
	Title       string   `json:"titulo"`
	Genre       string   `json:"genero"`
	Platforms   []string `json:"plataformas"`
	Developer   string   `json:"desarrollador"`
	ReleaseYear string   `json:"lanzamiento"`
	Modes       []string `json:"modo"`
	Score       *float64 `json:"puntuacion"`
}

// updateGameRequest is the partial form; nil means "leave as is".
type updateGameRequest struct {
	Title       *string  `json:"titulo"`
	Genre       *string  `json:"genero"`
	Platforms   []string `json:"plataformas"`
	Developer   *string  `json:"desarrollador"`
	ReleaseYear *string  `json:"lanzamiento"`
	Modes       []string `json:"modo"`
	Score       *float64 `json:"puntuacion"`
}
