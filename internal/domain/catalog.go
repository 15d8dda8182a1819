package domain

import "time"

// Entidades del catalogo. Son propiedad de la plataforma upstream; el
// gateway solo las transporta y deriva estadisticas sobre ellas.

type Artist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Bio       string    `json:"bio,omitempty"`
	GenreID   string    `json:"genre_id,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	Verified  bool      `json:"verified,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type Album struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ArtistID  string    `json:"artist_id"`
	Year      int       `json:"year,omitempty"`
	CoverURL  string    `json:"cover_url,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type Song struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	ArtistID        string    `json:"artist_id"`
	AlbumID         string    `json:"album_id,omitempty"`
	GenreID         string    `json:"genre_id,omitempty"`
	DurationSeconds int       `json:"duration_seconds,omitempty"`
	Plays           int64     `json:"plays,omitempty"`
	AudioURL        string    `json:"audio_url,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitzero"`
}

type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Playlist struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SongIDs   []string  `json:"song_ids,omitempty"`
	Public    bool      `json:"public,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

// Gift es un articulo virtual monetizable que los oyentes regalan a artistas.
type Gift struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	IconURL   string    `json:"icon_url,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}
