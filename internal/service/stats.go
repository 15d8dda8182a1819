package service

import (
	"context"

	"go.uber.org/zap"

	"lugmatic-admin/internal/domain"
)

// CatalogAPI son las lecturas de catalogo que el servicio de estadisticas
// consume del cliente de la plataforma.
type CatalogAPI interface {
	ListArtists(ctx context.Context) ([]domain.Artist, error)
	ListAlbums(ctx context.Context) ([]domain.Album, error)
	ListSongs(ctx context.Context) ([]domain.Song, error)
	ListGenres(ctx context.Context) ([]domain.Genre, error)
	ListPlaylists(ctx context.Context) ([]domain.Playlist, error)
	ListGifts(ctx context.Context) ([]domain.Gift, error)
}

// StatsService deriva las estadisticas simples que muestra el dashboard a
// partir de colecciones completas traidas del upstream.
type StatsService struct {
	logger  *zap.Logger
	catalog CatalogAPI
}

func NewStatsService(logger *zap.Logger, catalog CatalogAPI) *StatsService {
	return &StatsService{logger: logger, catalog: catalog}
}

type CatalogOverview struct {
	Artists   int `json:"artists"`
	Albums    int `json:"albums"`
	Songs     int `json:"songs"`
	Genres    int `json:"genres"`
	Playlists int `json:"playlists"`
	Gifts     int `json:"gifts"`
}

// Overview cuenta los elementos de cada coleccion.
func (s *StatsService) Overview(ctx context.Context) (CatalogOverview, error) {
	var overview CatalogOverview

	artists, err := s.catalog.ListArtists(ctx)
	if err != nil {
		return CatalogOverview{}, err
	}
	overview.Artists = len(artists)

	albums, err := s.catalog.ListAlbums(ctx)
	if err != nil {
		return CatalogOverview{}, err
	}
	overview.Albums = len(albums)

	songs, err := s.catalog.ListSongs(ctx)
	if err != nil {
		return CatalogOverview{}, err
	}
	overview.Songs = len(songs)

	genres, err := s.catalog.ListGenres(ctx)
	if err != nil {
		return CatalogOverview{}, err
	}
	overview.Genres = len(genres)

	playlists, err := s.catalog.ListPlaylists(ctx)
	if err != nil {
		return CatalogOverview{}, err
	}
	overview.Playlists = len(playlists)

	gifts, err := s.catalog.ListGifts(ctx)
	if err != nil {
		return CatalogOverview{}, err
	}
	overview.Gifts = len(gifts)

	return overview, nil
}

type GiftSummary struct {
	Count        int     `json:"count"`
	ActiveCount  int     `json:"active_count"`
	TotalPrice   float64 `json:"total_price"`
	AveragePrice float64 `json:"average_price"`
}

// GiftStats resume precios de los regalos virtuales.
func GiftStats(gifts []domain.Gift) GiftSummary {
	summary := GiftSummary{Count: len(gifts)}
	for _, gift := range gifts {
		if gift.Active {
			summary.ActiveCount++
		}
		summary.TotalPrice += gift.Price
	}
	if summary.Count > 0 {
		summary.AveragePrice = summary.TotalPrice / float64(summary.Count)
	}
	return summary
}

// Gifts trae la coleccion y resume.
func (s *StatsService) Gifts(ctx context.Context) (GiftSummary, error) {
	gifts, err := s.catalog.ListGifts(ctx)
	if err != nil {
		return GiftSummary{}, err
	}
	return GiftStats(gifts), nil
}

type SongSummary struct {
	Count                  int     `json:"count"`
	TotalPlays             int64   `json:"total_plays"`
	TotalDurationSeconds   int     `json:"total_duration_seconds"`
	AverageDurationSeconds float64 `json:"average_duration_seconds"`
}

// SongStats resume reproducciones y duraciones del catalogo de canciones.
func SongStats(songs []domain.Song) SongSummary {
	summary := SongSummary{Count: len(songs)}
	for _, song := range songs {
		summary.TotalPlays += song.Plays
		summary.TotalDurationSeconds += song.DurationSeconds
	}
	if summary.Count > 0 {
		summary.AverageDurationSeconds = float64(summary.TotalDurationSeconds) / float64(summary.Count)
	}
	return summary
}

// Songs trae la coleccion y resume.
func (s *StatsService) Songs(ctx context.Context) (SongSummary, error) {
	songs, err := s.catalog.ListSongs(ctx)
	if err != nil {
		return SongSummary{}, err
	}
	return SongStats(songs), nil
}
