package platform

import (
	"context"
	"net/http"

	"lugmatic-admin/internal/domain"
)

// Metodos CRUD sobre las colecciones del catalogo. El upstream es dueño de
// los datos; aqui solo se transportan.

func (c *Client) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	var out []domain.Artist
	err := c.doJSON(ctx, http.MethodGet, "/artists", nil, &out)
	return out, err
}

func (c *Client) CreateArtist(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	var out domain.Artist
	err := c.doJSON(ctx, http.MethodPost, "/artists", artist, &out)
	return out, err
}

func (c *Client) UpdateArtist(ctx context.Context, id string, artist domain.Artist) (domain.Artist, error) {
	var out domain.Artist
	err := c.doJSON(ctx, http.MethodPut, "/artists/"+id, artist, &out)
	return out, err
}

func (c *Client) DeleteArtist(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/artists/"+id, nil, nil)
}

func (c *Client) ListAlbums(ctx context.Context) ([]domain.Album, error) {
	var out []domain.Album
	err := c.doJSON(ctx, http.MethodGet, "/albums", nil, &out)
	return out, err
}

func (c *Client) CreateAlbum(ctx context.Context, album domain.Album) (domain.Album, error) {
	var out domain.Album
	err := c.doJSON(ctx, http.MethodPost, "/albums", album, &out)
	return out, err
}

func (c *Client) UpdateAlbum(ctx context.Context, id string, album domain.Album) (domain.Album, error) {
	var out domain.Album
	err := c.doJSON(ctx, http.MethodPut, "/albums/"+id, album, &out)
	return out, err
}

func (c *Client) DeleteAlbum(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/albums/"+id, nil, nil)
}

func (c *Client) ListSongs(ctx context.Context) ([]domain.Song, error) {
	var out []domain.Song
	err := c.doJSON(ctx, http.MethodGet, "/songs", nil, &out)
	return out, err
}

func (c *Client) CreateSong(ctx context.Context, song domain.Song) (domain.Song, error) {
	var out domain.Song
	err := c.doJSON(ctx, http.MethodPost, "/songs", song, &out)
	return out, err
}

func (c *Client) UpdateSong(ctx context.Context, id string, song domain.Song) (domain.Song, error) {
	var out domain.Song
	err := c.doJSON(ctx, http.MethodPut, "/songs/"+id, song, &out)
	return out, err
}

func (c *Client) DeleteSong(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/songs/"+id, nil, nil)
}

func (c *Client) ListGenres(ctx context.Context) ([]domain.Genre, error) {
	var out []domain.Genre
	err := c.doJSON(ctx, http.MethodGet, "/genres", nil, &out)
	return out, err
}

func (c *Client) CreateGenre(ctx context.Context, genre domain.Genre) (domain.Genre, error) {
	var out domain.Genre
	err := c.doJSON(ctx, http.MethodPost, "/genres", genre, &out)
	return out, err
}

func (c *Client) UpdateGenre(ctx context.Context, id string, genre domain.Genre) (domain.Genre, error) {
	var out domain.Genre
	err := c.doJSON(ctx, http.MethodPut, "/genres/"+id, genre, &out)
	return out, err
}

func (c *Client) DeleteGenre(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/genres/"+id, nil, nil)
}

func (c *Client) ListPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	var out []domain.Playlist
	err := c.doJSON(ctx, http.MethodGet, "/playlists", nil, &out)
	return out, err
}

func (c *Client) CreatePlaylist(ctx context.Context, playlist domain.Playlist) (domain.Playlist, error) {
	var out domain.Playlist
	err := c.doJSON(ctx, http.MethodPost, "/playlists", playlist, &out)
	return out, err
}

func (c *Client) UpdatePlaylist(ctx context.Context, id string, playlist domain.Playlist) (domain.Playlist, error) {
	var out domain.Playlist
	err := c.doJSON(ctx, http.MethodPut, "/playlists/"+id, playlist, &out)
	return out, err
}

func (c *Client) DeletePlaylist(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/playlists/"+id, nil, nil)
}

func (c *Client) ListGifts(ctx context.Context) ([]domain.Gift, error) {
	var out []domain.Gift
	err := c.doJSON(ctx, http.MethodGet, "/gifts", nil, &out)
	return out, err
}

func (c *Client) CreateGift(ctx context.Context, gift domain.Gift) (domain.Gift, error) {
	var out domain.Gift
	err := c.doJSON(ctx, http.MethodPost, "/gifts", gift, &out)
	return out, err
}

func (c *Client) UpdateGift(ctx context.Context, id string, gift domain.Gift) (domain.Gift, error) {
	var out domain.Gift
	err := c.doJSON(ctx, http.MethodPut, "/gifts/"+id, gift, &out)
	return out, err
}

func (c *Client) DeleteGift(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/gifts/"+id, nil, nil)
}
