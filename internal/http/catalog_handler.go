package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lugmatic-admin/internal/domain"
	"lugmatic-admin/internal/platform"
)

// CatalogHandler proxya el CRUD del catalogo hacia la plataforma.
type CatalogHandler struct {
	logger   *zap.Logger
	platform *platform.Client
}

// NewCatalogHandler crea una instancia con sus dependencias.
func NewCatalogHandler(logger *zap.Logger, client *platform.Client) *CatalogHandler {
	return &CatalogHandler{
		logger:   logger,
		platform: client,
	}
}

// upstreamError traduce errores del cliente de plataforma a la respuesta.
// Los status del upstream pasan tal cual; sin respuesta es un 502.
func (h *CatalogHandler) upstreamError(c *gin.Context, err error, what string) {
	var statusErr *platform.StatusError
	if errors.As(err, &statusErr) {
		c.JSON(statusErr.Status, gin.H{"error": statusErr.StatusText})
		return
	}
	h.logger.Error(what+" failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "platform unavailable"})
}

func (h *CatalogHandler) ListArtists(c *gin.Context) {
	artists, err := h.platform.ListArtists(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err, "list artists")
		return
	}
	c.JSON(http.StatusOK, gin.H{"artists": artists})
}

func (h *CatalogHandler) CreateArtist(c *gin.Context) {
	var artist domain.Artist
	if err := c.ShouldBindJSON(&artist); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.platform.CreateArtist(c.Request.Context(), artist)
	if err != nil {
		h.upstreamError(c, err, "create artist")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"artist": created})
}

func (h *CatalogHandler) UpdateArtist(c *gin.Context) {
	var artist domain.Artist
	if err := c.ShouldBindJSON(&artist); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	updated, err := h.platform.UpdateArtist(c.Request.Context(), c.Param("id"), artist)
	if err != nil {
		h.upstreamError(c, err, "update artist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"artist": updated})
}

func (h *CatalogHandler) DeleteArtist(c *gin.Context) {
	if err := h.platform.DeleteArtist(c.Request.Context(), c.Param("id")); err != nil {
		h.upstreamError(c, err, "delete artist")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListAlbums(c *gin.Context) {
	albums, err := h.platform.ListAlbums(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err, "list albums")
		return
	}
	c.JSON(http.StatusOK, gin.H{"albums": albums})
}

func (h *CatalogHandler) CreateAlbum(c *gin.Context) {
	var album domain.Album
	if err := c.ShouldBindJSON(&album); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.platform.CreateAlbum(c.Request.Context(), album)
	if err != nil {
		h.upstreamError(c, err, "create album")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"album": created})
}

func (h *CatalogHandler) UpdateAlbum(c *gin.Context) {
	var album domain.Album
	if err := c.ShouldBindJSON(&album); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	updated, err := h.platform.UpdateAlbum(c.Request.Context(), c.Param("id"), album)
	if err != nil {
		h.upstreamError(c, err, "update album")
		return
	}
	c.JSON(http.StatusOK, gin.H{"album": updated})
}

func (h *CatalogHandler) DeleteAlbum(c *gin.Context) {
	if err := h.platform.DeleteAlbum(c.Request.Context(), c.Param("id")); err != nil {
		h.upstreamError(c, err, "delete album")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListSongs(c *gin.Context) {
	songs, err := h.platform.ListSongs(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err, "list songs")
		return
	}
	c.JSON(http.StatusOK, gin.H{"songs": songs})
}

func (h *CatalogHandler) CreateSong(c *gin.Context) {
	var song domain.Song
	if err := c.ShouldBindJSON(&song); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.platform.CreateSong(c.Request.Context(), song)
	if err != nil {
		h.upstreamError(c, err, "create song")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"song": created})
}

func (h *CatalogHandler) UpdateSong(c *gin.Context) {
	var song domain.Song
	if err := c.ShouldBindJSON(&song); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	updated, err := h.platform.UpdateSong(c.Request.Context(), c.Param("id"), song)
	if err != nil {
		h.upstreamError(c, err, "update song")
		return
	}
	c.JSON(http.StatusOK, gin.H{"song": updated})
}

func (h *CatalogHandler) DeleteSong(c *gin.Context) {
	if err := h.platform.DeleteSong(c.Request.Context(), c.Param("id")); err != nil {
		h.upstreamError(c, err, "delete song")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListPlaylists(c *gin.Context) {
	playlists, err := h.platform.ListPlaylists(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err, "list playlists")
		return
	}
	c.JSON(http.StatusOK, gin.H{"playlists": playlists})
}

func (h *CatalogHandler) CreatePlaylist(c *gin.Context) {
	var playlist domain.Playlist
	if err := c.ShouldBindJSON(&playlist); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.platform.CreatePlaylist(c.Request.Context(), playlist)
	if err != nil {
		h.upstreamError(c, err, "create playlist")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"playlist": created})
}

func (h *CatalogHandler) UpdatePlaylist(c *gin.Context) {
	var playlist domain.Playlist
	if err := c.ShouldBindJSON(&playlist); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	updated, err := h.platform.UpdatePlaylist(c.Request.Context(), c.Param("id"), playlist)
	if err != nil {
		h.upstreamError(c, err, "update playlist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"playlist": updated})
}

func (h *CatalogHandler) DeletePlaylist(c *gin.Context) {
	if err := h.platform.DeletePlaylist(c.Request.Context(), c.Param("id")); err != nil {
		h.upstreamError(c, err, "delete playlist")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListGenres(c *gin.Context) {
	genres, err := h.platform.ListGenres(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err, "list genres")
		return
	}
	c.JSON(http.StatusOK, gin.H{"genres": genres})
}

func (h *CatalogHandler) CreateGenre(c *gin.Context) {
	var genre domain.Genre
	if err := c.ShouldBindJSON(&genre); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.platform.CreateGenre(c.Request.Context(), genre)
	if err != nil {
		h.upstreamError(c, err, "create genre")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"genre": created})
}

func (h *CatalogHandler) UpdateGenre(c *gin.Context) {
	var genre domain.Genre
	if err := c.ShouldBindJSON(&genre); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	updated, err := h.platform.UpdateGenre(c.Request.Context(), c.Param("id"), genre)
	if err != nil {
		h.upstreamError(c, err, "update genre")
		return
	}
	c.JSON(http.StatusOK, gin.H{"genre": updated})
}

func (h *CatalogHandler) DeleteGenre(c *gin.Context) {
	if err := h.platform.DeleteGenre(c.Request.Context(), c.Param("id")); err != nil {
		h.upstreamError(c, err, "delete genre")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListGifts(c *gin.Context) {
	gifts, err := h.platform.ListGifts(c.Request.Context())
	if err != nil {
		h.upstreamError(c, err, "list gifts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"gifts": gifts})
}

func (h *CatalogHandler) CreateGift(c *gin.Context) {
	var gift domain.Gift
	if err := c.ShouldBindJSON(&gift); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	created, err := h.platform.CreateGift(c.Request.Context(), gift)
	if err != nil {
		h.upstreamError(c, err, "create gift")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"gift": created})
}

func (h *CatalogHandler) UpdateGift(c *gin.Context) {
	var gift domain.Gift
	if err := c.ShouldBindJSON(&gift); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	updated, err := h.platform.UpdateGift(c.Request.Context(), c.Param("id"), gift)
	if err != nil {
		h.upstreamError(c, err, "update gift")
		return
	}
	c.JSON(http.StatusOK, gin.H{"gift": updated})
}

func (h *CatalogHandler) DeleteGift(c *gin.Context) {
	if err := h.platform.DeleteGift(c.Request.Context(), c.Param("id")); err != nil {
		h.upstreamError(c, err, "delete gift")
		return
	}
	c.Status(http.StatusNoContent)
}
