package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lugmatic-admin/internal/domain"
	"lugmatic-admin/internal/session"
)

// NewRouter configura el router de Gin con middlewares y rutas del dashboard.
func NewRouter(
	logger *zap.Logger,
	manager *session.Manager,
	sessionH *SessionHandler,
	catalogH *CatalogHandler,
	statsH *StatsHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: request id, logging, recovery y JSON content-type.
	r.Use(requestIDMiddleware(), zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	auth := r.Group("/auth")
	auth.POST("/login", sessionH.Login)
	auth.POST("/logout", sessionH.Logout)
	auth.GET("/session", sessionH.Session)
	auth.DELETE("/error", sessionH.ClearError)

	// Todo el catalogo exige sesion con rol admin o artist.
	api := r.Group("/api", SessionGate(manager, domain.RoleAdmin, domain.RoleArtist))

	api.GET("/artists", catalogH.ListArtists)
	api.POST("/artists", catalogH.CreateArtist)
	api.PUT("/artists/:id", catalogH.UpdateArtist)
	api.DELETE("/artists/:id", catalogH.DeleteArtist)

	api.GET("/albums", catalogH.ListAlbums)
	api.POST("/albums", catalogH.CreateAlbum)
	api.PUT("/albums/:id", catalogH.UpdateAlbum)
	api.DELETE("/albums/:id", catalogH.DeleteAlbum)

	api.GET("/songs", catalogH.ListSongs)
	api.POST("/songs", catalogH.CreateSong)
	api.PUT("/songs/:id", catalogH.UpdateSong)
	api.DELETE("/songs/:id", catalogH.DeleteSong)

	api.GET("/playlists", catalogH.ListPlaylists)
	api.POST("/playlists", catalogH.CreatePlaylist)
	api.PUT("/playlists/:id", catalogH.UpdatePlaylist)
	api.DELETE("/playlists/:id", catalogH.DeletePlaylist)

	api.GET("/genres", catalogH.ListGenres)
	api.GET("/gifts", catalogH.ListGifts)

	// Taxonomia y monetizacion se administran solo desde cuentas admin.
	adminOnly := api.Group("", SessionGate(manager, domain.RoleAdmin))
	adminOnly.POST("/genres", catalogH.CreateGenre)
	adminOnly.PUT("/genres/:id", catalogH.UpdateGenre)
	adminOnly.DELETE("/genres/:id", catalogH.DeleteGenre)
	adminOnly.POST("/gifts", catalogH.CreateGift)
	adminOnly.PUT("/gifts/:id", catalogH.UpdateGift)
	adminOnly.DELETE("/gifts/:id", catalogH.DeleteGift)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/overview", statsH.Overview)
	dashboard.GET("/gifts", statsH.Gifts)
	dashboard.GET("/songs", statsH.Songs)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", c.GetString(requestIDKey)),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}

const requestIDKey = "request_id"

// requestIDMiddleware asigna un id de correlacion a cada peticion.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
