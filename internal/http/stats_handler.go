package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lugmatic-admin/internal/platform"
	"lugmatic-admin/internal/service"
)

// StatsHandler expone las estadisticas derivadas del dashboard.
type StatsHandler struct {
	logger *zap.Logger
	stats  *service.StatsService
}

// NewStatsHandler crea una instancia con sus dependencias.
func NewStatsHandler(logger *zap.Logger, stats *service.StatsService) *StatsHandler {
	return &StatsHandler{
		logger: logger,
		stats:  stats,
	}
}

// Overview maneja GET /api/dashboard/overview.
func (h *StatsHandler) Overview(c *gin.Context) {
	overview, err := h.stats.Overview(c.Request.Context())
	if err != nil {
		h.statsError(c, err, "overview")
		return
	}
	c.JSON(http.StatusOK, overview)
}

// Gifts maneja GET /api/dashboard/gifts.
func (h *StatsHandler) Gifts(c *gin.Context) {
	summary, err := h.stats.Gifts(c.Request.Context())
	if err != nil {
		h.statsError(c, err, "gift stats")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Songs maneja GET /api/dashboard/songs.
func (h *StatsHandler) Songs(c *gin.Context) {
	summary, err := h.stats.Songs(c.Request.Context())
	if err != nil {
		h.statsError(c, err, "song stats")
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *StatsHandler) statsError(c *gin.Context, err error, what string) {
	var statusErr *platform.StatusError
	if errors.As(err, &statusErr) {
		c.JSON(statusErr.Status, gin.H{"error": statusErr.StatusText})
		return
	}
	h.logger.Error(what+" failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": "platform unavailable"})
}
