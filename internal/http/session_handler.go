package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lugmatic-admin/internal/session"
)

// SessionHandler expone el ciclo de vida de sesion al dashboard. La
// navegacion es un efecto que el manager pide y este binding devuelve al
// navegador como campo redirect; aqui no se navega.
type SessionHandler struct {
	logger  *zap.Logger
	manager *session.Manager
}

// NewSessionHandler crea una instancia con sus dependencias.
func NewSessionHandler(logger *zap.Logger, manager *session.Manager) *SessionHandler {
	return &SessionHandler{
		logger:  logger,
		manager: manager,
	}
}

// Login maneja POST /auth/login.
func (h *SessionHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	route, err := h.manager.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, session.ErrLoginInFlight) {
			c.JSON(http.StatusConflict, gin.H{"error": "login already in progress"})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":  h.manager.Snapshot(),
		"redirect": route,
	})
}

// Logout maneja POST /auth/logout. No tiene modo de fallo visible.
func (h *SessionHandler) Logout(c *gin.Context) {
	route := h.manager.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"redirect": route})
}

// Session maneja GET /auth/session.
func (h *SessionHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, h.manager.Snapshot())
}

// ClearError maneja DELETE /auth/error.
func (h *SessionHandler) ClearError(c *gin.Context) {
	h.manager.ClearError()
	c.Status(http.StatusNoContent)
}
