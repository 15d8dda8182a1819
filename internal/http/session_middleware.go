package http

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"lugmatic-admin/internal/domain"
	"lugmatic-admin/internal/session"
)

const sessionUserKey = "session_user"

// SessionGate exige una sesion autenticada con uno de los roles dados.
// Mientras la inicializacion sigue en vuelo no se atiende nada autenticado.
func SessionGate(manager *session.Manager, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := manager.Snapshot()
		if snap.IsLoading {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session initializing"})
			c.Abort()
			return
		}
		if !snap.IsAuthenticated || snap.User == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			c.Abort()
			return
		}
		if len(roles) > 0 && !slices.Contains(roles, snap.User.Role) {
			c.JSON(http.StatusForbidden, gin.H{"error": "role not permitted"})
			c.Abort()
			return
		}
		c.Set(sessionUserKey, *snap.User)
		c.Next()
	}
}

// SessionUser obtiene el usuario de la sesion desde el contexto.
func SessionUser(c *gin.Context) (domain.User, bool) {
	val, ok := c.Get(sessionUserKey)
	if !ok {
		return domain.User{}, false
	}
	user, ok := val.(domain.User)
	return user, ok
}
