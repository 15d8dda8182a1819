package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lugmatic-admin/internal/domain"
	"lugmatic-admin/internal/session"
)

func setupGatedRouter(mgr *session.Manager, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", SessionGate(mgr, roles...), func(c *gin.Context) {
		user, ok := SessionUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session user"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return r
}

func authenticatedManager(t *testing.T, role string) *session.Manager {
	t.Helper()
	payload := adminLoginPayload()
	payload.User.Role = role
	api := &mockAuthAPI{loginPayload: payload}
	mgr := session.NewManager(zap.NewNop(), api, session.NewMemoryTokenStore())
	if _, err := mgr.Login(context.Background(), "someone@x.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	return mgr
}

func TestSessionGate_Unauthenticated(t *testing.T) {
	mgr := session.NewManager(zap.NewNop(), &mockAuthAPI{}, session.NewMemoryTokenStore())
	r := setupGatedRouter(mgr, domain.RoleAdmin)

	rec := performRequest(r, http.MethodGet, "/protected", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestSessionGate_WrongRole(t *testing.T) {
	mgr := authenticatedManager(t, domain.RoleArtist)
	r := setupGatedRouter(mgr, domain.RoleAdmin)

	rec := performRequest(r, http.MethodGet, "/protected", nil)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", rec.Code)
	}
}

func TestSessionGate_Allowed(t *testing.T) {
	mgr := authenticatedManager(t, domain.RoleAdmin)
	r := setupGatedRouter(mgr, domain.RoleAdmin, domain.RoleArtist)

	rec := performRequest(r, http.MethodGet, "/protected", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestSessionGate_LogoutRevokesAccess(t *testing.T) {
	mgr := authenticatedManager(t, domain.RoleAdmin)
	r := setupGatedRouter(mgr, domain.RoleAdmin)

	rec := performRequest(r, http.MethodGet, "/protected", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	mgr.Logout(context.Background())

	rec = performRequest(r, http.MethodGet, "/protected", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 after logout, got %d", rec.Code)
	}
}

func TestSessionGate_ArtistOnSharedGroup(t *testing.T) {
	mgr := authenticatedManager(t, domain.RoleArtist)
	r := setupGatedRouter(mgr, domain.RoleAdmin, domain.RoleArtist)

	rec := performRequest(r, http.MethodGet, "/protected", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
