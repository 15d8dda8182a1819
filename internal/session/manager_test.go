package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"lugmatic-admin/internal/domain"
	"lugmatic-admin/internal/platform"
)

type mockAuthAPI struct {
	mu sync.Mutex

	loginPayload platform.LoginPayload
	loginErr     error
	user         domain.User
	userErr      error
	logoutErr    error

	loginBlock chan struct{}

	loginCalls  int
	meCalls     int
	logoutCalls int
}

func (m *mockAuthAPI) Login(_ context.Context, _, _ string) (platform.LoginPayload, error) {
	m.mu.Lock()
	m.loginCalls++
	block := m.loginBlock
	payload, err := m.loginPayload, m.loginErr
	m.mu.Unlock()
	if block != nil {
		<-block
	}
	return payload, err
}

func (m *mockAuthAPI) CurrentUser(_ context.Context) (domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.meCalls++
	return m.user, m.userErr
}

func (m *mockAuthAPI) Logout(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logoutCalls++
	return m.logoutErr
}

func (m *mockAuthAPI) currentMeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.meCalls
}

func adminPayload(token string) platform.LoginPayload {
	return platform.LoginPayload{
		User: &platform.UserPayload{
			ID:    platform.FlexID("1"),
			Email: "admin@x.com",
			Role:  domain.RoleAdmin,
		},
		AccessToken: token,
	}
}

func mustAccessToken(t *testing.T, store TokenStore) string {
	t.Helper()
	token, err := store.AccessToken(context.Background())
	if err != nil {
		t.Fatalf("read access token: %v", err)
	}
	return token
}

func TestLogin_AdminSuccess(t *testing.T) {
	api := &mockAuthAPI{loginPayload: adminPayload("abc")}
	store := NewMemoryTokenStore()
	mgr := NewManager(zap.NewNop(), api, store)

	route, err := mgr.Login(context.Background(), "admin@x.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if route != "/admin/dashboard" {
		t.Fatalf("unexpected route: %s", route)
	}

	snap := mgr.Snapshot()
	if !snap.IsAuthenticated || snap.User == nil || snap.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected session: %+v", snap)
	}
	if snap.LastLogin == nil {
		t.Fatalf("expected last login timestamp")
	}
	if snap.IsLoading {
		t.Fatalf("session should not be loading at rest")
	}
	if mustAccessToken(t, store) != "abc" {
		t.Fatalf("expected access token persisted")
	}
}

func TestLogin_RoleGate(t *testing.T) {
	payload := adminPayload("abc")
	payload.User.Role = "listener"
	api := &mockAuthAPI{loginPayload: payload}
	store := NewMemoryTokenStore()
	mgr := NewManager(zap.NewNop(), api, store)

	_, err := mgr.Login(context.Background(), "user@x.com", "pw")
	if err == nil || err.Error() != msgAccessDenied {
		t.Fatalf("expected access denied, got %v", err)
	}

	snap := mgr.Snapshot()
	if snap.IsAuthenticated || snap.User != nil {
		t.Fatalf("session must not stay authenticated: %+v", snap)
	}
	if mustAccessToken(t, store) != "" {
		t.Fatalf("tokens must be cleared after role gate failure")
	}
}

func TestLogin_ArtistRoute(t *testing.T) {
	payload := adminPayload("abc")
	payload.User.Role = domain.RoleArtist
	payload.User.ArtistID = platform.FlexID("42")
	api := &mockAuthAPI{loginPayload: payload}
	mgr := NewManager(zap.NewNop(), api, NewMemoryTokenStore())

	route, err := mgr.Login(context.Background(), "artist@x.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if route != "/artist/dashboard" {
		t.Fatalf("unexpected route: %s", route)
	}
	snap := mgr.Snapshot()
	if snap.User == nil || snap.User.ArtistID != "42" {
		t.Fatalf("expected artist id in session: %+v", snap.User)
	}
}

func TestLogin_RefreshFallback(t *testing.T) {
	api := &mockAuthAPI{loginPayload: adminPayload("only-access")}
	store := NewMemoryTokenStore()
	mgr := NewManager(zap.NewNop(), api, store)

	if _, err := mgr.Login(context.Background(), "admin@x.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}
	refresh, err := store.RefreshToken(context.Background())
	if err != nil {
		t.Fatalf("read refresh token: %v", err)
	}
	if refresh != "only-access" {
		t.Fatalf("expected refresh fallback to access token, got %q", refresh)
	}
}

func TestLogin_NoTokenInPayload(t *testing.T) {
	payload := adminPayload("")
	api := &mockAuthAPI{loginPayload: payload}
	store := NewMemoryTokenStore()
	mgr := NewManager(zap.NewNop(), api, store)

	_, err := mgr.Login(context.Background(), "admin@x.com", "pw")
	if err == nil || err.Error() != msgNoToken {
		t.Fatalf("expected no-token failure, got %v", err)
	}
	if mustAccessToken(t, store) != "" {
		t.Fatalf("store must stay empty")
	}
}

func TestLogin_ErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"invalid credentials", &platform.StatusError{Status: 401, StatusText: "Unauthorized"}, msgInvalidCredentials},
		{"restricted", &platform.StatusError{Status: 403, StatusText: "Forbidden"}, msgAccessRestricted},
		{"not found", &platform.StatusError{Status: 404, StatusText: "Not Found"}, msgAccountNotFound},
		{"rate limited", &platform.StatusError{Status: 429, StatusText: "Too Many Requests"}, msgRateLimited},
		{"server error", &platform.StatusError{Status: 500, StatusText: "Internal Server Error"}, "Error 500: Internal Server Error"},
		{"unreachable", platform.ErrUnreachable, msgNetwork},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &mockAuthAPI{loginErr: tc.err}
			store := NewMemoryTokenStore()
			mgr := NewManager(zap.NewNop(), api, store)

			_, err := mgr.Login(context.Background(), "admin@x.com", "pw")
			if err == nil || err.Error() != tc.want {
				t.Fatalf("expected %q, got %v", tc.want, err)
			}
			snap := mgr.Snapshot()
			if snap.Error != tc.want {
				t.Fatalf("expected error stored in session, got %q", snap.Error)
			}
			if snap.IsAuthenticated {
				t.Fatalf("session must stay unauthenticated")
			}
			if mustAccessToken(t, store) != "" {
				t.Fatalf("store must not be touched on login failure")
			}
		})
	}
}

type failingReadStore struct {
	TokenStore
}

func (s *failingReadStore) AccessToken(_ context.Context) (string, error) {
	return "", nil
}

func TestLogin_TokenNotStored(t *testing.T) {
	api := &mockAuthAPI{loginPayload: adminPayload("abc")}
	store := &failingReadStore{TokenStore: NewMemoryTokenStore()}
	mgr := NewManager(zap.NewNop(), api, store)

	_, err := mgr.Login(context.Background(), "admin@x.com", "pw")
	if err == nil || err.Error() != msgTokenNotStored {
		t.Fatalf("expected persistence failure, got %v", err)
	}
}

func TestLogin_RejectsConcurrent(t *testing.T) {
	block := make(chan struct{})
	api := &mockAuthAPI{loginPayload: adminPayload("abc"), loginBlock: block}
	mgr := NewManager(zap.NewNop(), api, NewMemoryTokenStore())

	done := make(chan error, 1)
	go func() {
		_, err := mgr.Login(context.Background(), "admin@x.com", "pw")
		done <- err
	}()

	// Espera a que el primer login este en vuelo.
	deadline := time.After(2 * time.Second)
	for {
		api.mu.Lock()
		started := api.loginCalls > 0
		api.mu.Unlock()
		if started {
			break
		}
		select {
		case <-deadline:
			t.Fatal("first login never started")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if _, err := mgr.Login(context.Background(), "admin@x.com", "pw"); !errors.Is(err, ErrLoginInFlight) {
		t.Fatalf("expected ErrLoginInFlight, got %v", err)
	}

	close(block)
	if err := <-done; err != nil {
		t.Fatalf("first login failed: %v", err)
	}
}

func TestInitialize_NoToken(t *testing.T) {
	api := &mockAuthAPI{}
	mgr := NewManager(zap.NewNop(), api, NewMemoryTokenStore())

	mgr.Initialize(context.Background())

	snap := mgr.Snapshot()
	if snap.IsAuthenticated || snap.User != nil || snap.IsLoading {
		t.Fatalf("expected clean unauthenticated state: %+v", snap)
	}
	if api.currentMeCalls() != 0 {
		t.Fatalf("initialize without token must make zero network calls")
	}
}

func TestInitialize_ValidToken(t *testing.T) {
	api := &mockAuthAPI{user: domain.User{ID: "1", Email: "admin@x.com", Role: domain.RoleAdmin}}
	store := NewMemoryTokenStore()
	if err := store.SetTokens(context.Background(), "abc", "abc"); err != nil {
		t.Fatalf("seed tokens: %v", err)
	}
	mgr := NewManager(zap.NewNop(), api, store)

	mgr.Initialize(context.Background())

	snap := mgr.Snapshot()
	if !snap.IsAuthenticated || snap.User == nil || snap.User.Email != "admin@x.com" {
		t.Fatalf("expected restored session: %+v", snap)
	}
	if snap.LastLogin == nil {
		t.Fatalf("expected last login set on restore")
	}
}

func TestInitialize_InvalidToken(t *testing.T) {
	api := &mockAuthAPI{userErr: &platform.StatusError{Status: 401, StatusText: "Unauthorized"}}
	store := NewMemoryTokenStore()
	if err := store.SetTokens(context.Background(), "stale", "stale"); err != nil {
		t.Fatalf("seed tokens: %v", err)
	}
	mgr := NewManager(zap.NewNop(), api, store)

	mgr.Initialize(context.Background())

	snap := mgr.Snapshot()
	if snap.IsAuthenticated || snap.User != nil {
		t.Fatalf("expected unauthenticated state: %+v", snap)
	}
	if snap.Error != "" {
		t.Fatalf("validation failure must stay silent, got %q", snap.Error)
	}
	if mustAccessToken(t, store) != "" {
		t.Fatalf("stale tokens must be cleared")
	}
}

func TestInitialize_Idempotent(t *testing.T) {
	api := &mockAuthAPI{user: domain.User{ID: "1", Email: "admin@x.com", Role: domain.RoleAdmin}}
	store := NewMemoryTokenStore()
	if err := store.SetTokens(context.Background(), "abc", "abc"); err != nil {
		t.Fatalf("seed tokens: %v", err)
	}
	mgr := NewManager(zap.NewNop(), api, store)

	mgr.Initialize(context.Background())
	mgr.Initialize(context.Background())

	if calls := api.currentMeCalls(); calls != 1 {
		t.Fatalf("expected at most one /auth/me call, got %d", calls)
	}
}

func TestLogout_Total(t *testing.T) {
	api := &mockAuthAPI{loginPayload: adminPayload("abc")}
	store := NewMemoryTokenStore()
	mgr := NewManager(zap.NewNop(), api, store)

	if _, err := mgr.Login(context.Background(), "admin@x.com", "pw"); err != nil {
		t.Fatalf("login: %v", err)
	}

	route := mgr.Logout(context.Background())
	if route != LoginRoute {
		t.Fatalf("unexpected route: %s", route)
	}

	snap := mgr.Snapshot()
	if snap.IsAuthenticated || snap.User != nil || snap.Error != "" || snap.LastLogin != nil {
		t.Fatalf("expected default state after logout: %+v", snap)
	}
	if mustAccessToken(t, store) != "" {
		t.Fatalf("tokens must be cleared on logout")
	}
}

func TestLogout_FromUnauthenticated(t *testing.T) {
	api := &mockAuthAPI{logoutErr: errors.New("upstream down")}
	mgr := NewManager(zap.NewNop(), api, NewMemoryTokenStore())

	// El fallo del upstream nunca bloquea el logout local.
	route := mgr.Logout(context.Background())
	if route != LoginRoute {
		t.Fatalf("unexpected route: %s", route)
	}
	snap := mgr.Snapshot()
	if snap.IsAuthenticated || snap.User != nil {
		t.Fatalf("expected default state: %+v", snap)
	}
}

func TestClearError(t *testing.T) {
	api := &mockAuthAPI{loginErr: &platform.StatusError{Status: 401, StatusText: "Unauthorized"}}
	mgr := NewManager(zap.NewNop(), api, NewMemoryTokenStore())

	_, _ = mgr.Login(context.Background(), "admin@x.com", "bad")
	if mgr.Snapshot().Error == "" {
		t.Fatalf("expected error stored")
	}

	mgr.ClearError()
	if mgr.Snapshot().Error != "" {
		t.Fatalf("expected error cleared")
	}
}

// Escenario completo contra un upstream real simulado: respuesta envuelta en
// data, usuario aplanado y token bajo el campo "token".
func TestLogin_EnvelopedFlatPayload(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"id":1,"email":"admin@x.com","role":"admin","token":"abc"}}`))
	}))
	defer upstream.Close()

	store := NewMemoryTokenStore()
	client := platform.NewClient(upstream.URL, time.Second, store.AccessToken, zap.NewNop())
	mgr := NewManager(zap.NewNop(), client, store)

	route, err := mgr.Login(context.Background(), "admin@x.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if route != "/admin/dashboard" {
		t.Fatalf("unexpected route: %s", route)
	}

	if mustAccessToken(t, store) != "abc" {
		t.Fatalf("expected access token abc")
	}
	refresh, err := store.RefreshToken(context.Background())
	if err != nil || refresh != "abc" {
		t.Fatalf("expected refresh fallback abc, got %q (%v)", refresh, err)
	}
	snap := mgr.Snapshot()
	if snap.User == nil || snap.User.Role != domain.RoleAdmin || snap.User.ID != "1" {
		t.Fatalf("unexpected session user: %+v", snap.User)
	}
}
