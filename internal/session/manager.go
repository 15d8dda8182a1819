package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"lugmatic-admin/internal/domain"
	"lugmatic-admin/internal/platform"
)

// AuthAPI son las operaciones de autenticacion que el manager consume del
// cliente de la plataforma.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (platform.LoginPayload, error)
	CurrentUser(ctx context.Context) (domain.User, error)
	Logout(ctx context.Context) error
}

// LoginRoute es la ruta a la que se redirige tras cerrar sesion.
const LoginRoute = "/login"

// Mensajes de error visibles en el dashboard, por causa.
const (
	msgInvalidCredentials = "Invalid email or password."
	msgAccessRestricted   = "Account access restricted."
	msgAccountNotFound    = "Account not found."
	msgRateLimited        = "Too many login attempts. Please try again later."
	msgNetwork            = "Server not responding. Please check your connection and try again."
	msgAccessDenied       = "Access denied. Only admin and artist accounts can access this dashboard."
	msgNoToken            = "No token received"
	msgTokenNotStored     = "Token not stored after login"
)

// ErrLoginInFlight rechaza un login mientras otro sigue en curso.
var ErrLoginInFlight = errors.New("login already in progress")

// Manager es el dueño unico del estado de sesion del proceso. Toda mutacion
// de tokens y de estado pasa por sus tres operaciones: Initialize, Login y
// Logout. Ningun otro codigo escribe en el TokenStore.
type Manager struct {
	logger *zap.Logger
	api    AuthAPI
	store  TokenStore

	initOnce sync.Once

	mu        sync.Mutex
	state     domain.Session
	loggingIn bool
}

// NewManager crea el manager con sus colaboradores.
func NewManager(logger *zap.Logger, api AuthAPI, store TokenStore) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		logger: logger,
		api:    api,
		store:  store,
	}
}

// Snapshot devuelve una copia del estado de sesion actual.
func (m *Manager) Snapshot() domain.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap := m.state
	if m.state.User != nil {
		user := *m.state.User
		snap.User = &user
	}
	return snap
}

// ClearError limpia el ultimo mensaje de error reportado.
func (m *Manager) ClearError() {
	m.mu.Lock()
	m.state.Error = ""
	m.mu.Unlock()
}

// Initialize restaura la sesion desde el store al arrancar. Se ejecuta una
// sola vez por proceso: disparos repetidos son no-ops, asi que nunca hay mas
// de una llamada a /auth/me. Jamas reporta error al consumidor; cualquier
// fallo de validacion termina en estado no autenticado.
func (m *Manager) Initialize(ctx context.Context) {
	m.initOnce.Do(func() {
		m.initialize(ctx)
	})
}

func (m *Manager) initialize(ctx context.Context) {
	m.mu.Lock()
	m.state.IsLoading = true
	m.mu.Unlock()

	token, err := m.store.AccessToken(ctx)
	if err != nil || token == "" {
		if err != nil {
			m.logger.Warn("token store read failed", zap.Error(err))
		}
		// Sin token no hay nada que validar: cero llamadas de red.
		m.resetState()
		return
	}

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		// Fallo de validacion == no hay sesion. No se muestra al usuario.
		m.logger.Warn("session validation failed", zap.Error(err))
		_ = m.store.ClearTokens(ctx)
		m.resetState()
		return
	}

	now := time.Now().UTC()
	m.mu.Lock()
	m.state = domain.Session{
		User:            &user,
		IsAuthenticated: true,
		LastLogin:       &now,
		ExpiresAt:       tokenExpiry(token),
	}
	m.mu.Unlock()
	m.logger.Info("session restored", zap.String("email", user.Email), zap.String("role", user.Role))
}

// Login autentica contra el upstream, persiste los tokens resueltos y aplica
// la puerta de rol. Devuelve la ruta de aterrizaje segun el rol. Un fallo
// nunca deja tokens persistidos.
func (m *Manager) Login(ctx context.Context, email, password string) (string, error) {
	m.mu.Lock()
	if m.loggingIn {
		m.mu.Unlock()
		return "", ErrLoginInFlight
	}
	m.loggingIn = true
	m.state.IsLoading = true
	m.state.Error = ""
	m.mu.Unlock()

	route, err := m.login(ctx, email, password)

	m.mu.Lock()
	m.loggingIn = false
	m.state.IsLoading = false
	if err != nil {
		m.state.Error = err.Error()
	}
	m.mu.Unlock()
	return route, err
}

func (m *Manager) login(ctx context.Context, email, password string) (string, error) {
	payload, err := m.api.Login(ctx, email, password)
	if err != nil {
		// Fallo de credenciales o transporte: el store no se toca.
		return "", errors.New(loginErrorMessage(err))
	}

	access := resolveAccessToken(payload)
	if access == "" {
		return "", errors.New(msgNoToken)
	}
	refresh := resolveRefreshToken(payload, access)

	if err := m.store.SetTokens(ctx, access, refresh); err != nil {
		m.logger.Error("persist tokens failed", zap.Error(err))
		return "", errors.New(msgTokenNotStored)
	}

	// Releer el store guarda contra fallos de persistencia silenciosos.
	stored, err := m.store.AccessToken(ctx)
	if err != nil || stored == "" {
		return "", errors.New(msgTokenNotStored)
	}

	user := payload.ResolveUser()
	if !user.IsPrivileged() {
		// Credenciales validas pero rol sin acceso: la sesion no puede
		// quedar autenticada.
		_ = m.store.ClearTokens(ctx)
		m.resetState()
		return "", errors.New(msgAccessDenied)
	}

	now := time.Now().UTC()
	m.mu.Lock()
	m.state = domain.Session{
		User:            &user,
		IsAuthenticated: true,
		LastLogin:       &now,
		ExpiresAt:       tokenExpiry(access),
	}
	m.mu.Unlock()

	m.logger.Info("login ok", zap.String("email", user.Email), zap.String("role", user.Role))
	return user.LandingRoute(), nil
}

// Logout siempre "funciona": notifica al upstream sin esperar el resultado,
// limpia tokens y deja la sesion en sus valores iniciales. Es seguro llamarlo
// en cualquier momento, incluso con un login en vuelo.
func (m *Manager) Logout(ctx context.Context) string {
	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.api.Logout(notifyCtx); err != nil {
			m.logger.Warn("logout notify failed", zap.Error(err))
		}
	}()

	if err := m.store.ClearTokens(ctx); err != nil {
		m.logger.Warn("clear tokens failed", zap.Error(err))
	}
	m.resetState()
	m.logger.Info("logged out")
	return LoginRoute
}

func (m *Manager) resetState() {
	m.mu.Lock()
	m.state = domain.Session{}
	m.mu.Unlock()
}

// loginErrorMessage traduce el error del cliente a un mensaje para el UI.
// Nunca se propaga una excepcion de transporte cruda.
func loginErrorMessage(err error) string {
	var statusErr *platform.StatusError
	if errors.As(err, &statusErr) {
		switch statusErr.Status {
		case 401:
			return msgInvalidCredentials
		case 403:
			return msgAccessRestricted
		case 404:
			return msgAccountNotFound
		case 429:
			return msgRateLimited
		default:
			return fmt.Sprintf("Error %d: %s", statusErr.Status, statusErr.StatusText)
		}
	}
	return msgNetwork
}

// tokenExpiry decodifica el exp del access token sin verificar la firma.
// Es informativo para el dashboard; la validez real la decide el upstream.
func tokenExpiry(token string) *time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	t := exp.Time.UTC()
	return &t
}
