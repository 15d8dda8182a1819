package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"lugmatic-admin/internal/domain"
)

// TokenSource devuelve el access token vigente, o "" si no hay sesion.
type TokenSource func(ctx context.Context) (string, error)

// Client habla con la API REST de la plataforma de streaming.
// Toda peticion autenticada adjunta el bearer token leido del TokenSource;
// los call sites nunca manejan credenciales directamente.
type Client struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
	logger  *zap.Logger
}

// NewClient construye un cliente apuntando a la API de la plataforma.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// FlexID acepta ids que el upstream emite como numero o como string.
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

func (f FlexID) String() string { return string(f) }

// UserPayload es la forma laxa con la que el upstream describe un usuario.
type UserPayload struct {
	ID          FlexID `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	ArtistID    FlexID `json:"artist_id"`
	DisplayName string `json:"display_name"`
}

// ToDomain normaliza el payload a la entidad interna.
func (p UserPayload) ToDomain() domain.User {
	return domain.User{
		ID:          p.ID.String(),
		Email:       p.Email,
		Role:        p.Role,
		ArtistID:    p.ArtistID.String(),
		DisplayName: p.DisplayName,
	}
}

// TokenEnvelope agrupa las variantes anidadas bajo "tokens".
type TokenEnvelope struct {
	AccessToken       string `json:"accessToken"`
	AccessTokenSnake  string `json:"access_token"`
	RefreshToken      string `json:"refreshToken"`
	RefreshTokenSnake string `json:"refresh_token"`
}

// LoginPayload captura todas las formas conocidas de la respuesta de login.
// El usuario puede venir anidado bajo "user" o aplanado; los tokens pueden
// venir en cualquiera de los campos declarados. La resolucion de precedencia
// vive en el session manager, no aqui.
type LoginPayload struct {
	User        *UserPayload `json:"user"`
	UserPayload              // fallback aplanado

	AccessToken       string         `json:"accessToken"`
	AccessTokenSnake  string         `json:"access_token"`
	Token             string         `json:"token"`
	RefreshToken      string         `json:"refreshToken"`
	RefreshTokenSnake string         `json:"refresh_token"`
	Tokens            *TokenEnvelope `json:"tokens"`
}

// ResolveUser devuelve la identidad, prefiriendo la forma anidada.
func (p LoginPayload) ResolveUser() domain.User {
	if p.User != nil {
		return p.User.ToDomain()
	}
	return p.UserPayload.ToDomain()
}

// Login autentica contra POST /auth/login.
func (c *Client) Login(ctx context.Context, email, password string) (LoginPayload, error) {
	body := map[string]string{"email": email, "password": password}
	var payload LoginPayload
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &payload); err != nil {
		return LoginPayload{}, err
	}
	return payload, nil
}

// CurrentUser valida la sesion vigente contra GET /auth/me.
func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var payload UserPayload
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, &payload); err != nil {
		return domain.User{}, err
	}
	return payload.ToDomain(), nil
}

// Logout notifica el cierre de sesion al upstream. Best effort.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// doJSON ejecuta una peticion JSON contra el upstream, desenvolviendo la
// envoltura {"data": ...} cuando esta presente.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		token, err := c.tokens(ctx)
		if err == nil && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if resp.StatusCode >= 400 {
		if c.logger != nil {
			c.logger.Warn("platform error",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", resp.StatusCode),
			)
		}
		return newStatusError(resp.StatusCode)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	return unmarshalEnvelope(respBody, out)
}

// unmarshalEnvelope decodifica out desde body, desde body.data si existe.
func unmarshalEnvelope(body []byte, out any) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		body = env.Data
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
