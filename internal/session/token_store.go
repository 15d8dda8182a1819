package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore persiste el par de tokens de la sesion entre reinicios.
// Existe un par guardado si y solo si el ultimo login fue exitoso y no hubo
// logout desde entonces.
type TokenStore interface {
	SetTokens(ctx context.Context, access, refresh string) error
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	ClearTokens(ctx context.Context) error
}

type memoryTokenStore struct {
	mu      sync.Mutex
	access  string
	refresh string
}

// NewMemoryTokenStore crea un store en memoria. No sobrevive reinicios;
// se usa en tests y como modo degradado.
func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (s *memoryTokenStore) SetTokens(_ context.Context, access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.refresh = refresh
	return nil
}

func (s *memoryTokenStore) AccessToken(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access, nil
}

func (s *memoryTokenStore) RefreshToken(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh, nil
}

func (s *memoryTokenStore) ClearTokens(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = ""
	s.refresh = ""
	return nil
}

type redisTokenStore struct {
	client *redis.Client
	prefix string
}

// NewRedisTokenStore crea un store respaldado por redis.
func NewRedisTokenStore(client *redis.Client) TokenStore {
	if client == nil {
		return nil
	}
	return &redisTokenStore{
		client: client,
		prefix: "session:tokens:",
	}
}

func (s *redisTokenStore) SetTokens(ctx context.Context, access, refresh string) error {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	if err := s.client.Set(ctx, s.prefix+"access", access, 0).Err(); err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+"refresh", refresh, 0).Err()
}

func (s *redisTokenStore) AccessToken(ctx context.Context) (string, error) {
	return s.get(ctx, s.prefix+"access")
}

func (s *redisTokenStore) RefreshToken(ctx context.Context) (string, error) {
	return s.get(ctx, s.prefix+"refresh")
}

func (s *redisTokenStore) get(ctx context.Context, key string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *redisTokenStore) ClearTokens(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()
	return s.client.Del(ctx, s.prefix+"access", s.prefix+"refresh").Err()
}
