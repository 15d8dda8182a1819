package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// SQLiteTokenStore persiste los tokens en un archivo sqlite local, el
// equivalente durable al storage del navegador. Si se configura un secreto,
// los valores se sellan en reposo con secretbox.
type SQLiteTokenStore struct {
	db  *sql.DB
	key *[32]byte
}

// NewSQLiteTokenStore abre (o crea) la base en dbPath.
func NewSQLiteTokenStore(dbPath, secret string) (*SQLiteTokenStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir token db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
        CREATE TABLE IF NOT EXISTS tokens (
            name  TEXT PRIMARY KEY,
            value TEXT NOT NULL
        )
    `); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tokens table: %w", err)
	}

	store := &SQLiteTokenStore{db: db}
	if secret != "" {
		key := sha256.Sum256([]byte(secret))
		store.key = &key
	}
	return store, nil
}

func (s *SQLiteTokenStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteTokenStore) SetTokens(ctx context.Context, access, refresh string) error {
	accessVal, err := s.seal(access)
	if err != nil {
		return err
	}
	refreshVal, err := s.seal(refresh)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const upsert = `
        INSERT INTO tokens (name, value) VALUES (?, ?)
        ON CONFLICT(name) DO UPDATE SET value = excluded.value
    `
	if _, err := tx.ExecContext(ctx, upsert, accessTokenKey, accessVal); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, upsert, refreshTokenKey, refreshVal); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteTokenStore) AccessToken(ctx context.Context) (string, error) {
	return s.get(ctx, accessTokenKey)
}

func (s *SQLiteTokenStore) RefreshToken(ctx context.Context) (string, error) {
	return s.get(ctx, refreshTokenKey)
}

func (s *SQLiteTokenStore) get(ctx context.Context, name string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM tokens WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return s.open(value)
}

func (s *SQLiteTokenStore) ClearTokens(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tokens`)
	return err
}

func (s *SQLiteTokenStore) seal(plaintext string) (string, error) {
	if s.key == nil {
		return plaintext, nil
	}
	var nonce [24]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", err
	}
	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, s.key)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *SQLiteTokenStore) open(stored string) (string, error) {
	if s.key == nil {
		return stored, nil
	}
	sealed, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", fmt.Errorf("decode sealed token: %w", err)
	}
	if len(sealed) < 24 {
		return "", errors.New("sealed token too short")
	}
	var nonce [24]byte
	copy(nonce[:], sealed[:24])
	plaintext, ok := secretbox.Open(nil, sealed[24:], &nonce, s.key)
	if !ok {
		return "", errors.New("open sealed token failed")
	}
	return string(plaintext), nil
}
