package session

import (
	"context"
	"testing"
)

func TestMemoryTokenStore_RoundTrip(t *testing.T) {
	store := NewMemoryTokenStore()
	ctx := context.Background()

	access, err := store.AccessToken(ctx)
	if err != nil || access != "" {
		t.Fatalf("expected empty store, got %q (%v)", access, err)
	}

	if err := store.SetTokens(ctx, "a1", "r1"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	access, _ = store.AccessToken(ctx)
	refresh, _ := store.RefreshToken(ctx)
	if access != "a1" || refresh != "r1" {
		t.Fatalf("unexpected tokens: %q %q", access, refresh)
	}

	// Sobrescribe el par existente.
	if err := store.SetTokens(ctx, "a2", "r2"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	access, _ = store.AccessToken(ctx)
	if access != "a2" {
		t.Fatalf("expected overwrite, got %q", access)
	}

	if err := store.ClearTokens(ctx); err != nil {
		t.Fatalf("clear tokens: %v", err)
	}
	access, _ = store.AccessToken(ctx)
	if access != "" {
		t.Fatalf("expected cleared store, got %q", access)
	}

	// Limpiar un store vacio no es un error.
	if err := store.ClearTokens(ctx); err != nil {
		t.Fatalf("clear on empty store: %v", err)
	}
}
