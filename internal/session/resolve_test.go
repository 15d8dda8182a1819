package session

import (
	"testing"

	"lugmatic-admin/internal/platform"
)

func TestResolveAccessToken_Precedence(t *testing.T) {
	cases := []struct {
		name    string
		payload platform.LoginPayload
		want    string
	}{
		{
			"accessToken alone",
			platform.LoginPayload{AccessToken: "a"},
			"a",
		},
		{
			"access_token alone",
			platform.LoginPayload{AccessTokenSnake: "b"},
			"b",
		},
		{
			"token alone",
			platform.LoginPayload{Token: "c"},
			"c",
		},
		{
			"tokens.accessToken alone",
			platform.LoginPayload{Tokens: &platform.TokenEnvelope{AccessToken: "d"}},
			"d",
		},
		{
			"tokens.access_token alone",
			platform.LoginPayload{Tokens: &platform.TokenEnvelope{AccessTokenSnake: "e"}},
			"e",
		},
		{
			"accessToken beats access_token",
			platform.LoginPayload{AccessToken: "a", AccessTokenSnake: "b"},
			"a",
		},
		{
			"access_token beats token",
			platform.LoginPayload{AccessTokenSnake: "b", Token: "c"},
			"b",
		},
		{
			"token beats nested",
			platform.LoginPayload{Token: "c", Tokens: &platform.TokenEnvelope{AccessToken: "d"}},
			"c",
		},
		{
			"nested camel beats nested snake",
			platform.LoginPayload{Tokens: &platform.TokenEnvelope{AccessToken: "d", AccessTokenSnake: "e"}},
			"d",
		},
		{
			"nothing present",
			platform.LoginPayload{},
			"",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveAccessToken(tc.payload); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestResolveRefreshToken_Precedence(t *testing.T) {
	cases := []struct {
		name    string
		payload platform.LoginPayload
		want    string
	}{
		{
			"refreshToken alone",
			platform.LoginPayload{RefreshToken: "r1"},
			"r1",
		},
		{
			"refresh_token alone",
			platform.LoginPayload{RefreshTokenSnake: "r2"},
			"r2",
		},
		{
			"nested refreshToken",
			platform.LoginPayload{Tokens: &platform.TokenEnvelope{RefreshToken: "r3"}},
			"r3",
		},
		{
			"nested refresh_token",
			platform.LoginPayload{Tokens: &platform.TokenEnvelope{RefreshTokenSnake: "r4"}},
			"r4",
		},
		{
			"refreshToken beats refresh_token",
			platform.LoginPayload{RefreshToken: "r1", RefreshTokenSnake: "r2"},
			"r1",
		},
		{
			"fallback to access",
			platform.LoginPayload{},
			"acc",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveRefreshToken(tc.payload, "acc"); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
