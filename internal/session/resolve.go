package session

import "lugmatic-admin/internal/platform"

// El upstream no fija la forma del payload de login, asi que los tokens se
// resuelven con una lista ordenada de accessors: gana el primer campo
// presente. El orden es parte del contrato, no un accidente de lectura.
//
// Access:  accessToken > access_token > token > tokens.accessToken > tokens.access_token
// Refresh: refreshToken > refresh_token > tokens.refreshToken > tokens.refresh_token
var accessTokenFields = []func(platform.LoginPayload) string{
	func(p platform.LoginPayload) string { return p.AccessToken },
	func(p platform.LoginPayload) string { return p.AccessTokenSnake },
	func(p platform.LoginPayload) string { return p.Token },
	func(p platform.LoginPayload) string {
		if p.Tokens == nil {
			return ""
		}
		return p.Tokens.AccessToken
	},
	func(p platform.LoginPayload) string {
		if p.Tokens == nil {
			return ""
		}
		return p.Tokens.AccessTokenSnake
	},
}

var refreshTokenFields = []func(platform.LoginPayload) string{
	func(p platform.LoginPayload) string { return p.RefreshToken },
	func(p platform.LoginPayload) string { return p.RefreshTokenSnake },
	func(p platform.LoginPayload) string {
		if p.Tokens == nil {
			return ""
		}
		return p.Tokens.RefreshToken
	},
	func(p platform.LoginPayload) string {
		if p.Tokens == nil {
			return ""
		}
		return p.Tokens.RefreshTokenSnake
	},
}

func resolveAccessToken(p platform.LoginPayload) string {
	for _, field := range accessTokenFields {
		if v := field(p); v != "" {
			return v
		}
	}
	return ""
}

// resolveRefreshToken cae al access token cuando el backend no emite un
// refresh token propio, para que siempre haya valor junto al access token.
func resolveRefreshToken(p platform.LoginPayload, access string) string {
	for _, field := range refreshTokenFields {
		if v := field(p); v != "" {
			return v
		}
	}
	return access
}
