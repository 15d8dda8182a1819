package domain

import "time"

// Session es el snapshot del estado de sesion del proceso.
// Invariante: IsAuthenticated == (User != nil) tras completar cualquier transicion.
type Session struct {
	User            *User      `json:"user"`
	IsAuthenticated bool       `json:"is_authenticated"`
	IsLoading       bool       `json:"is_loading"`
	Error           string     `json:"error,omitempty"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}
