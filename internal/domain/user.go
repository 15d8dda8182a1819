package domain

import "time"

// Roles con acceso permitido al dashboard.
const (
	RoleAdmin  = "admin"
	RoleArtist = "artist"
)

type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	ArtistID    string    `json:"artist_id,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// IsPrivileged indica si el rol puede entrar al dashboard.
func (u User) IsPrivileged() bool {
	return u.Role == RoleAdmin || u.Role == RoleArtist
}

// LandingRoute devuelve la ruta inicial segun el rol del usuario.
func (u User) LandingRoute() string {
	if u.Role == RoleArtist {
		return "/artist/dashboard"
	}
	return "/admin/dashboard"
}
