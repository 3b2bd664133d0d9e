package domain

import "time"

const (
	RoleAdmin       = "admin"
	RoleManager     = "manager"
	RoleContributor = "contributor"
)

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleContributor
}

// User is the local principal backing an authenticated request. Accounts are
// provisioned lazily on first credential resolution; email is the unique key.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	AuthProvider string    `json:"auth_provider,omitempty"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
