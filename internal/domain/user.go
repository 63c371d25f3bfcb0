package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`

	// PasswordHash is only populated when the argon2id verifier is active.
	// The default shared-password verifier neither stores nor reads it.
	PasswordHash string `json:"-"`
}
