package domain

import "time"

type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleAdmin    UserRole = "admin"
	RoleProvider UserRole = "provider"
)

// Customer is a principal that books providers.
type Customer struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Actor is the authenticated caller of an operation, taken from the token claims.
type Actor struct {
	ID   string
	Role UserRole
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
