package auth

import "fixitnow/internal/domain"

type RegisterCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

type RegisterProviderRequest struct {
	Name       string            `json:"name" binding:"required"`
	Email      string            `json:"email" binding:"required,email"`
	Password   string            `json:"password" binding:"required,min=6"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	Services   []domain.Offering `json:"services"`
	Experience string            `json:"experience"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateCustomerRequest: absent fields are left unchanged.
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// AuthResult is the {token, user} body returned by register and login.
// User is a *domain.Customer or a *domain.Provider; neither serializes its password digest.
type AuthResult struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}
