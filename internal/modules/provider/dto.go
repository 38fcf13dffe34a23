package provider

import "fixitnow/internal/domain"

// UpdateProviderRequest: absent fields are left unchanged; services replaces the whole list.
type UpdateProviderRequest struct {
	Name       *string            `json:"name" binding:"omitempty,min=1"`
	Phone      *string            `json:"phone"`
	Address    *string            `json:"address"`
	Experience *string            `json:"experience"`
	Services   *[]domain.Offering `json:"services"`
}
