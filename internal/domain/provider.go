package domain

import (
	"strings"
	"time"
)

type OfferedSubservice struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Offering is one category a provider works in, with the sub-services and prices they quote.
type Offering struct {
	Category    string              `json:"category"`
	Subservices []OfferedSubservice `json:"subservices"`
}

type Provider struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
	Services     []Offering `json:"services"`
	Experience   string     `json:"experience,omitempty"`
	Rating       float64    `json:"rating"`
	RatingCount  int        `json:"ratingCount"`
	Role         UserRole   `json:"role"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// Offers reports whether the provider lists the category and, when subservice is non-empty,
// a sub-service of that name inside it. Matching is case-insensitive.
func (p *Provider) Offers(category, subservice string) bool {
	for _, o := range p.Services {
		if !strings.EqualFold(strings.TrimSpace(o.Category), strings.TrimSpace(category)) {
			continue
		}
		if subservice == "" {
			return true
		}
		for _, s := range o.Subservices {
			if strings.EqualFold(strings.TrimSpace(s.Name), strings.TrimSpace(subservice)) {
				return true
			}
		}
	}
	return false
}
