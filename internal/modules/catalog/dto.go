package catalog

import "fixitnow/internal/domain"

const noProvidersMessage = "No providers found for this service"

type FindProvidersQuery struct {
	Service    string `form:"service"`
	Subservice string `form:"subservice"`
}

type ProvidersResponse struct {
	Providers []domain.Provider `json:"providers"`
	Message   string            `json:"message,omitempty"`
}
