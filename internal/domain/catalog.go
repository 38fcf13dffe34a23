package domain

type CatalogSubservice struct {
	Name      string  `json:"name"`
	BasePrice float64 `json:"basePrice"`
}

// Category is read-only reference data: a service category with its ordered sub-services.
type Category struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Subservices []CatalogSubservice `json:"subservices"`
}
