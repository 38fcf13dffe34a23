package domain

import (
	"math"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a rating a customer leaves for a provider. Rows are never updated.
type Feedback struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"userId"`
	ProviderID string    `json:"providerId"`
	RequestID  *string   `json:"requestId,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ClampRating rounds v to the nearest integer and clamps it into [MinRating, MaxRating].
// Out-of-range input is never rejected.
func ClampRating(v float64) int {
	if math.IsNaN(v) {
		return MinRating
	}
	r := math.Round(v)
	if r < MinRating {
		return MinRating
	}
	if r > MaxRating {
		return MaxRating
	}
	return int(r)
}

// FeedbackDetails is a feedback row with the rater and ratee names joined at read time.
type FeedbackDetails struct {
	Feedback
	UserName     string `json:"userName"`
	ProviderName string `json:"providerName"`
}
