package response_models

import "github.com/google/uuid"

type TripResponse struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	DurationDays int       `json:"durationDays"`
	Budget       *float64  `json:"budget"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	IsPublic     bool      `json:"isPublic"`
	Tags         []string  `json:"tags"`
	StopCount    int       `json:"stopCount"`
	CreatedAt    string    `json:"createdAt"`
	UpdatedAt    string    `json:"updatedAt"`
}
