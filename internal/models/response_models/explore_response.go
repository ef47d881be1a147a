package response_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

type CityResponse struct {
	ID              uuid.UUID          `json:"id"`
	Name            string             `json:"name"`
	Country         string             `json:"country"`
	Region          string             `json:"region"`
	Latitude        float64            `json:"latitude"`
	Longitude       float64            `json:"longitude"`
	CostIndex       float64            `json:"costIndex"`
	PopularityScore float64            `json:"popularityScore"`
	Description     string             `json:"description"`
	ImageURL        string             `json:"imageUrl"`
	Timezone        string             `json:"timezone"`
	Metadata        json.RawMessage    `json:"metadata,omitempty"`
	Activities      []ActivityResponse `json:"activities,omitempty"`
}

type ActivityResponse struct {
	ID              uuid.UUID `json:"id"`
	CityID          uuid.UUID `json:"cityId"`
	CityName        string    `json:"cityName,omitempty"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Type            string    `json:"type"`
	DurationMinutes int       `json:"durationMinutes"`
	Cost            *float64  `json:"cost"`
	Currency        string    `json:"currency"`
	CostType        string    `json:"costType"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	Difficulty      string    `json:"difficulty"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"reviewCount"`
}

type CountryCount struct {
	Country   string `json:"country"`
	CityCount int64  `json:"cityCount"`
}
