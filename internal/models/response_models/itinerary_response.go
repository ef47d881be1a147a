package response_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

const (
	EntryArrival   = "arrival"
	EntryDeparture = "departure"
)

type CitySummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Region    string    `json:"region,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	ImageURL  string    `json:"imageUrl,omitempty"`
}

type ActivitySummary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	DurationMinutes int       `json:"durationMinutes"`
	Cost            *float64  `json:"cost"`
	Currency        string    `json:"currency"`
	CostType        string    `json:"costType"`
	Rating          float64   `json:"rating"`
}

type TripActivityResponse struct {
	ID        uuid.UUID       `json:"id"`
	StopID    uuid.UUID       `json:"stopId"`
	Activity  ActivitySummary `json:"activity"`
	StartTime string          `json:"startTime"`
	EndTime   string          `json:"endTime"`
	Cost      *float64        `json:"cost"`
	Notes     string          `json:"notes"`
	Status    string          `json:"status"`
}

type StopResponse struct {
	ID            uuid.UUID              `json:"id"`
	TripID        uuid.UUID              `json:"tripId"`
	City          CitySummary            `json:"city"`
	OrderIndex    int                    `json:"orderIndex"`
	ArrivalDate   string                 `json:"arrivalDate"`
	DepartureDate string                 `json:"departureDate"`
	Nights        int                    `json:"nights"`
	EstimatedCost *float64               `json:"estimatedCost"`
	Notes         string                 `json:"notes"`
	Status        string                 `json:"status"`
	Activities    []TripActivityResponse `json:"activities"`
}

// ItineraryEntry places a stop on a calendar day, either as an arrival or a departure.
type ItineraryEntry struct {
	Type string       `json:"type"`
	Stop StopResponse `json:"stop"`
}

type ItineraryDay struct {
	Date    string           `json:"date"`
	Entries []ItineraryEntry `json:"entries"`
}

type ItineraryResponse struct {
	TripID    uuid.UUID       `json:"tripId"`
	TripName  string          `json:"tripName"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	StopCount int             `json:"stopCount"`
	Days      []ItineraryDay  `json:"days"`
	Route     json.RawMessage `json:"route,omitempty"`
}

type StopOrder struct {
	StopID     uuid.UUID `json:"stopId"`
	OrderIndex int       `json:"orderIndex"`
}
