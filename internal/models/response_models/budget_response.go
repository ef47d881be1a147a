package response_models

import "github.com/google/uuid"

type CategoryTotals struct {
	Activities     float64 `json:"activities"`
	Food           float64 `json:"food"`
	Transportation float64 `json:"transportation"`
	Other          float64 `json:"other"`
}

type StopCostBreakdown struct {
	StopID        uuid.UUID `json:"stopId"`
	CityName      string    `json:"cityName"`
	OrderIndex    int       `json:"orderIndex"`
	ArrivalDate   string    `json:"arrivalDate"`
	DepartureDate string    `json:"departureDate"`
	EstimatedCost float64   `json:"estimatedCost"`
	ActivityCosts float64   `json:"activityCosts"`
	Accommodation float64   `json:"accommodation"`
}

type BudgetBreakdown struct {
	TripID             uuid.UUID           `json:"tripId"`
	Currency           string              `json:"currency"`
	TotalBudget        float64             `json:"totalBudget"`
	TotalEstimatedCost float64             `json:"totalEstimatedCost"`
	RemainingBudget    float64             `json:"remainingBudget"`
	IsOverBudget       bool                `json:"isOverBudget"`
	ByCategory         CategoryTotals      `json:"byCategory"`
	TotalAccommodation float64             `json:"totalAccommodation"`
	Stops              []StopCostBreakdown `json:"stops"`
}
