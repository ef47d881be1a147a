package response_models

import "github.com/google/uuid"

type TripSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Status    string    `json:"status"`
	Budget    *float64  `json:"budget"`
	Currency  string    `json:"currency"`
}

type PopularCity struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Country         string    `json:"country"`
	PopularityScore float64   `json:"popularityScore"`
	ImageURL        string    `json:"imageUrl,omitempty"`
}

type BudgetStats struct {
	TotalBudget    float64 `json:"totalBudget"`
	AveragePerTrip float64 `json:"averagePerTrip"`
	TripCount      int64   `json:"tripCount"`
	CitiesVisited  int64   `json:"citiesVisited"`
}

// DashboardResponse lists the sections that failed in Warnings; the rest are still filled.
type DashboardResponse struct {
	UpcomingTrips []TripSummary `json:"upcomingTrips"`
	RecentTrips   []TripSummary `json:"recentTrips"`
	PopularCities []PopularCity `json:"popularCities"`
	BudgetStats   *BudgetStats  `json:"budgetStats"`
	Warnings      []string      `json:"warnings,omitempty"`
	GeneratedAt   string        `json:"generatedAt"`
}
