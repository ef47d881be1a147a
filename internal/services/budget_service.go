package services

import (
	"context"

	"github.com/google/uuid"
	dbm "tripplanner/internal/models/db_models"
	resp "tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type BudgetService interface {
	GetBudgetBreakdown(ctx context.Context, ownerId, tripId uuid.UUID) (*resp.BudgetBreakdown, error)
	// UpdateBudget replaces the trip's declared budget. Stop and activity costs are untouched.
	UpdateBudget(ctx context.Context, ownerId, tripId uuid.UUID, budget float64) (*resp.BudgetBreakdown, error)
}

type budgetService struct {
	itineraryRepo repositories.ItineraryRepository
	tripRepo      repositories.TripRepository
	cache         CacheInvalidator
}

func NewBudgetService(
	itineraryRepo repositories.ItineraryRepository,
	tripRepo repositories.TripRepository,
	cache CacheInvalidator,
) BudgetService {
	return &budgetService{
		itineraryRepo: itineraryRepo,
		tripRepo:      tripRepo,
		cache:         cache,
	}
}

func (s *budgetService) GetBudgetBreakdown(ctx context.Context, ownerId, tripId uuid.UUID) (*resp.BudgetBreakdown, error) {
	trip, err := s.itineraryRepo.FindTripWithItinerary(ctx, tripId, ownerId)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	out := buildBreakdown(trip)
	return &out, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, ownerId, tripId uuid.UUID, budget float64) (*resp.BudgetBreakdown, error) {
	if budget < 0 {
		return nil, utils.NewValidationError("budget", "must be greater than or equal to 0")
	}

	found, err := s.tripRepo.UpdateBudget(ctx, tripId, ownerId, budget)
	if err != nil {
		return nil, utils.WrapDatabaseError(err)
	}
	if !found {
		return nil, utils.ErrTripNotFound
	}
	s.cache.Invalidate(ctx, ownerId)

	return s.GetBudgetBreakdown(ctx, ownerId, tripId)
}

// budgetCategory buckets a catalog activity type for the breakdown.
func budgetCategory(t dbm.ActivityType, totals *resp.CategoryTotals) *float64 {
	switch t {
	case dbm.ActivityTypeSightseeing, dbm.ActivityTypeAdventure, dbm.ActivityTypeEntertainment:
		return &totals.Activities
	case dbm.ActivityTypeFood:
		return &totals.Food
	case dbm.ActivityTypeTransport:
		return &totals.Transportation
	default:
		return &totals.Other
	}
}

// buildBreakdown derives spend from stop estimates and catalog activity costs. Whatever part of a
// stop's estimate is not explained by its activities is booked as accommodation, which goes
// negative when the activities cost more than the estimate.
func buildBreakdown(trip *dbm.Trip) resp.BudgetBreakdown {
	out := resp.BudgetBreakdown{
		TripID:   trip.ID,
		Currency: trip.Currency,
		Stops:    make([]resp.StopCostBreakdown, 0, len(trip.Stops)),
	}
	if trip.Budget != nil {
		out.TotalBudget = *trip.Budget
	}

	for i := range trip.Stops {
		stop := &trip.Stops[i]
		var stopCost float64
		if stop.EstimatedCost != nil {
			stopCost = *stop.EstimatedCost
		}
		out.TotalEstimatedCost += stopCost

		var activityCosts float64
		for _, ta := range stop.Activities {
			if ta.Activity.Cost == nil {
				continue
			}
			cost := *ta.Activity.Cost
			activityCosts += cost
			*budgetCategory(ta.Activity.Type, &out.ByCategory) += cost
		}

		accommodation := stopCost - activityCosts
		out.TotalAccommodation += accommodation
		out.Stops = append(out.Stops, resp.StopCostBreakdown{
			StopID:        stop.ID,
			CityName:      stop.City.Name,
			OrderIndex:    stop.OrderIndex,
			ArrivalDate:   utils.FormatDate(stop.ArrivalDate),
			DepartureDate: utils.FormatDate(stop.DepartureDate),
			EstimatedCost: stopCost,
			ActivityCosts: activityCosts,
			Accommodation: accommodation,
		})
	}

	out.RemainingBudget = out.TotalBudget - out.TotalEstimatedCost
	out.IsOverBudget = out.RemainingBudget < 0
	return out
}
