package budget_fx

import (
	"go.uber.org/fx"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(provideBudgetService)

func provideBudgetService(
	itineraryRepo repositories.ItineraryRepository,
	tripRepo repositories.TripRepository,
	cache services.CacheInvalidator,
) services.BudgetService {
	return services.NewBudgetService(itineraryRepo, tripRepo, cache)
}
