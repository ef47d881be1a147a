package explore_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
)

var Module = fx.Provide(
	provideCityRepo, provideActivityRepo, provideExploreService)

func provideCityRepo(db *gorm.DB) repositories.CityRepository {
	return repositories.NewCityRepository(db)
}

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideExploreService(cityRepo repositories.CityRepository, activityRepo repositories.ActivityRepository) services.ExploreService {
	return services.NewExploreService(cityRepo, activityRepo)
}
