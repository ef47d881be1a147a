package dashboard_fx

import (
	"time"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripplanner/internal/config"
	resp "tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
	mem "tripplanner/pkg/memcache"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService, provideCacheInvalidator,
)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(
	dashboardRepo repositories.DashboardRepository,
	cache mem.Cache[resp.DashboardResponse],
	cfg *config.Config,
) services.DashboardService {
	return services.NewDashboardService(dashboardRepo, cache, services.DashboardConfig{
		CacheTTL: cfg.DashboardCacheTTL,
		Now:      time.Now,
	})
}

func provideCacheInvalidator(dashboard services.DashboardService) services.CacheInvalidator {
	return dashboard
}
