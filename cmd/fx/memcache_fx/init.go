package memcache_fx

import (
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
	resp "tripplanner/internal/models/response_models"
	mem "tripplanner/pkg/memcache"
)

var Module = fx.Provide(provideDashboardCache)

// provideDashboardCache shares dashboards through Redis when it is configured.
func provideDashboardCache(client *redis.Client) mem.Cache[resp.DashboardResponse] {
	if client != nil {
		return mem.NewRedisCache[resp.DashboardResponse](client, "tripplanner:")
	}
	return mem.NewTTLCache[resp.DashboardResponse](time.Now)
}
