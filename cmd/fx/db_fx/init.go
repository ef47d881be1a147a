package db_fx

import (
	"context"
	"io"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripplanner/internal/config"
	"tripplanner/internal/infra"
	"tripplanner/pkg/logger"
)

var Module = fx.Provide(
	provideDB, provideRedis)

func provideDB(lc fx.Lifecycle, cfg *config.Config, logOut io.Writer) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, logger.GormLogger(logOut))
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db, nil
}

func provideRedis(lc fx.Lifecycle, cfg *config.Config) *redis.Client {
	client := infra.InitRedis(cfg)
	if client != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
	}
	return client
}
