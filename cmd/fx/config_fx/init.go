package config_fx

import (
	"io"

	"go.uber.org/fx"
	"tripplanner/internal/config"
	"tripplanner/pkg/logger"
	"tripplanner/pkg/utils"
)

var Module = fx.Provide(
	config.Load,
	provideLogWriter,
	provideTokenManager,
)

// provideLogWriter configures logrus and hands the shared sink to the request logger.
func provideLogWriter(cfg *config.Config) (io.Writer, error) {
	return logger.Setup(cfg.LogLevel, cfg.LogFile)
}

func provideTokenManager(cfg *config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)
}
