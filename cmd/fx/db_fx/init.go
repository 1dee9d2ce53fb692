package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitcore/internal/config"
	"fitcore/internal/infra"
)

var Module = fx.Options(
	fx.Provide(provideDB),
	fx.Invoke(infra.AutoMigrate),
)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
