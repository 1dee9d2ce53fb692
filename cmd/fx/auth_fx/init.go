package auth_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitcore/internal/config"
	"fitcore/internal/repositories"
	"fitcore/internal/services"
	mem "fitcore/pkg/memcache"
	"fitcore/pkg/utils"
)

var Module = fx.Provide(
	provideJWTManager, provideAccountRepo, provideAuthService)

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
}

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAuthService(
	accountRepo repositories.AccountRepository,
	jwtManager *utils.JWTManager,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
) services.AuthServiceInterface {
	return services.NewAuthService(accountRepo, jwtManager, mailService, resetTokens)
}
