package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitcore/internal/repositories"
	"fitcore/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo, provideProfileService)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(profileRepo repositories.ProfileRepository, planRepo repositories.IPlanRepository) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo, planRepo)
}
