package trainer_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fitcore/internal/repositories"
	"fitcore/internal/services"
)

var Module = fx.Provide(
	provideTrainerRepo, provideTrainerService)

func provideTrainerRepo(db *gorm.DB) repositories.ITrainerRepository {
	return repositories.NewTrainerRepository(db)
}

func provideTrainerService(trainerRepo repositories.ITrainerRepository) services.TrainerServiceInterface {
	return services.NewTrainerService(trainerRepo)
}
