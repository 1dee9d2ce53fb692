package dashboard_fx

import (
	"go.uber.org/fx"

	"fitcore/internal/repositories"
	"fitcore/internal/services"
)

var Module = fx.Provide(provideDashboardService)

func provideDashboardService(profileRepo repositories.ProfileRepository) services.DashboardServiceInterface {
	return services.NewDashboardService(profileRepo)
}
