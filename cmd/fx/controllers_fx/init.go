package controllers_fx

import (
	"go.uber.org/fx"

	"fitcore/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewProfileController),
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewTrainerController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewMemberAdminController))
