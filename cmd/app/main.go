package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"fitcore/cmd/fx/auth_fx"
	"fitcore/cmd/fx/controllers_fx"
	"fitcore/cmd/fx/dashboard_fx"
	"fitcore/cmd/fx/db_fx"
	"fitcore/cmd/fx/mail_fx"
	"fitcore/cmd/fx/memcache_fx"
	"fitcore/cmd/fx/plan_fx"
	"fitcore/cmd/fx/profile_fx"
	"fitcore/cmd/fx/trainer_fx"
	"fitcore/internal/api/controllers"
	"fitcore/internal/config"
	"fitcore/internal/infra"
	"fitcore/pkg/logger"
	"fitcore/pkg/middleware"
	"fitcore/pkg/utils"

	"gorm.io/gorm"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(provideLogger),

		db_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		auth_fx.Module,
		profile_fx.Module,
		plan_fx.Module,
		trainer_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(cfg.Env)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, db *gorm.DB, log zerolog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info().Str("port", cfg.Port).Msg("starting HTTP server")
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatal().Err(err).Msg("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	log zerolog.Logger,
	jwtManager *utils.JWTManager,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	planController *controllers.PlanController,
	trainerController *controllers.TrainerController,
	dashboardController *controllers.DashboardController,
	memberAdminController *controllers.MemberAdminController,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	RegisterRoutes(r, jwtManager,
		authController, profileController, planController,
		trainerController, dashboardController, memberAdminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	jwtManager *utils.JWTManager,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	planController *controllers.PlanController,
	trainerController *controllers.TrainerController,
	dashboardController *controllers.DashboardController,
	memberAdminController *controllers.MemberAdminController) {

	// Public: signup/login and the marketing site widgets.
	r.POST("/signup", authController.Signup)
	r.POST("/login", authController.Login)
	r.POST("/forgot-password", authController.ForgotPassword)
	r.POST("/reset-password", authController.ResetPassword)

	r.GET("/public/plans", planController.ListPublic)
	r.GET("/user-count", dashboardController.UserCount)
	r.GET("/new-members", dashboardController.NewMembers)
	r.GET("/recent-members", dashboardController.RecentMembers)
	r.GET("/elite-members-count", dashboardController.EliteCount)
	r.GET("/trainers", trainerController.List)
	r.GET("/trainers/:id", trainerController.Get)

	// Everything below passes the access gate.
	protected := r.Group("", middleware.JWTAuthMiddleware(jwtManager))

	protected.GET("/check-profile", profileController.CheckProfile)
	protected.POST("/complete-profile", profileController.CompleteProfile)
	protected.GET("/user-full-details", profileController.FullDetails)
	protected.PUT("/update-plan", profileController.UpdatePlan)

	protected.GET("/plans", planController.List)
	protected.POST("/plans", planController.Create)
	protected.PUT("/plans/:id", planController.Update)
	protected.DELETE("/plans/:id", planController.Delete)

	protected.GET("/all-users", memberAdminController.ListMembers)
	protected.PUT("/update-user/:id", memberAdminController.UpdateMember)
	protected.DELETE("/delete-user/:id", memberAdminController.DeleteMember)

	protected.POST("/trainers", trainerController.Create)
	protected.PUT("/trainers/:id", trainerController.Update)
	protected.DELETE("/trainers/:id", trainerController.Delete)
}
