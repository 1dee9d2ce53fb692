package mail_fx

import (
	"go.uber.org/fx"

	"fitcore/internal/config"
	"fitcore/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService(cfg *config.Config) services.IMailService {
	return services.NewSMTPMailService(cfg.SMTP, cfg.AppBaseURL)
}
