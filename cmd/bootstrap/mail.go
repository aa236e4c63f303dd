package bootstrap

import (
	"delacream-park/internal/infra/mail"
	"delacream-park/internal/infra/notify"
	"delacream-park/internal/pkg/config"
	"delacream-park/internal/usecase"

	"go.uber.org/fx"
)

var MailModule = fx.Module("mail",
	fx.Provide(
		func(cfg config.Config) mail.Mailer {
			return mail.NewSMTPMailer(cfg.SMTP)
		},
		func(mailer mail.Mailer, cfg config.Config) usecase.Notifier {
			return notify.New(mailer, cfg.SMTP)
		},
	),
)
