package bootstrap

import (
	"delacream-park/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	MailModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
