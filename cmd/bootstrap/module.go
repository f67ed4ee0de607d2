package bootstrap

import (
	"reservation-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	SeedModule,
	components.ClientModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
