package components

import (
	"reservation-service/internal/infra/repository"
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)
