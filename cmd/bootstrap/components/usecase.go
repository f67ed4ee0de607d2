package components

import (
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		commands.NewReservationCommands,
		queries.NewReservationQueries,
	),
)
