package components

import (
	"reservation-service/internal/infra/remote"
	"reservation-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("clients",
	fx.Provide(
		fx.Annotate(
			remote.NewRoomClientFactory,
			fx.As(new(shared.RoomGatewayFactory)),
		),
		fx.Annotate(
			remote.NewGuestClientFactory,
			fx.As(new(shared.GuestGatewayFactory)),
		),
	),
)
