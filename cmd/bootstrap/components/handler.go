package components

import (
	"reservation-service/internal/handler"
	"reservation-service/internal/handler/graph"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		graph.NewResolver,
		graph.NewSchema,
		graph.NewHandler,
	),
	fx.Invoke(handler.NewRouter),
)
