package components

import (
	"roomescape/internal/domain/reservation"
	"roomescape/internal/usecase/commands"
	"roomescape/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewTimeSlotCommands,
		commands.NewThemeCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTimeSlotQueries,
		queries.NewThemeQueries,
		queries.NewReservationQueries,
	),
)
