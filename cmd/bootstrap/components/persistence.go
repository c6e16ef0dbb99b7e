package components

import (
	"roomescape/internal/infra/readstore"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/infra/uow"
	"roomescape/internal/usecase/queries"
	"roomescape/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// TimeSlot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TimeSlotReadQueries)),
		),
		fx.Annotate(
			readstore.NewTimeSlotReadStore,
			fx.As(new(queries.TimeSlotReadStore)),
		),
		// Theme
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ThemeReadQueries)),
		),
		fx.Annotate(
			readstore.NewThemeReadStore,
			fx.As(new(queries.ThemeReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

// Write repositories are created per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
