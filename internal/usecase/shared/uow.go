package shared

import (
	"context"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/theme"
	"roomescape/internal/domain/timeslot"
	sqlc "roomescape/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	TimeSlots() TimeSlotRepository
	Themes() ThemeRepository
	Reservations() ReservationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups the booking rules need while a write
// transaction is open.
type CommandReads interface {
	TimeSlotByID(ctx context.Context, id int64) (*timeslot.TimeSlot, error)
	ThemeByID(ctx context.Context, id int64) (*theme.Theme, error)
	TimeSlotInUse(ctx context.Context, id int64) (bool, error)
	ThemeInUse(ctx context.Context, id int64) (bool, error)
}

type TimeSlotRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, slot *timeslot.TimeSlot) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) (int64, error)
}

type ThemeRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, th *theme.Theme) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) (int64, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, res *reservation.Reservation) (int64, error)
	Delete(ctx context.Context, tx sqlc.DBTX, id int64) (int64, error)
}
