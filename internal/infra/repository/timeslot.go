package repository

import (
	"context"

	"roomescape/internal/domain/timeslot"
	"roomescape/internal/infra"
	"roomescape/internal/infra/repository/converter"
	sqlc "roomescape/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
)

type TimeSlotWriteQueries interface {
	CreateTimeSlot(ctx context.Context, db sqlc.DBTX, startAt pgtype.Time) (sqlc.TimeSlot, error)
	DeleteTimeSlot(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type TimeSlotRepository struct {
	queries TimeSlotWriteQueries
}

func NewTimeSlotRepository(queries TimeSlotWriteQueries) *TimeSlotRepository {
	return &TimeSlotRepository{queries: queries}
}

func (r *TimeSlotRepository) Create(ctx context.Context, tx sqlc.DBTX, slot *timeslot.TimeSlot) (int64, error) {
	row, err := r.queries.CreateTimeSlot(ctx, tx, converter.StartAtToPgtype(slot.StartAt()))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create time slot", err)
	}
	return row.ID, nil
}

// Delete returns the number of rows removed; zero is not an error.
func (r *TimeSlotRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) (int64, error) {
	n, err := r.queries.DeleteTimeSlot(ctx, tx, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete time slot", err)
	}
	return n, nil
}
