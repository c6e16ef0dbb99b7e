package readstore

import (
	"context"

	"roomescape/internal/infra"
	"roomescape/internal/infra/repository/converter"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"
	"roomescape/internal/usecase/queries"
)

type TimeSlotReadQueries interface {
	GetTimeSlotByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.TimeSlot, error)
	ListTimeSlots(ctx context.Context, db sqlc.DBTX) ([]sqlc.TimeSlot, error)
	TimeSlotInUse(ctx context.Context, db sqlc.DBTX, timeID int64) (bool, error)
}

type TimeSlotReadStore struct {
	queries TimeSlotReadQueries
	db      sqlc.DBTX
}

func NewTimeSlotReadStore(queries TimeSlotReadQueries, db sqlc.DBTX) *TimeSlotReadStore {
	return &TimeSlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TimeSlotReadStore) FindAll(ctx context.Context) ([]*queries.TimeSlotView, error) {
	rows, err := r.queries.ListTimeSlots(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time slots", err)
	}
	result := make([]*queries.TimeSlotView, len(rows))
	for i, row := range rows {
		result[i] = toTimeSlotView(row)
	}
	return result, nil
}

func (r *TimeSlotReadStore) FindByID(ctx context.Context, id int64) (*queries.TimeSlotView, error) {
	row, err := r.queries.GetTimeSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("time slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get time slot by id", err)
	}
	return toTimeSlotView(row), nil
}

func (r *TimeSlotReadStore) InUse(ctx context.Context, id int64) (bool, error) {
	inUse, err := r.queries.TimeSlotInUse(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check time slot usage", err)
	}
	return inUse, nil
}

func toTimeSlotView(row sqlc.TimeSlot) *queries.TimeSlotView {
	return &queries.TimeSlotView{
		ID:      row.ID,
		StartAt: converter.StartAtFromPgtype(row.StartAt).String(),
	}
}
