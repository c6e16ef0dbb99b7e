package readstore

import (
	"context"
	"time"

	"roomescape/internal/infra"
	"roomescape/internal/infra/repository/converter"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"
	"roomescape/internal/usecase/queries"
)

type ReservationViewQueries interface {
	GetReservationViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetReservationViewByIDRow, error)
	ListReservationViews(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListReservationViewsRow, error)
	ListAvailabilityByThemeAndDate(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailabilityByThemeAndDateParams) ([]sqlc.ListAvailabilityByThemeAndDateRow, error)
}

type ReservationReadStore struct {
	queries ReservationViewQueries
	db      sqlc.DBTX
}

func NewReservationReadStore(queries ReservationViewQueries, db sqlc.DBTX) *ReservationReadStore {
	return &ReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReservationReadStore) FindAll(ctx context.Context) ([]*queries.ReservationView, error) {
	rows, err := r.queries.ListReservationViews(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	result := make([]*queries.ReservationView, len(rows))
	for i, row := range rows {
		// both row types share one column list
		result[i] = toReservationView(sqlc.GetReservationViewByIDRow(row))
	}
	return result, nil
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row, err := r.queries.GetReservationViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	return toReservationView(row), nil
}

func (r *ReservationReadStore) FindAvailability(ctx context.Context, themeID int64, date time.Time) ([]*queries.AvailabilityView, error) {
	params := sqlc.ListAvailabilityByThemeAndDateParams{
		ThemeID: themeID,
		Date:    pgconv.DateToPgtype(date),
	}
	rows, err := r.queries.ListAvailabilityByThemeAndDate(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list availability", err)
	}
	result := make([]*queries.AvailabilityView, len(rows))
	for i, row := range rows {
		result[i] = &queries.AvailabilityView{
			TimeID:        row.TimeID,
			StartAt:       converter.StartAtFromPgtype(row.StartAt).String(),
			AlreadyBooked: row.AlreadyBooked,
		}
	}
	return result, nil
}

func toReservationView(row sqlc.GetReservationViewByIDRow) *queries.ReservationView {
	return &queries.ReservationView{
		ID:   row.ID,
		Name: row.Name,
		Date: pgconv.DateFromPgtype(row.Date),
		Time: queries.TimeSlotView{
			ID:      row.TimeID,
			StartAt: converter.StartAtFromPgtype(row.TimeStartAt).String(),
		},
		Theme: queries.ThemeView{
			ID:          row.ThemeID,
			Name:        row.ThemeName,
			Description: row.ThemeDescription,
			Thumbnail:   row.ThemeThumbnail,
		},
	}
}
