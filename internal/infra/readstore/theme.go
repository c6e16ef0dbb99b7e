package readstore

import (
	"context"
	"time"

	"roomescape/internal/infra"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"
	"roomescape/internal/usecase/queries"
)

type ThemeReadQueries interface {
	GetThemeByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Theme, error)
	ListThemes(ctx context.Context, db sqlc.DBTX) ([]sqlc.Theme, error)
	ListTopThemes(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTopThemesParams) ([]sqlc.ListTopThemesRow, error)
	ThemeInUse(ctx context.Context, db sqlc.DBTX, themeID int64) (bool, error)
}

type ThemeReadStore struct {
	queries ThemeReadQueries
	db      sqlc.DBTX
}

func NewThemeReadStore(queries ThemeReadQueries, db sqlc.DBTX) *ThemeReadStore {
	return &ThemeReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ThemeReadStore) FindAll(ctx context.Context) ([]*queries.ThemeView, error) {
	rows, err := r.queries.ListThemes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list themes", err)
	}
	result := make([]*queries.ThemeView, len(rows))
	for i, row := range rows {
		result[i] = toThemeView(row)
	}
	return result, nil
}

func (r *ThemeReadStore) FindByID(ctx context.Context, id int64) (*queries.ThemeView, error) {
	row, err := r.queries.GetThemeByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("theme not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get theme by id", err)
	}
	return toThemeView(row), nil
}

// FindTop ranks themes by reservations dated within [startDate, endDate].
// Themes without reservations in the range are omitted.
func (r *ThemeReadStore) FindTop(ctx context.Context, startDate, endDate time.Time, limit int32) ([]*queries.RankedThemeView, error) {
	params := sqlc.ListTopThemesParams{
		StartDate: pgconv.DateToPgtype(startDate),
		EndDate:   pgconv.DateToPgtype(endDate),
		MaxCount:  limit,
	}
	rows, err := r.queries.ListTopThemes(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list top themes", err)
	}
	result := make([]*queries.RankedThemeView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RankedThemeView{
			ThemeView: queries.ThemeView{
				ID:          row.ID,
				Name:        row.Name,
				Description: row.Description,
				Thumbnail:   row.Thumbnail,
			},
			ReservationCount: row.ReservationCount,
		}
	}
	return result, nil
}

func (r *ThemeReadStore) InUse(ctx context.Context, id int64) (bool, error) {
	inUse, err := r.queries.ThemeInUse(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check theme usage", err)
	}
	return inUse, nil
}

func toThemeView(row sqlc.Theme) *queries.ThemeView {
	return &queries.ThemeView{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Thumbnail:   row.Thumbnail,
	}
}
