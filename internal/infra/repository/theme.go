package repository

import (
	"context"

	"roomescape/internal/domain/theme"
	"roomescape/internal/infra"
	"roomescape/internal/infra/repository/converter"
	sqlc "roomescape/internal/infra/sqlc/generated"
)

type ThemeWriteQueries interface {
	CreateTheme(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateThemeParams) (sqlc.Theme, error)
	DeleteTheme(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type ThemeRepository struct {
	queries ThemeWriteQueries
}

func NewThemeRepository(queries ThemeWriteQueries) *ThemeRepository {
	return &ThemeRepository{queries: queries}
}

func (r *ThemeRepository) Create(ctx context.Context, tx sqlc.DBTX, th *theme.Theme) (int64, error) {
	row, err := r.queries.CreateTheme(ctx, tx, converter.ThemeToCreateParams(th))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create theme", err)
	}
	return row.ID, nil
}

func (r *ThemeRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) (int64, error) {
	n, err := r.queries.DeleteTheme(ctx, tx, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete theme", err)
	}
	return n, nil
}
