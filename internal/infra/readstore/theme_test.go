//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"roomescape/internal/infra"
	"roomescape/internal/infra/readstore"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"
	"roomescape/internal/usecase/queries"
	readstoremock "roomescape/tests/mock/readstore"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestThemeReadStore_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows are mapped in order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockThemeReadQueries(ctrl)
		store := readstore.NewThemeReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListThemes(ctx, gomock.Any()).Return([]sqlc.Theme{
			{ID: 1, Name: "A", Description: "a", Thumbnail: "a.png"},
			{ID: 2, Name: "B", Description: "b", Thumbnail: "b.png"},
		}, nil)

		got, err := store.FindAll(ctx)
		require.NoError(t, err)
		want := []*queries.ThemeView{
			{ID: 1, Name: "A", Description: "a", Thumbnail: "a.png"},
			{ID: 2, Name: "B", Description: "b", Thumbnail: "b.png"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FindAll mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("success: no themes yields empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockThemeReadQueries(ctrl)
		store := readstore.NewThemeReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListThemes(ctx, gomock.Any()).Return(nil, nil)

		got, err := store.FindAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestThemeReadStore_FindByID_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	mockQueries := readstoremock.NewMockThemeReadQueries(ctrl)
	store := readstore.NewThemeReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().GetThemeByID(ctx, gomock.Any(), int64(99)).Return(sqlc.Theme{}, pgx.ErrNoRows)

	view, err := store.FindByID(ctx, 99)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestThemeReadStore_FindTop(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2030, time.January, 7, 0, 0, 0, 0, time.UTC)

	t.Run("success: date range and limit are passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockThemeReadQueries(ctrl)
		store := readstore.NewThemeReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListTopThemes(ctx, gomock.Any(), sqlc.ListTopThemesParams{
			StartDate: pgconv.DateToPgtype(start),
			EndDate:   pgconv.DateToPgtype(end),
			MaxCount:  10,
		}).Return([]sqlc.ListTopThemesRow{
			{ID: 3, Name: "C", Description: "c", Thumbnail: "c.png", ReservationCount: 5},
			{ID: 1, Name: "A", Description: "a", Thumbnail: "a.png", ReservationCount: 2},
		}, nil)

		got, err := store.FindTop(ctx, start, end, 10)
		require.NoError(t, err)

		want := []*queries.RankedThemeView{
			{ThemeView: queries.ThemeView{ID: 3, Name: "C", Description: "c", Thumbnail: "c.png"}, ReservationCount: 5},
			{ThemeView: queries.ThemeView{ID: 1, Name: "A", Description: "a", Thumbnail: "a.png"}, ReservationCount: 2},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("FindTop mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockThemeReadQueries(ctrl)
		store := readstore.NewThemeReadStore(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListTopThemes(ctx, gomock.Any(), gomock.Any()).Return(nil, errDBConnectionLost)

		got, err := store.FindTop(ctx, start, end, 10)
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
