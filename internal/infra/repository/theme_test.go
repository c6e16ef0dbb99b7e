//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"roomescape/internal/infra"
	"roomescape/internal/infra/repository"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/tests/common/builder"
	repositorymock "roomescape/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestThemeRepository_Create(t *testing.T) {
	ctx := context.Background()
	th := builder.NewThemeBuilder().BuildDomain()

	t.Run("success: params carry every field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockThemeWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewThemeRepository(mockQueries)

		mockQueries.EXPECT().CreateTheme(ctx, mockDB, sqlc.CreateThemeParams{
			Name:        th.Name(),
			Description: th.Description(),
			Thumbnail:   th.Thumbnail(),
		}).Return(sqlc.Theme{ID: 11}, nil)

		id, err := repo.Create(ctx, mockDB, th)
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockThemeWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewThemeRepository(mockQueries)

		mockQueries.EXPECT().CreateTheme(ctx, mockDB, gomock.Any()).Return(sqlc.Theme{}, errors.New("timeout"))

		id, err := repo.Create(ctx, mockDB, th)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Zero(t, id)
	})
}

func TestThemeRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns affected rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockThemeWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewThemeRepository(mockQueries)

		mockQueries.EXPECT().DeleteTheme(ctx, mockDB, int64(5)).Return(int64(1), nil)

		n, err := repo.Delete(ctx, mockDB, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("error: foreign key violation is classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockThemeWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewThemeRepository(mockQueries)

		fk := &pgconn.PgError{Code: "23503"}
		mockQueries.EXPECT().DeleteTheme(ctx, mockDB, int64(5)).Return(int64(0), fk)

		_, err := repo.Delete(ctx, mockDB, 5)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}
