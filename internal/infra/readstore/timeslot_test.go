//go:build unit

package readstore_test

import (
	"context"
	"testing"

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

func TestTimeSlotReadStore_FindAll(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	mockQueries := readstoremock.NewMockTimeSlotReadQueries(ctrl)
	store := readstore.NewTimeSlotReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListTimeSlots(ctx, gomock.Any()).Return([]sqlc.TimeSlot{
		{ID: 2, StartAt: pgconv.TimeOfDayToPgtype(9, 5)},
		{ID: 1, StartAt: pgconv.TimeOfDayToPgtype(18, 30)},
	}, nil)

	got, err := store.FindAll(ctx)
	require.NoError(t, err)

	want := []*queries.TimeSlotView{
		{ID: 2, StartAt: "09:05"},
		{ID: 1, StartAt: "18:30"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindAll mismatch (-want +got):\n%s", diff)
	}
}

func TestTimeSlotReadStore_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockTimeSlotReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: time slot found",
			setupMock: func(mock *readstoremock.MockTimeSlotReadQueries) {
				mock.EXPECT().GetTimeSlotByID(ctx, gomock.Any(), int64(4)).
					Return(sqlc.TimeSlot{ID: 4, StartAt: pgconv.TimeOfDayToPgtype(10, 0)}, nil)
			},
		},
		{
			name: "error: time slot not found",
			setupMock: func(mock *readstoremock.MockTimeSlotReadQueries) {
				mock.EXPECT().GetTimeSlotByID(ctx, gomock.Any(), int64(4)).Return(sqlc.TimeSlot{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockTimeSlotReadQueries) {
				mock.EXPECT().GetTimeSlotByID(ctx, gomock.Any(), int64(4)).Return(sqlc.TimeSlot{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockTimeSlotReadQueries(ctrl)
			store := readstore.NewTimeSlotReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			view, err := store.FindByID(ctx, 4)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &queries.TimeSlotView{ID: 4, StartAt: "10:00"}, view)
		})
	}
}

func TestTimeSlotReadStore_InUse(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	mockQueries := readstoremock.NewMockTimeSlotReadQueries(ctrl)
	store := readstore.NewTimeSlotReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().TimeSlotInUse(ctx, gomock.Any(), int64(1)).Return(true, nil)
	mockQueries.EXPECT().TimeSlotInUse(ctx, gomock.Any(), int64(2)).Return(false, errDBConnectionLost)

	inUse, err := store.InUse(ctx, 1)
	require.NoError(t, err)
	assert.True(t, inUse)

	inUse, err = store.InUse(ctx, 2)
	require.Error(t, err)
	assert.False(t, inUse)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
