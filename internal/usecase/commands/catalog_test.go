//go:build unit

package commands_test

import (
	"context"
	"testing"

	"roomescape/internal/domain/theme"
	"roomescape/internal/domain/timeslot"
	"roomescape/internal/infra"
	"roomescape/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTimeSlotCommands_CreateTimeSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		m := newTxMocks(t)
		m.timeSlots.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, slot *timeslot.TimeSlot) (int64, error) {
				assert.Equal(t, "09:30", slot.StartAt().String())
				return 3, nil
			})

		result, err := commands.NewTimeSlotCommands(m.uow).CreateTimeSlot(ctx, "09:30")
		require.NoError(t, err)
		assert.Equal(t, int64(3), result.TimeSlotID)
	})

	t.Run("error: malformed start time never opens a transaction", func(t *testing.T) {
		m := newTxMocks(t)
		for _, in := range []string{"", "9:30pm", "24:00", "12:60", "noon"} {
			_, err := commands.NewTimeSlotCommands(m.uow).CreateTimeSlot(ctx, in)
			assert.ErrorIs(t, err, timeslot.ErrInvalidStartAt, "input %q", in)
		}
	})

	t.Run("error: duplicate start time", func(t *testing.T) {
		m := newTxMocks(t)
		dup := infra.WrapRepoErr("failed to create time slot", &pgconn.PgError{Code: "23505"})
		m.timeSlots.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), dup)

		_, err := commands.NewTimeSlotCommands(m.uow).CreateTimeSlot(ctx, "10:00")
		assert.ErrorIs(t, err, timeslot.ErrDuplicateStartAt)
	})
}

func TestTimeSlotCommands_DeleteTimeSlot(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		setup     func(m *txMocks)
		expectErr error
	}{
		{
			name: "success: unused slot is removed",
			setup: func(m *txMocks) {
				m.reads.EXPECT().TimeSlotInUse(gomock.Any(), int64(1)).Return(false, nil)
				m.timeSlots.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(1)).Return(int64(1), nil)
			},
		},
		{
			name: "success: unknown id",
			setup: func(m *txMocks) {
				m.reads.EXPECT().TimeSlotInUse(gomock.Any(), int64(1)).Return(false, nil)
				m.timeSlots.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(1)).Return(int64(0), nil)
			},
		},
		{
			name: "error: referenced by a reservation",
			setup: func(m *txMocks) {
				m.reads.EXPECT().TimeSlotInUse(gomock.Any(), int64(1)).Return(true, nil)
			},
			expectErr: timeslot.ErrTimeSlotInUse,
		},
		{
			name: "error: reservation raced in before delete",
			setup: func(m *txMocks) {
				m.reads.EXPECT().TimeSlotInUse(gomock.Any(), int64(1)).Return(false, nil)
				fk := infra.WrapRepoErr("failed to delete time slot", &pgconn.PgError{Code: "23503"})
				m.timeSlots.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(1)).Return(int64(0), fk)
			},
			expectErr: timeslot.ErrTimeSlotInUse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTxMocks(t)
			tc.setup(m)

			err := commands.NewTimeSlotCommands(m.uow).DeleteTimeSlot(ctx, 1)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestThemeCommands_CreateTheme(t *testing.T) {
	ctx := context.Background()

	t.Run("success: fields are trimmed", func(t *testing.T) {
		m := newTxMocks(t)
		m.themes.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, th *theme.Theme) (int64, error) {
				assert.Equal(t, "Haunted", th.Name())
				return 12, nil
			})

		result, err := commands.NewThemeCommands(m.uow, m.ranking).CreateTheme(ctx, commands.CreateThemeRequest{
			Name: "  Haunted ", Description: "ghosts", Thumbnail: "h.png",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(12), result.ThemeID)
	})

	t.Run("error: blank fields", func(t *testing.T) {
		m := newTxMocks(t)
		uc := commands.NewThemeCommands(m.uow, m.ranking)

		_, err := uc.CreateTheme(ctx, commands.CreateThemeRequest{Name: " ", Description: "d", Thumbnail: "t"})
		assert.ErrorIs(t, err, theme.ErrBlankName)
		_, err = uc.CreateTheme(ctx, commands.CreateThemeRequest{Name: "n", Description: "", Thumbnail: "t"})
		assert.ErrorIs(t, err, theme.ErrBlankDescription)
		_, err = uc.CreateTheme(ctx, commands.CreateThemeRequest{Name: "n", Description: "d", Thumbnail: "\t"})
		assert.ErrorIs(t, err, theme.ErrBlankThumbnail)
	})
}

func TestThemeCommands_DeleteTheme(t *testing.T) {
	ctx := context.Background()

	t.Run("error: theme in use", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().ThemeInUse(gomock.Any(), int64(2)).Return(true, nil)

		err := commands.NewThemeCommands(m.uow, m.ranking).DeleteTheme(ctx, 2)
		assert.ErrorIs(t, err, theme.ErrThemeInUse)
	})

	t.Run("success: cached rankings are dropped", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().ThemeInUse(gomock.Any(), int64(2)).Return(false, nil)
		m.themes.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(2)).Return(int64(1), nil)
		m.ranking.EXPECT().InvalidateTopThemes(gomock.Any()).Times(1)

		assert.NoError(t, commands.NewThemeCommands(m.uow, m.ranking).DeleteTheme(ctx, 2))
	})

	t.Run("success: unknown id leaves the cache alone", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().ThemeInUse(gomock.Any(), int64(2)).Return(false, nil)
		m.themes.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(2)).Return(int64(0), nil)

		assert.NoError(t, commands.NewThemeCommands(m.uow, m.ranking).DeleteTheme(ctx, 2))
	})

	t.Run("error: failed delete leaves the cache alone", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().ThemeInUse(gomock.Any(), int64(2)).Return(false, nil)
		fk := infra.WrapRepoErr("failed to delete theme", &pgconn.PgError{Code: "23503"})
		m.themes.EXPECT().Delete(gomock.Any(), gomock.Any(), int64(2)).Return(int64(0), fk)

		err := commands.NewThemeCommands(m.uow, m.ranking).DeleteTheme(ctx, 2)
		assert.ErrorIs(t, err, theme.ErrThemeInUse)
	})
}
