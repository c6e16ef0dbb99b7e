//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/theme"
	"roomescape/internal/domain/timeslot"
	"roomescape/internal/pkg/clock"
	"roomescape/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kst = time.FixedZone("KST", 9*60*60)

func mustSlot(t *testing.T, id int64, s string) *timeslot.TimeSlot {
	t.Helper()
	startAt, err := timeslot.ParseStartAt(s)
	require.NoError(t, err)
	return timeslot.Reconstruct(id, startAt)
}

func TestFactory_CreateReservation(t *testing.T) {
	now := time.Date(2026, 4, 10, 15, 0, 0, 0, kst)
	factory := reservation.NewFactory(clock.NewMockClock(now))
	th := theme.Reconstruct(1, "A", "d", "t")

	tests := []struct {
		name     string
		customer string
		date     time.Time
		slot     string
		errIs    error
	}{
		{name: "tomorrow", customer: "Sun", date: time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC), slot: "10:00"},
		{name: "later today", customer: "Sun", date: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), slot: "15:01"},
		{name: "exactly now is not in the past", customer: "Sun", date: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), slot: "15:00"},
		{name: "earlier today", customer: "Sun", date: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), slot: "14:59", errIs: reservation.ErrPastReservation},
		{name: "yesterday", customer: "Sun", date: time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC), slot: "23:00", errIs: reservation.ErrPastReservation},
		{name: "blank name", customer: "   ", date: time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC), slot: "10:00", errIs: reservation.ErrBlankName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := factory.CreateReservation(tt.customer, tt.date, mustSlot(t, 1, tt.slot), th)
			if tt.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.errIs)
				assert.True(t, errs.IsInvalidInput(err))
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Sun", res.Name().String())
			assert.Equal(t, reservation.FormatDate(tt.date), reservation.FormatDate(res.Date()))
			assert.Equal(t, int64(1), res.TimeSlot().ID())
			assert.Equal(t, int64(1), res.Theme().ID())
		})
	}
}

func TestFactory_UsesClockLocation(t *testing.T) {
	// 23:30 UTC on the 9th is already 08:30 on the 10th in Seoul.
	now := time.Date(2026, 4, 9, 23, 30, 0, 0, time.UTC).In(kst)
	factory := reservation.NewFactory(clock.NewMockClock(now))
	th := theme.Reconstruct(1, "A", "d", "t")

	_, err := factory.CreateReservation("Sun", time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), mustSlot(t, 1, "08:00"), th)
	assert.ErrorIs(t, err, reservation.ErrPastReservation)

	_, err = factory.CreateReservation("Sun", time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), mustSlot(t, 1, "09:00"), th)
	assert.NoError(t, err)
}

func TestFactory_MissingRefs(t *testing.T) {
	factory := reservation.NewFactory(clock.NewMockClock(time.Now()))

	_, err := factory.CreateReservation("Sun", time.Now().AddDate(0, 0, 1), nil, nil)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestParseDate(t *testing.T) {
	d, err := reservation.ParseDate("2026-12-25")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-25", reservation.FormatDate(d))

	for _, bad := range []string{"", "2026/12/25", "2026-13-01", "2026-02-30", "tomorrow"} {
		_, err := reservation.ParseDate(bad)
		assert.ErrorIs(t, err, reservation.ErrInvalidDate, bad)
	}
}
