//go:build unit

package converter_test

import (
	"testing"
	"time"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/theme"
	"roomescape/internal/domain/timeslot"
	"roomescape/internal/infra/repository/converter"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartAtRoundTrip(t *testing.T) {
	s, err := timeslot.ParseStartAt("21:15")
	require.NoError(t, err)

	got := converter.StartAtFromPgtype(converter.StartAtToPgtype(s))
	assert.Equal(t, "21:15", got.String())
}

func TestStartAtFromPgtype_TruncatesSeconds(t *testing.T) {
	pt := pgtype.Time{Microseconds: (10*3600 + 5*60 + 42) * 1_000_000, Valid: true}
	assert.Equal(t, "10:05", converter.StartAtFromPgtype(pt).String())
}

func TestReservationToCreateParams(t *testing.T) {
	startAt, err := timeslot.ParseStartAt("17:00")
	require.NoError(t, err)
	name, err := reservation.NewCustomerName("Sun")
	require.NoError(t, err)

	date := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	res := reservation.Reconstruct(0, name, date, timeslot.Reconstruct(3, startAt), theme.Reconstruct(7, "A", "d", "t"))

	want := sqlc.CreateReservationParams{
		Name:    "Sun",
		Date:    pgconv.DateToPgtype(date),
		TimeID:  3,
		ThemeID: 7,
	}
	if diff := cmp.Diff(want, converter.ReservationToCreateParams(res)); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestThemeToCreateParams(t *testing.T) {
	th, err := theme.NewTheme("A", "d", "t")
	require.NoError(t, err)

	want := sqlc.CreateThemeParams{Name: "A", Description: "d", Thumbnail: "t"}
	if diff := cmp.Diff(want, converter.ThemeToCreateParams(th)); diff != "" {
		t.Errorf("params mismatch (-want +got):\n%s", diff)
	}
}
