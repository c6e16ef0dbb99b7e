package converter

import (
	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/theme"
	"roomescape/internal/domain/timeslot"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func StartAtToPgtype(s timeslot.StartAt) pgtype.Time {
	return pgconv.TimeOfDayToPgtype(s.Hour(), s.Minute())
}

// StartAtFromPgtype tolerates stored values with seconds by truncating them.
func StartAtFromPgtype(pt pgtype.Time) timeslot.StartAt {
	h, m := pgconv.TimeOfDayFromPgtype(pt)
	s, err := timeslot.NewStartAt(h, m)
	if err != nil {
		return timeslot.StartAt{}
	}
	return s
}

func ThemeToCreateParams(th *theme.Theme) sqlc.CreateThemeParams {
	return sqlc.CreateThemeParams{
		Name:        th.Name(),
		Description: th.Description(),
		Thumbnail:   th.Thumbnail(),
	}
}

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	return sqlc.CreateReservationParams{
		Name:    res.Name().String(),
		Date:    pgconv.DateToPgtype(res.Date()),
		TimeID:  res.TimeSlot().ID(),
		ThemeID: res.Theme().ID(),
	}
}
