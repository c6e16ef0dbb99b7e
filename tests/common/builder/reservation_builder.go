//go:build unit || e2e

package builder

import (
	"time"

	"roomescape/internal/domain/reservation"
	reqdto "roomescape/internal/handler/dto/request"
	sqlc "roomescape/internal/infra/sqlc/generated"
	"roomescape/internal/pkg/pgconv"
	"roomescape/internal/usecase/queries"
)

type ReservationBuilder struct {
	ID       int64
	Name     string
	Date     time.Time
	TimeSlot *TimeSlotBuilder
	Theme    *ThemeBuilder
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ID:       1,
		Name:     "Sun",
		Date:     time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot: NewTimeSlotBuilder(),
		Theme:    NewThemeBuilder(),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	name, err := reservation.NewCustomerName(b.Name)
	if err != nil {
		panic(err)
	}
	return reservation.Reconstruct(b.ID, name, b.Date, b.TimeSlot.BuildDomain(), b.Theme.BuildDomain())
}

func (b *ReservationBuilder) BuildViewRow() sqlc.GetReservationViewByIDRow {
	return sqlc.GetReservationViewByIDRow{
		ID:               b.ID,
		Name:             b.Name,
		Date:             pgconv.DateToPgtype(b.Date),
		TimeID:           b.TimeSlot.ID,
		TimeStartAt:      pgconv.TimeOfDayToPgtype(b.TimeSlot.Hour, b.TimeSlot.Minute),
		ThemeID:          b.Theme.ID,
		ThemeName:        b.Theme.Name,
		ThemeDescription: b.Theme.Description,
		ThemeThumbnail:   b.Theme.Thumbnail,
	}
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Name:    b.Name,
		Date:    reservation.FormatDate(b.Date),
		TimeID:  b.TimeSlot.ID,
		ThemeID: b.Theme.ID,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:    b.ID,
		Name:  b.Name,
		Date:  b.Date,
		Time:  *b.TimeSlot.BuildView(),
		Theme: *b.Theme.BuildView(),
	}
}
