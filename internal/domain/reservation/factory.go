package reservation

import (
	"time"

	"roomescape/internal/domain/theme"
	"roomescape/internal/domain/timeslot"
	"roomescape/internal/pkg/clock"
)

type Factory struct {
	Clock clock.Clock
}

func NewFactory(clock clock.Clock) *Factory {
	return &Factory{Clock: clock}
}

// CreateReservation validates a new booking against already-resolved catalog
// entries. The date is a civil date interpreted in the clock's location.
func (f *Factory) CreateReservation(
	name string,
	date time.Time,
	slot *timeslot.TimeSlot,
	th *theme.Theme,
) (*Reservation, error) {
	if slot == nil || th == nil {
		return nil, ErrUnknownReservationRefs
	}

	customer, err := NewCustomerName(name)
	if err != nil {
		return nil, err
	}

	now := f.Clock.Now()
	if slot.StartAt().On(date, now.Location()).Before(now) {
		return nil, ErrPastReservation
	}

	y, m, d := date.Date()
	return &Reservation{
		name:     customer,
		date:     time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		timeSlot: slot,
		theme:    th,
	}, nil
}
