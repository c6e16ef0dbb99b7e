package reservation

import (
	"time"

	"roomescape/internal/domain/theme"
	"roomescape/internal/domain/timeslot"
)

type Reservation struct {
	id       int64
	name     CustomerName
	date     time.Time
	timeSlot *timeslot.TimeSlot
	theme    *theme.Theme
}

func Reconstruct(id int64, name CustomerName, date time.Time, slot *timeslot.TimeSlot, th *theme.Theme) *Reservation {
	return &Reservation{
		id:       id,
		name:     name,
		date:     date,
		timeSlot: slot,
		theme:    th,
	}
}

func (r *Reservation) ID() int64                    { return r.id }
func (r *Reservation) Name() CustomerName           { return r.name }
func (r *Reservation) Date() time.Time              { return r.date }
func (r *Reservation) TimeSlot() *timeslot.TimeSlot { return r.timeSlot }
func (r *Reservation) Theme() *theme.Theme          { return r.theme }

// StartsAt is the moment the booking begins in loc.
func (r *Reservation) StartsAt(loc *time.Location) time.Time {
	return r.timeSlot.StartAt().On(r.date, loc)
}
