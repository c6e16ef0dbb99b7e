package timeslot

type TimeSlot struct {
	id      int64
	startAt StartAt
}

// NewTimeSlot builds an unsaved slot; the store assigns the id.
func NewTimeSlot(startAt string) (*TimeSlot, error) {
	s, err := ParseStartAt(startAt)
	if err != nil {
		return nil, err
	}
	return &TimeSlot{startAt: s}, nil
}

func Reconstruct(id int64, startAt StartAt) *TimeSlot {
	return &TimeSlot{id: id, startAt: startAt}
}

func (t *TimeSlot) ID() int64        { return t.id }
func (t *TimeSlot) StartAt() StartAt { return t.startAt }
