package timeslot

import "roomescape/internal/pkg/errs"

var (
	ErrInvalidStartAt   = errs.NewKind("start time must be formatted as HH:MM", errs.ErrInvalidInput)
	ErrTimeSlotNotFound = errs.NewKind("time slot not found", errs.ErrNotFound)
	ErrDuplicateStartAt = errs.NewKind("a time slot with this start time already exists", errs.ErrConflict)
	ErrTimeSlotInUse    = errs.NewKind("time slot is still referenced by reservations", errs.ErrConflict)
)
