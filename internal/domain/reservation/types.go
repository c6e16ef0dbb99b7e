package reservation

import "roomescape/internal/pkg/errs"

var (
	ErrBlankName              = errs.NewKind("reservation name must not be blank", errs.ErrInvalidInput)
	ErrInvalidDate            = errs.NewKind("date must be formatted as YYYY-MM-DD", errs.ErrInvalidInput)
	ErrPastReservation        = errs.NewKind("cannot reserve a time that has already passed", errs.ErrInvalidInput)
	ErrReservationNotFound    = errs.NewKind("reservation not found", errs.ErrNotFound)
	ErrDuplicateReservation   = errs.NewKind("this time is already reserved for the theme", errs.ErrConflict)
	ErrUnknownReservationRefs = errs.NewKind("reservation references a missing time slot or theme", errs.ErrNotFound)
)
