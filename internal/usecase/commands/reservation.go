package commands

import (
	"context"
	"time"

	"roomescape/internal/domain/reservation"
	"roomescape/internal/domain/theme"
	"roomescape/internal/domain/timeslot"
	"roomescape/internal/infra"
	"roomescape/internal/usecase/shared"
)

type CreateReservationRequest struct {
	Name    string
	Date    time.Time
	TimeID  int64
	ThemeID int64
}

type CreateReservationResult struct {
	ReservationID int64
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*CreateReservationResult, error)
	DeleteReservation(ctx context.Context, id int64) error
}

type reservationUseCaseImpl struct {
	uow     shared.UnitOfWork
	factory *reservation.Factory
}

func NewReservationCommands(uow shared.UnitOfWork, factory *reservation.Factory) ReservationCommands {
	return &reservationUseCaseImpl{uow: uow, factory: factory}
}

// CreateReservation checks, in order: both references resolve, the name is
// not blank, the slot is not in the past, and the slot is still free for the
// theme on that date. The last check is the unique constraint on insert.
func (uc *reservationUseCaseImpl) CreateReservation(ctx context.Context, req CreateReservationRequest) (*CreateReservationResult, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, derr := tx.Reads().TimeSlotByID(ctx, req.TimeID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return timeslot.ErrTimeSlotNotFound
			}
			return derr
		}

		th, derr := tx.Reads().ThemeByID(ctx, req.ThemeID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return theme.ErrThemeNotFound
			}
			return derr
		}

		res, derr := uc.factory.CreateReservation(req.Name, req.Date, slot, th)
		if derr != nil {
			return derr
		}

		id, derr := tx.Reservations().Create(ctx, tx.DB(), res)
		if derr != nil {
			switch {
			case infra.IsKind(derr, infra.KindDuplicateKey):
				return reservation.ErrDuplicateReservation
			case infra.IsKind(derr, infra.KindForeignKeyViolated):
				return reservation.ErrUnknownReservationRefs
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateReservationResult{ReservationID: createdID}, nil
}

// DeleteReservation succeeds for an unknown id.
func (uc *reservationUseCaseImpl) DeleteReservation(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Reservations().Delete(ctx, tx.DB(), id)
		return derr
	})
}
