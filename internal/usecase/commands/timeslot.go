package commands

import (
	"context"

	"roomescape/internal/domain/timeslot"
	"roomescape/internal/infra"
	"roomescape/internal/usecase/shared"
)

type CreateTimeSlotResult struct {
	TimeSlotID int64
}

type TimeSlotCommands interface {
	CreateTimeSlot(ctx context.Context, startAt string) (*CreateTimeSlotResult, error)
	DeleteTimeSlot(ctx context.Context, id int64) error
}

type timeSlotUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewTimeSlotCommands(uow shared.UnitOfWork) TimeSlotCommands {
	return &timeSlotUseCaseImpl{uow: uow}
}

func (uc *timeSlotUseCaseImpl) CreateTimeSlot(ctx context.Context, startAt string) (*CreateTimeSlotResult, error) {
	slot, err := timeslot.NewTimeSlot(startAt)
	if err != nil {
		return nil, err
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.TimeSlots().Create(ctx, tx.DB(), slot)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return timeslot.ErrDuplicateStartAt
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateTimeSlotResult{TimeSlotID: createdID}, nil
}

// DeleteTimeSlot succeeds for an unknown id.
func (uc *timeSlotUseCaseImpl) DeleteTimeSlot(ctx context.Context, id int64) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inUse, derr := tx.Reads().TimeSlotInUse(ctx, id)
		if derr != nil {
			return derr
		}
		if inUse {
			return timeslot.ErrTimeSlotInUse
		}

		if _, derr = tx.TimeSlots().Delete(ctx, tx.DB(), id); derr != nil {
			// a reservation committed after the guard above
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return timeslot.ErrTimeSlotInUse
			}
			return derr
		}
		return nil
	})
}
